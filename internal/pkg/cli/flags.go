package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"
)

var ErrUsage = errors.New("usage")

// ErrReported marks a failure the Notifier already showed to the user.
var ErrReported = errors.New("reported")

type Action func(ctx context.Context, args []string) error

// Dispatch runs the subcommand named by args[0].
func Dispatch(ctx context.Context, n *Notifier, name string, args []string, actions map[string]Action) error {
	if len(args) == 0 {
		printUsage(n, name, actions)
		return ErrUsage
	}

	action, ok := actions[args[0]]
	if !ok {
		fmt.Fprintf(n.ErrWriter(), "unknown subcommand %q\n", args[0])
		printUsage(n, name, actions)
		return ErrUsage
	}
	return action(ctx, args[1:])
}

func printUsage(n *Notifier, name string, actions map[string]Action) {
	subs := make([]string, 0, len(actions))
	for k := range actions {
		subs = append(subs, k)
	}
	sort.Strings(subs)
	fmt.Fprintf(n.ErrWriter(), "usage: labela %s <%s>\n", name, strings.Join(subs, "|"))
}

func NewFlagSet(name string, n *Notifier) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(n.ErrWriter())
	return fs
}

// Parse wraps fs.Parse so every parse failure maps to ErrUsage.
func Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	return nil
}

// Visited reports which flags were set explicitly on the command line.
func Visited(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// RequireID fails with ErrUsage when an -id flag was not given a positive value.
func RequireID(fs *flag.FlagSet, id int64) error {
	if id <= 0 {
		fmt.Fprintf(fs.Output(), "%s: -id is required\n", fs.Name())
		fs.PrintDefaults()
		return ErrUsage
	}
	return nil
}
