package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/labela/labela-control/internal/auth"
	"github.com/labela/labela-control/internal/pkg/cli"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// app routes a command line to its action. Private commands need a signed-in
// session; the rest are always available.
type app struct {
	store   *auth.Store
	n       *cli.Notifier
	public  map[string]cli.Action
	private map[string]cli.Action
}

func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}

	name, rest := args[0], args[1:]
	action, ok := a.public[name]
	if !ok {
		action, ok = a.private[name]
		if !ok {
			fmt.Fprintf(a.n.ErrWriter(), "unknown command %q\n", name)
			a.usage()
			return exitUsage
		}
		if !a.store.Signed() {
			a.n.Warn("NotSignedIn")
			return exitFailure
		}
	}

	return exitCode(action(ctx, rest))
}

func (a *app) usage() {
	names := make([]string, 0, len(a.public)+len(a.private))
	for k := range a.public {
		names = append(names, k)
	}
	for k := range a.private {
		names = append(names, k)
	}
	sort.Strings(names)
	fmt.Fprintf(a.n.ErrWriter(), "usage: labela <%s> [args]\n", strings.Join(names, "|"))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrUsage):
		return exitUsage
	default:
		return exitFailure
	}
}
