package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/logger"
)

// Notifier is the user-facing output of every workflow: transient success and
// error notices, plus tables. Errors never escape it as panics.
type Notifier struct {
	out    io.Writer
	errOut io.Writer
	tr     apperror.Translator
	logger logger.ZapLogger
}

func NewNotifier(out, errOut io.Writer, tr apperror.Translator, log logger.ZapLogger) *Notifier {
	return &Notifier{
		out:    out,
		errOut: errOut,
		tr:     tr,
		logger: log,
	}
}

func (n *Notifier) T(id string, data ...map[string]any) string {
	return n.tr.T(id, data...)
}

func (n *Notifier) Success(id string, data ...map[string]any) {
	fmt.Fprintln(n.out, "✔ "+n.tr.T(id, data...))
}

func (n *Notifier) Warn(id string, data ...map[string]any) {
	fmt.Fprintln(n.errOut, "! "+n.tr.T(id, data...))
}

// Failure reports err using the server message when present, else fallbackID.
func (n *Notifier) Failure(err error, fallbackID string) {
	n.logger.Debug("workflow failed", zap.String("fallback", fallbackID), zap.Error(err))
	fmt.Fprintln(n.errOut, "✖ "+apperror.UserMessage(err, n.tr, fallbackID))
}

func (n *Notifier) Printf(format string, args ...any) {
	fmt.Fprintf(n.out, format, args...)
}

func (n *Notifier) Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(n.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func (n *Notifier) ErrWriter() io.Writer {
	return n.errOut
}
