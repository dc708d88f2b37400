package apperror

import (
	"errors"
	"strings"
)

type Translator interface {
	T(id string, data ...map[string]any) string
}

// UserMessage turns any workflow error into the text shown to the operator:
// localized violations, the server's own message, or the localized fallback.
func UserMessage(err error, tr Translator, fallbackID string) string {
	if err == nil {
		return ""
	}

	if v, ok := AsValidation(err); ok {
		msgs := make([]string, 0, len(v.Violations))
		for _, vi := range v.Violations {
			msgs = append(msgs, tr.T(vi.MessageID))
		}
		return strings.Join(msgs, "; ")
	}

	var appErr *AppError
	if errors.As(err, &appErr) && appErr.ServerMessage() != "" {
		return appErr.ServerMessage()
	}

	return tr.T(fallbackID)
}
