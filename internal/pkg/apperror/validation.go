package apperror

import (
	"errors"
	"strings"
)

// Violation names the offending field and the message ID describing it.
type Violation struct {
	Field     string
	MessageID string
}

// ValidationError carries every violation found, not just the first.
type ValidationError struct {
	Violations []Violation
}

func (v *ValidationError) Add(field, messageID string) {
	v.Violations = append(v.Violations, Violation{Field: field, MessageID: messageID})
}

func (v *ValidationError) Has(field string) bool {
	for _, vi := range v.Violations {
		if vi.Field == field {
			return true
		}
	}
	return false
}

// Err returns nil when nothing was added, so callers can `return v.Err()`.
func (v *ValidationError) Err() error {
	if len(v.Violations) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	fields := make([]string, 0, len(v.Violations))
	for _, vi := range v.Violations {
		fields = append(fields, vi.Field)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	ok := errors.As(err, &v)
	return v, ok
}
