package cli

import "time"

const dateLayout = "02/01/2006 15:04"

// Deref renders an optional string column.
func Deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateLayout)
}
