// Package validate holds the field rules shared by the entry forms.
package validate

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Optional trims s and returns nil when nothing is left, so the field is
// omitted from the request body.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
