// Package money converts between integer cents and Brazilian real notation.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

const symbol = "R$"

// Format renders cents as "R$ 1.234,56".
func Format(cents int64) string {
	d := decimal.New(cents, -2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	intPart, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + symbol + " " + groupThousands(intPart) + "," + frac
}

// Decimal renders cents as plain "1234.56", the form ParseCents reads back.
func Decimal(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// ParseCents accepts "89.90", "89,90", "1.234,56" or "R$ 10" and returns cents,
// rounding half away from zero past the second decimal place.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), symbol))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}

	return d.Shift(2).Round(0).IntPart(), nil
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
