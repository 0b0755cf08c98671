// Package currency converts between decimal amounts and Brazilian Real
// display strings.
//
// Display strings are only accepted at the legacy document generation
// boundary. They are never a source of truth: amounts are stored as
// decimals and formatting happens at presentation time.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("the amount could not be parsed as a currency value")

// ParseBRL parses a Brazilian Real display string, e.g. "R$ 1.234,56".
//
// Everything that is not a digit, comma or period is stripped. The period is
// the thousands separator and the comma the decimal separator. A string
// without any digits is an error, it is never silently treated as zero.
func ParseBRL(s string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if !strings.ContainsAny(cleaned, "0123456789") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	// Thousands separators carry no information
	cleaned = strings.ReplaceAll(cleaned, ".", "")

	// More than one decimal separator cannot be interpreted
	if strings.Count(cleaned, ",") > 1 {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return amount, nil
}

// FormatBRL formats an amount as a Brazilian Real display string.
func FormatBRL(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	integer, fraction := parts[0], parts[1]

	var groups []string
	for len(integer) > 3 {
		groups = append([]string{integer[len(integer)-3:]}, groups...)
		integer = integer[:len(integer)-3]
	}
	groups = append([]string{integer}, groups...)

	formatted := "R$ " + strings.Join(groups, ".") + "," + fraction
	if negative {
		formatted = "-" + formatted
	}

	return formatted
}

// CentsToDecimal converts an amount in integer cents to its decimal
// representation in major units.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
