// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoDigits is returned by ExtractNumber when the input contains no digits.
var ErrNoDigits = errors.New("no digits in value")

// ExtractNumber joins every digit of s, in order, and parses the result as an
// integer. Non-digit characters (letters, separators, units) are skipped, so
// "3 anos" yields 3 and "4,5 kg" yields 45. Returns ErrNoDigits when the
// string carries no digit at all.
//
// The digits-only join mirrors how the stored free-text age/weight values are
// validated before they are prefix-matched; it is a sanity check on the
// caller's input, not the value that gets matched.
func ExtractNumber(s string) (int, error) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, ErrNoDigits
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, ErrNoDigits
	}
	return n, nil
}

// ParseOptionalBool interprets the "true"/"false" string toggles used by
// query parameters. Empty or unrecognized values return nil.
func ParseOptionalBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// Truthy reports whether a query toggle should be treated as enabled.
func Truthy(s string) bool {
	b := ParseOptionalBool(s)
	return b != nil && *b
}

// upperPT performs locale-aware upper casing for the first letter of names.
var upperPT = cases.Upper(language.BrazilianPortuguese)

// CapitalizeFirst upper-cases the first rune of s, leaving the rest as-is.
// Used to normalize species and gift names before persisting them.
func CapitalizeFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	return upperPT.String(string(r[:1])) + string(r[1:])
}
