// Package parse provides the syntactic predicates used to classify command-line tokens.
// Nothing here consults a registry: each function looks only at the token text.
package parse

import (
	"regexp"
	"strings"
)

// unexported variables.
var (
	//nolint:gochecknoglobals // compiled once, read-only
	signedDecimal = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// IsExtendedShortOption reports whether token has one leading dash, a non-dash
// character next, and is longer than two characters ("-value", "-k707").
func IsExtendedShortOption(token string) bool {
	return singleDash(token) && len(token) > 2
}

// IsLongOption reports whether token has two leading dashes followed by a letter.
func IsLongOption(token string) bool {
	if len(token) <= 2 || !strings.HasPrefix(token, "--") {
		return false
	}

	c := token[2]

	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsNegativeNumber reports whether token is a complete signed decimal number.
// Such tokens are values, never flags, wherever a value is expected.
func IsNegativeNumber(token string) bool {
	return signedDecimal.MatchString(token)
}

// IsOption reports whether token has the shape of any flag.
func IsOption(token string) bool {
	return IsLongOption(token) || IsExtendedShortOption(token) || IsShortOption(token)
}

// IsShortOption reports whether token has one leading dash followed by a non-dash character.
func IsShortOption(token string) bool {
	return singleDash(token) && len(token) > 1
}

// IsValue reports whether token can be consumed as a flag's value.
func IsValue(token string) bool {
	return !IsOption(token) || IsNegativeNumber(token)
}

// SplitSeparator splits "--name=value" at the first '='. ok is false when there is none.
func SplitSeparator(token string) (head, value string, ok bool) {
	return strings.Cut(token, "=")
}

// StripLeadingDashes removes a "--" or "-" prefix.
func StripLeadingDashes(token string) string {
	if after, ok := strings.CutPrefix(token, "--"); ok {
		return after
	}

	return strings.TrimPrefix(token, "-")
}

func singleDash(token string) bool {
	return len(token) > 1 && token[0] == '-' && token[1] != '-'
}
