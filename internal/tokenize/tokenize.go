// Package tokenize rebuilds logical command-line tokens from the raw argument vector.
//
// Shells split "--range= 12,24" or "-b = 7" into several arguments. Tokenize glues
// such fragments back together around '=' (value separator) and ',' (value list
// separator) so the parser sees "--range=12,24" and "-b=7".
package tokenize

import (
	"strings"
	"unicode"
)

// Flatten joins tokens with single spaces.
func Flatten(tokens []string) string {
	return strings.Join(tokens, " ")
}

// Normalise tidies the commas in a single token: runs of commas collapse to one, a
// comma directly after '=' is dropped, and leading and trailing commas are stripped.
func Normalise(token string) string {
	if !strings.Contains(token, ",") {
		return token
	}

	var sb strings.Builder

	sb.Grow(len(token))

	var prev byte

	// ',' and '=' are ASCII, so other bytes pass through untouched
	for i := range len(token) {
		c := token[i]
		if c == ',' && (prev == ',' || prev == '=') {
			continue
		}

		sb.WriteByte(c)
		prev = c
	}

	return strings.Trim(sb.String(), ",")
}

// Tokenize converts raw arguments into logical tokens. Empty fragments are dropped.
// Two neighbouring arguments are joined when the first ends with '=' or the second
// starts with '='; or when the first ends with ',' or the second starts with ',',
// provided the second does not look like a new flag.
func Tokenize(raw []string) []string {
	var (
		tokens  []string
		pending strings.Builder
		prev    string
	)

	flush := func() {
		if pending.Len() == 0 {
			return
		}

		if token := Normalise(pending.String()); token != "" {
			tokens = append(tokens, token)
		}

		pending.Reset()
	}

	for _, arg := range raw {
		if arg == "" {
			continue
		}

		if pending.Len() > 0 && !glues(prev, arg) {
			flush()
		}

		pending.WriteString(arg)
		prev = arg
	}

	flush()

	return tokens
}

// glues reports whether next continues the token that prev ended.
func glues(prev, next string) bool {
	if strings.HasSuffix(prev, "=") || strings.HasPrefix(next, "=") {
		return true
	}

	if strings.HasSuffix(prev, ",") || strings.HasPrefix(next, ",") {
		return !looksLikeFlag(next)
	}

	return false
}

// looksLikeFlag matches one or more leading dashes followed by a letter. Negative
// numbers do not match, so "-5" may continue a value list.
func looksLikeFlag(arg string) bool {
	rest := strings.TrimLeft(arg, "-")
	if len(rest) == len(arg) || rest == "" {
		return false
	}

	r := []rune(rest)[0]

	return unicode.IsLetter(r)
}
