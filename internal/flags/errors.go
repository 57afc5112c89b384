package flags

import (
	"errors"
	"fmt"
	"strings"
)

// Exported variables.
var (
	ErrDuplicateFlag        = errors.New("flag already defined")
	ErrMalformedFlagName    = errors.New("malformed flag name")
	ErrMissingArgument      = errors.New("flag needs an argument")
	ErrMissingRequiredFlags = errors.New("missing required flags")
	ErrMissingSeparator     = errors.New("flag needs a value separator ('=')")
	ErrTooManyOperands      = errors.New("too many operands")
	ErrUnexpectedSeparator  = errors.New("value separator ('=') not permitted")
	ErrUnknownBehavior      = errors.New("unknown flag behavior")
	ErrUnrecognisedFlag     = errors.New("flag provided but not defined")
)

// Error is the structured failure returned by registration and parsing.
// Kind is one of the Err* sentinels, so errors.Is works against it.
type Error struct {
	Kind  error
	Flag  string   // offending token or declared spelling
	Names []string // missing flags, or excess operands
	Char  rune     // offending character for ErrMalformedFlagName
	Limit int      // operand limit for ErrTooManyOperands
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Kind, ErrMalformedFlagName) && e.Char != 0:
		return fmt.Sprintf("%v: %s contains illegal character %q", e.Kind, e.Flag, e.Char)
	case errors.Is(e.Kind, ErrMissingRequiredFlags):
		return fmt.Sprintf("%v: [%s]", e.Kind, strings.Join(e.Names, ", "))
	case errors.Is(e.Kind, ErrTooManyOperands):
		return fmt.Sprintf("%v (limit is %d): [%s]", e.Kind, e.Limit, strings.Join(e.Names, ", "))
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.Flag)
	}
}

func (e *Error) Unwrap() error {
	return e.Kind
}
