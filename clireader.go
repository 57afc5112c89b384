// Package clireader parses command-line arguments against a set of declared flag rules.
//
// Flags are declared by spelling, and the spelling fixes the flag's category:
//
//	-v         short; may be clustered ("-abc") and take attached values ("-k707")
//	-value     extended short
//	--verbose  long
//
// and by a Behavior that says how the flag takes a value:
//
//	Blank        no value
//	ArgRequired  flag must appear; value follows as "--depth 82" or "--depth82"
//	ArgOptional  flag may be left off; when present it needs a value
//	SepRequired  flag must appear; value bound with '=': "--range=12,24"
//	SepOptional  flag may be left off; when present it needs "=value"
//
// A value containing commas is split into a value list. Arguments the shell split
// around '=' or ',' are rejoined first, so "--range= 12,24" and "-b = 7" parse as
// typed. Negative numbers are never taken for flags unless registered as one.
//
// Example:
//
//	p := clireader.New()
//	p.MustRegister("-v", clireader.Blank)
//	p.MustRegister("--range", clireader.SepRequired)
//
//	out, err := p.Parse(os.Args[1:])
//	if err != nil {
//		var perr *clireader.Error
//		if errors.As(err, &perr) { ... }
//	}
//
//	fmt.Println(out.Values("--range"), out.FirstOperand())
package clireader

import (
	"github.com/toejough/clireader/internal/core"
	"github.com/toejough/clireader/internal/flags"
	"github.com/toejough/clireader/internal/report"
	"github.com/toejough/clireader/internal/tokenize"
)

// --- Re-exported types ---

// Behavior describes how a flag takes its value.
type Behavior = flags.Behavior

// Category is the syntactic family of a flag, derived from its spelling.
type Category = flags.Category

// Error is the structured failure returned by Register and Parse.
// Its Kind is one of the Err* values below, so errors.Is works against them.
type Error = flags.Error

// FlagResult is what one flag collected during a parse.
type FlagResult = core.FlagResult

// Outcome is an immutable snapshot of a successful parse.
type Outcome = core.Outcome

// Parser owns a set of flag rules and parses argument vectors against them.
type Parser = core.Parser

// Styles controls the look of Outcome.Report.
type Styles = report.Styles

// Re-export Behavior constants.
const (
	Blank       = flags.Blank
	ArgRequired = flags.ArgRequired
	ArgOptional = flags.ArgOptional
	SepRequired = flags.SepRequired
	SepOptional = flags.SepOptional
)

// Re-export Category constants.
const (
	Short         = flags.Short
	ExtendedShort = flags.ExtendedShort
	Long          = flags.Long
)

// DefaultOperandLimit is the number of operands a new Parser accepts.
const DefaultOperandLimit = core.DefaultOperandLimit

// Exported variables.
var (
	ErrDuplicateFlag        = flags.ErrDuplicateFlag
	ErrMalformedFlagName    = flags.ErrMalformedFlagName
	ErrMissingArgument      = flags.ErrMissingArgument
	ErrMissingRequiredFlags = flags.ErrMissingRequiredFlags
	ErrMissingSeparator     = flags.ErrMissingSeparator
	ErrNegativeLimit        = core.ErrNegativeLimit
	ErrTooManyOperands      = flags.ErrTooManyOperands
	ErrUnexpectedSeparator  = flags.ErrUnexpectedSeparator
	ErrUnknownBehavior      = flags.ErrUnknownBehavior
	ErrUnrecognisedFlag     = flags.ErrUnrecognisedFlag
)

// --- Public API ---

// DefaultStyles returns the colored report styles.
func DefaultStyles() Styles {
	return report.DefaultStyles()
}

// Flatten joins tokens with single spaces.
func Flatten(tokens []string) string {
	return tokenize.Flatten(tokens)
}

// New returns a Parser with no rules and an operand limit of DefaultOperandLimit.
func New() *Parser {
	return core.NewParser()
}

// ParseBehavior maps a name such as "sep-optional" to its Behavior.
func ParseBehavior(name string) (Behavior, error) {
	return flags.ParseBehavior(name)
}

// PlainStyles returns report styles without any formatting.
func PlainStyles() Styles {
	return report.PlainStyles()
}

// Tokenize rejoins arguments the shell split around '=' and ','.
func Tokenize(raw []string) []string {
	return tokenize.Tokenize(raw)
}

// Usage renders a flag's spelling with its value notation, e.g. "--depth <value>".
func Usage(spelling string, behavior Behavior) (string, error) {
	rule, err := flags.NewRule(spelling, behavior)
	if err != nil {
		return "", err
	}

	return flags.Usage(rule), nil
}
