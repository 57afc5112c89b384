package flags

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toejough/clireader/internal/parse"
)

// Exported constants.
const (
	Short Category = iota
	ExtendedShort
	Long
)

// Exported constants.
const (
	Blank Behavior = iota
	ArgRequired
	ArgOptional
	SepRequired
	SepOptional
)

// Behavior describes how a flag takes its value.
//
// ArgOptional and SepOptional are optional in the sense that the flag itself may be
// left off the command line; once it appears it still needs a value.
type Behavior int

// ParseBehavior maps a kebab-case behavior name (as used in rule files) to a Behavior.
func ParseBehavior(name string) (Behavior, error) {
	for b := Blank; b <= SepOptional; b++ {
		if b.String() == name {
			return b, nil
		}
	}

	return Blank, fmt.Errorf("%w: %q", ErrUnknownBehavior, name)
}

// ExpectsArgument reports whether a flag with this behavior consumes a value.
func (b Behavior) ExpectsArgument() bool {
	return b != Blank
}

// Required reports whether a flag with this behavior must appear on every command line.
func (b Behavior) Required() bool {
	return b == ArgRequired || b == SepRequired
}

// RequiresSeparator reports whether the value must be bound with '='.
func (b Behavior) RequiresSeparator() bool {
	return b == SepRequired || b == SepOptional
}

func (b Behavior) String() string {
	switch b {
	case Blank:
		return "blank"
	case ArgRequired:
		return "arg-required"
	case ArgOptional:
		return "arg-optional"
	case SepRequired:
		return "sep-required"
	case SepOptional:
		return "sep-optional"
	default:
		return fmt.Sprintf("behavior(%d)", int(b))
	}
}

// Category is the syntactic family of a flag, derived from its declared spelling.
type Category int

// Prefix returns the dashes that introduce a flag of this category.
func (c Category) Prefix() string {
	if c == Long {
		return "--"
	}

	return "-"
}

func (c Category) String() string {
	switch c {
	case Short:
		return "short"
	case ExtendedShort:
		return "extended-short"
	case Long:
		return "long"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Rule describes one recognised flag plus the state collected for it during a parse.
type Rule struct {
	spelling string
	name     string
	category Category
	behavior Behavior

	values        []string
	handled       bool
	separatorSeen bool
	hasValueList  bool
}

// NewRule validates a declared spelling such as "-v", "-value" or "--verbose".
func NewRule(spelling string, behavior Behavior) (*Rule, error) {
	dashes := leadingDashes(spelling)
	if dashes == 0 || dashes > 2 || len(spelling) == dashes {
		return nil, &Error{Kind: ErrMalformedFlagName, Flag: spelling}
	}

	for _, r := range spelling[dashes:] {
		if !isNameRune(r) {
			return nil, &Error{Kind: ErrMalformedFlagName, Flag: spelling, Char: r}
		}
	}

	category := Long

	// a long name must start with a letter or no token could ever reach it
	if dashes == 2 && !parse.IsLongOption(spelling) {
		first, _ := utf8.DecodeRuneInString(spelling[dashes:])
		return nil, &Error{Kind: ErrMalformedFlagName, Flag: spelling, Char: first}
	}

	if dashes == 1 {
		category = ExtendedShort
		if len(spelling) == 2 {
			category = Short
		}
	}

	return &Rule{
		spelling: spelling,
		name:     spelling[dashes:],
		category: category,
		behavior: behavior,
	}, nil
}

// Behavior returns the declared behavior.
func (r *Rule) Behavior() Behavior { return r.behavior }

// Category returns the category derived from the spelling.
func (r *Rule) Category() Category { return r.category }

// Handled reports whether the flag was seen (and given a value, if it takes one).
func (r *Rule) Handled() bool { return r.handled }

// HasValueList reports whether the last occurrence carried a comma-delimited list.
func (r *Rule) HasValueList() bool { return r.hasValueList }

// Name returns the canonical, dash-stripped name.
func (r *Rule) Name() string { return r.name }

// SeparatorSeen reports whether the last occurrence bound its value with '='.
func (r *Rule) SeparatorSeen() bool { return r.separatorSeen }

// Spelling returns the name as declared, dashes included.
func (r *Rule) Spelling() string { return r.spelling }

// Values returns a copy of the collected values in insertion order.
func (r *Rule) Values() []string {
	if len(r.values) == 0 {
		return nil
	}

	out := make([]string, len(r.values))
	copy(out, r.values)

	return out
}

// AddValue appends a value and marks the rule handled.
func (r *Rule) AddValue(value string) {
	r.values = append(r.values, value)
	r.handled = true
}

// BeginOccurrence clears the per-occurrence markers before a new appearance of the
// flag is processed. Values from earlier occurrences are kept.
func (r *Rule) BeginOccurrence() {
	r.separatorSeen = false
	r.hasValueList = false
}

// MarkHandled records that the flag was seen.
func (r *Rule) MarkHandled() { r.handled = true }

// MarkSeparator records that '=' bound the current occurrence's value.
func (r *Rule) MarkSeparator() { r.separatorSeen = true }

// MarkValueList records that the current occurrence carried a comma-delimited list.
func (r *Rule) MarkValueList() { r.hasValueList = true }

// Reset clears all per-parse state.
func (r *Rule) Reset() {
	r.values = nil
	r.handled = false
	r.separatorSeen = false
	r.hasValueList = false
}

func (r *Rule) String() string {
	return r.spelling + " (" + r.category.String() + ", " + r.behavior.String() + ")"
}

func isNameRune(r rune) bool {
	return r == '_' || r == '?' || r == '@' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func leadingDashes(s string) int {
	return len(s) - len(strings.TrimLeft(s, "-"))
}
