package core

import (
	"strings"

	"github.com/toejough/clireader/internal/flags"
	"github.com/toejough/clireader/internal/parse"
	"github.com/toejough/clireader/internal/report"
	"github.com/toejough/clireader/internal/tokenize"
)

// FlagResult is what one rule collected during a parse.
type FlagResult struct {
	Spelling      string
	Name          string
	Category      flags.Category
	Behavior      flags.Behavior
	Usage         string // spelling with value notation
	Values        []string
	Handled       bool
	SeparatorSeen bool
	HasValueList  bool
}

// Outcome is an immutable snapshot of a successful parse. Methods taking a flag
// name accept "-v", "--verbose" or the canonical "verbose".
type Outcome struct {
	flags    []FlagResult
	byName   map[string]int
	operands []string
	tokens   []string
}

// FirstOperand returns the first operand, or "" when there are none.
func (o *Outcome) FirstOperand() string {
	return o.Operand(0)
}

// Flags returns a result for every registered rule, in registration order.
func (o *Outcome) Flags() []FlagResult {
	out := make([]FlagResult, len(o.flags))
	for i, f := range o.flags {
		f.Values = cloneStrings(f.Values)
		out[i] = f
	}

	return out
}

// Flattened returns the tokens joined with single spaces.
func (o *Outcome) Flattened() string {
	return tokenize.Flatten(o.tokens)
}

// Handled reports whether the named flag appeared (with a value, if it takes one).
func (o *Outcome) Handled(name string) bool {
	f, ok := o.lookup(name)
	return ok && f.Handled
}

// HandledCount returns how many registered flags were handled.
func (o *Outcome) HandledCount() int {
	n := 0

	for _, f := range o.flags {
		if f.Handled {
			n++
		}
	}

	return n
}

// HasValueList reports whether the named flag was given a comma list.
func (o *Outcome) HasValueList(name string) bool {
	f, ok := o.lookup(name)
	return ok && f.HasValueList
}

// LastOperand returns the last operand, or "" when there are none.
func (o *Outcome) LastOperand() string {
	return o.Operand(len(o.operands) - 1)
}

// Operand returns the operand at index i, or "" when i is out of range.
func (o *Outcome) Operand(i int) string {
	if i < 0 || i >= len(o.operands) {
		return ""
	}

	return o.operands[i]
}

// OperandCount returns the number of operands.
func (o *Outcome) OperandCount() int {
	return len(o.operands)
}

// Operands returns the operands in command-line order.
func (o *Outcome) Operands() []string {
	return cloneStrings(o.operands)
}

// Report renders the parse as a three-section dump: flattened tokens, handled flags, operands.
func (o *Outcome) Report(styles report.Styles) string {
	in := report.Input{
		Flattened: o.Flattened(),
		Operands:  o.operands,
	}

	for _, f := range o.flags {
		if !f.Handled {
			continue
		}

		in.Flags = append(in.Flags, report.Flag{
			Usage:     f.Usage,
			Behavior:  f.Behavior.String(),
			Values:    f.Values,
			ValueList: f.HasValueList,
		})
	}

	var sb strings.Builder

	// strings.Builder never fails a write
	_ = report.Render(&sb, in, styles)

	return sb.String()
}

// SeparatorSeen reports whether the named flag's last occurrence used '='.
func (o *Outcome) SeparatorSeen(name string) bool {
	f, ok := o.lookup(name)
	return ok && f.SeparatorSeen
}

// Tokens returns the logical tokens the raw arguments were normalised into.
func (o *Outcome) Tokens() []string {
	return cloneStrings(o.tokens)
}

// Value returns the first value of the named flag, or "".
func (o *Outcome) Value(name string) string {
	return o.ValueAt(name, 0)
}

// ValueAt returns the value at index i of the named flag, or "" when out of range.
func (o *Outcome) ValueAt(name string, i int) string {
	f, ok := o.lookup(name)
	if !ok || i < 0 || i >= len(f.Values) {
		return ""
	}

	return f.Values[i]
}

// ValueCount returns how many values the named flag collected.
func (o *Outcome) ValueCount(name string) int {
	f, ok := o.lookup(name)
	if !ok {
		return 0
	}

	return len(f.Values)
}

// Values returns the values of the named flag in the order they were given.
// It returns nil for unknown flags and flags without values.
func (o *Outcome) Values(name string) []string {
	f, ok := o.lookup(name)
	if !ok {
		return nil
	}

	return cloneStrings(f.Values)
}

func (o *Outcome) lookup(name string) (FlagResult, bool) {
	i, ok := o.byName[parse.StripLeadingDashes(name)]
	if !ok {
		return FlagResult{}, false
	}

	return o.flags[i], true
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	out := make([]string, len(in))
	copy(out, in)

	return out
}

func newOutcome(registry *flags.Registry, tokens, operands []string) *Outcome {
	rules := registry.Rules()

	o := &Outcome{
		flags:    make([]FlagResult, len(rules)),
		byName:   make(map[string]int, len(rules)),
		operands: cloneStrings(operands),
		tokens:   cloneStrings(tokens),
	}

	for i, rule := range rules {
		o.flags[i] = FlagResult{
			Spelling:      rule.Spelling(),
			Name:          rule.Name(),
			Category:      rule.Category(),
			Behavior:      rule.Behavior(),
			Usage:         flags.Usage(rule),
			Values:        rule.Values(),
			Handled:       rule.Handled(),
			SeparatorSeen: rule.SeparatorSeen(),
			HasValueList:  rule.HasValueList(),
		}
		o.byName[rule.Name()] = i
	}

	return o
}
