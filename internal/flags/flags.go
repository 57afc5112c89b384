// Package flags holds the flag rules a parser recognises and the registry that owns them.
// All lookup, prefix matching and required-flag tracking derive from the registry.
package flags

import "strings"

// Registry is an ordered collection of rules keyed by canonical name.
// It is not safe for concurrent use; callers serialise parses.
type Registry struct {
	rules  []*Rule
	byName map[string]*Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Rule)}
}

// Len returns the number of registered rules.
func (reg *Registry) Len() int {
	return len(reg.rules)
}

// Lookup returns the rule for name, which may be canonical ("verbose") or
// spelled with dashes ("--verbose", "-v"), or nil.
func (reg *Registry) Lookup(name string) *Rule {
	return reg.byName[strings.TrimLeft(name, "-")]
}

// LookupShort returns the short rule for a single character, or nil.
func (reg *Registry) LookupShort(c rune) *Rule {
	rule := reg.byName[string(c)]
	if rule == nil || rule.category != Short {
		return nil
	}

	return rule
}

// Match returns the rule of the given category whose name is the longest prefix of
// body (a dash-stripped token), or nil. The result does not depend on
// registration order: "--portal99" resolves to "portal" even when "port" exists.
func (reg *Registry) Match(category Category, body string) *Rule {
	var best *Rule

	for _, rule := range reg.rules {
		if rule.category != category || !strings.HasPrefix(body, rule.name) {
			continue
		}

		if best == nil || len(rule.name) > len(best.name) {
			best = rule
		}
	}

	return best
}

// Register adds a rule. A rule whose canonical name is taken is rejected and the
// registry is left unchanged.
func (reg *Registry) Register(rule *Rule) error {
	if existing, ok := reg.byName[rule.name]; ok {
		return &Error{Kind: ErrDuplicateFlag, Flag: rule.spelling, Names: []string{existing.spelling}}
	}

	reg.byName[rule.name] = rule
	reg.rules = append(reg.rules, rule)

	return nil
}

// Required returns the declared spellings of every required rule, in registration order.
func (reg *Registry) Required() []string {
	var out []string

	for _, rule := range reg.rules {
		if rule.behavior.Required() {
			out = append(out, rule.spelling)
		}
	}

	return out
}

// ResetAll clears the per-parse state of every rule.
func (reg *Registry) ResetAll() {
	for _, rule := range reg.rules {
		rule.Reset()
	}
}

// Rules returns the registered rules in registration order.
func (reg *Registry) Rules() []*Rule {
	out := make([]*Rule, len(reg.rules))
	copy(out, reg.rules)

	return out
}

// Unsatisfied returns the declared spellings of required rules not yet handled.
func (reg *Registry) Unsatisfied() []string {
	var out []string

	for _, rule := range reg.rules {
		if rule.behavior.Required() && !rule.handled {
			out = append(out, rule.spelling)
		}
	}

	return out
}
