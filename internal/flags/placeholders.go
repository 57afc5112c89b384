package flags

// Placeholder describes how a flag's value is written on the command line.
type Placeholder struct {
	Name   string // e.g. "<value>"
	Format string // e.g. "=<value>[,<value>...]"
}

// PlaceholderFor returns the value notation for a behavior. Blank flags have none.
func PlaceholderFor(b Behavior) *Placeholder {
	switch b {
	case ArgRequired, ArgOptional:
		return &Placeholder{Name: "<value>", Format: " <value>"}
	case SepRequired, SepOptional:
		return &Placeholder{Name: "<value>", Format: "=<value>[,<value>...]"}
	default:
		return nil
	}
}

// Usage renders a rule's spelling with its value notation. Optional value-taking
// flags are bracketed as a whole, since their value is never optional:
// "[-b=<value>[,<value>...]]".
func Usage(rule *Rule) string {
	p := PlaceholderFor(rule.behavior)
	if p == nil {
		return rule.spelling
	}

	if rule.behavior.Required() {
		return rule.spelling + p.Format
	}

	return "[" + rule.spelling + p.Format + "]"
}
