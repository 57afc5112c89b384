package core

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/toejough/clireader/internal/flags"
	"github.com/toejough/clireader/internal/parse"
)

// parseState is the engine's only cross-token state: the rule awaiting a value, if any,
// and whether that rule is in the middle of a comma list.
type parseState struct {
	active *flags.Rule
	inList bool
}

func (s *parseState) awaiting(rule *flags.Rule) {
	s.active = rule
	s.inList = false
}

func (s *parseState) close() {
	s.active = nil
	s.inList = false
}

type parseContext struct {
	registry *flags.Registry
	tokens   []string
	operands []string
	state    parseState
	logger   *slog.Logger
}

// assign gives value to rule. A comma list leaves the rule open so a following
// list-like token can extend it; anything else closes it.
func (ctx *parseContext) assign(rule *flags.Rule, value string) error {
	if rule.Behavior().RequiresSeparator() && !rule.SeparatorSeen() {
		return &flags.Error{Kind: flags.ErrMissingSeparator, Flag: rule.Spelling()}
	}

	if !strings.Contains(value, ",") {
		rule.AddValue(value)
		ctx.state.close()

		return nil
	}

	rule.MarkValueList()

	added := 0

	for fragment := range strings.SplitSeq(value, ",") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		rule.AddValue(fragment)

		added++
	}

	ctx.state.active = rule
	ctx.state.inList = added > 0

	ctx.logger.Debug("value list", "flag", rule.Spelling(), "added", added)

	return nil
}

// checkIntegrity runs after every token while a rule is still open.
func (ctx *parseContext) checkIntegrity(next string, hasNext bool) error {
	active := ctx.state.active
	if active == nil {
		return nil
	}

	if ctx.state.inList {
		if hasNext && continuesList(next) {
			return nil
		}

		ctx.state.close()

		return nil
	}

	if !hasNext {
		return &flags.Error{Kind: flags.ErrMissingArgument, Flag: active.Spelling()}
	}

	return nil
}

// consumeValue treats token as the value of the open rule.
func (ctx *parseContext) consumeValue(token string) error {
	rule := ctx.state.active

	if !parse.IsValue(token) {
		return &flags.Error{Kind: flags.ErrMissingArgument, Flag: rule.Spelling()}
	}

	if strings.Contains(token, "=") {
		if !rule.Behavior().RequiresSeparator() {
			return &flags.Error{Kind: flags.ErrUnexpectedSeparator, Flag: rule.Spelling()}
		}

		rule.MarkSeparator()

		token = strings.TrimPrefix(token, "=")
		if token == "" {
			// bare "=": keep waiting for the value
			return nil
		}
	}

	return ctx.assign(rule, token)
}

// dispatch classifies a token while no rule is open.
func (ctx *parseContext) dispatch(token string) error {
	head, value, hasSep := parse.SplitSeparator(token)

	for _, category := range []flags.Category{flags.Long, flags.ExtendedShort} {
		if !matchesShape(category, head) {
			continue
		}

		rule := ctx.match(category, token, head, hasSep)
		if rule == nil || ctx.yieldsToCluster(rule, token, hasSep) {
			continue
		}

		ctx.logger.Debug("dispatch", "token", token, "flag", rule.Spelling(), "category", category.String())

		return ctx.handleNamed(rule, token, value, hasSep)
	}

	if parse.IsShortOption(token) {
		first, _ := utf8.DecodeRuneInString(token[1:])
		if rule := ctx.registry.LookupShort(first); rule != nil {
			ctx.logger.Debug("dispatch", "token", token, "flag", rule.Spelling(), "category", flags.Short.String())

			return ctx.walkCluster(token[1:])
		}
	}

	return ctx.unmatched(token)
}

// handleNamed processes a long or extended-short occurrence of rule.
func (ctx *parseContext) handleNamed(rule *flags.Rule, token, value string, hasSep bool) error {
	rule.BeginOccurrence()

	if hasSep {
		if !rule.Behavior().RequiresSeparator() {
			return &flags.Error{Kind: flags.ErrUnexpectedSeparator, Flag: rule.Spelling()}
		}

		rule.MarkSeparator()

		if value == "" {
			ctx.state.awaiting(rule)
			return nil
		}

		return ctx.assign(rule, value)
	}

	attached := strings.TrimPrefix(parse.StripLeadingDashes(token), rule.Name())

	if rule.Behavior() == flags.Blank {
		if attached != "" {
			return &flags.Error{Kind: flags.ErrUnrecognisedFlag, Flag: token}
		}

		rule.MarkHandled()

		return nil
	}

	if attached == "" {
		ctx.state.awaiting(rule)
		return nil
	}

	return ctx.assign(rule, attached)
}

// match finds the rule for a long or extended-short token. An explicit "=" requires
// the exact name; otherwise the longest registered prefix wins.
func (ctx *parseContext) match(category flags.Category, token, head string, hasSep bool) *flags.Rule {
	if hasSep {
		rule := ctx.registry.Lookup(head)
		if rule == nil || rule.Category() != category {
			return nil
		}

		return rule
	}

	return ctx.registry.Match(category, parse.StripLeadingDashes(token))
}

// run is the single left-to-right pass.
func (ctx *parseContext) run() error {
	for i, token := range ctx.tokens {
		var err error

		if ctx.state.active != nil {
			err = ctx.consumeValue(token)
		} else {
			err = ctx.dispatch(token)
		}

		if err != nil {
			return err
		}

		hasNext := i+1 < len(ctx.tokens)

		next := ""
		if hasNext {
			next = ctx.tokens[i+1]
		}

		if err := ctx.checkIntegrity(next, hasNext); err != nil {
			return err
		}
	}

	return nil
}

func (ctx *parseContext) unmatched(token string) error {
	if parse.IsNegativeNumber(token) || !strings.HasPrefix(token, "-") || len(token) <= 1 {
		ctx.operands = append(ctx.operands, token)
		ctx.logger.Debug("operand", "token", token)

		return nil
	}

	return &flags.Error{Kind: flags.ErrUnrecognisedFlag, Flag: token}
}

// validate applies the end-of-stream checks: operand limit first, then required flags.
func (ctx *parseContext) validate(limit int) error {
	if len(ctx.operands) > limit {
		return &flags.Error{
			Kind:  flags.ErrTooManyOperands,
			Names: append([]string(nil), ctx.operands[limit:]...),
			Limit: limit,
		}
	}

	if missing := ctx.registry.Unsatisfied(); len(missing) > 0 {
		return &flags.Error{Kind: flags.ErrMissingRequiredFlags, Names: missing}
	}

	return nil
}

// walkCluster handles "-abc" style tokens. body excludes the leading dash.
// Blank flags are handled one by one; the first value-taking flag owns the rest.
func (ctx *parseContext) walkCluster(body string) error {
	var prev *flags.Rule

	for i := 0; i < len(body); {
		c, size := utf8.DecodeRuneInString(body[i:])
		i += size

		if c == '=' && prev != nil {
			return &flags.Error{Kind: flags.ErrUnexpectedSeparator, Flag: prev.Spelling()}
		}

		rule := ctx.registry.LookupShort(c)
		if rule == nil {
			return &flags.Error{Kind: flags.ErrUnrecognisedFlag, Flag: "-" + string(c)}
		}

		rule.BeginOccurrence()

		if rule.Behavior() == flags.Blank {
			rule.MarkHandled()

			prev = rule

			continue
		}

		rest := body[i:]

		if value, ok := strings.CutPrefix(rest, "="); ok {
			if !rule.Behavior().RequiresSeparator() {
				return &flags.Error{Kind: flags.ErrUnexpectedSeparator, Flag: rule.Spelling()}
			}

			rule.MarkSeparator()

			rest = value
		}

		if rest == "" {
			ctx.state.awaiting(rule)
			return nil
		}

		return ctx.assign(rule, rest)
	}

	return nil
}

// yieldsToCluster reports whether a blank extended-short match with trailing text
// should be read as a short cluster instead, e.g. "-abc" with "-ab", "-a", "-b" and "-c".
func (ctx *parseContext) yieldsToCluster(rule *flags.Rule, token string, hasSep bool) bool {
	if hasSep || rule.Category() != flags.ExtendedShort || rule.Behavior() != flags.Blank {
		return false
	}

	if strings.TrimPrefix(parse.StripLeadingDashes(token), rule.Name()) == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(token[1:])

	return ctx.registry.LookupShort(first) != nil
}

// continuesList reports whether the token after a comma list extends that list.
func continuesList(next string) bool {
	return parse.IsValue(next) && strings.Contains(next, ",")
}

func matchesShape(category flags.Category, head string) bool {
	switch category {
	case flags.Long:
		return parse.IsLongOption(head)
	case flags.ExtendedShort:
		return parse.IsExtendedShortOption(head)
	case flags.Short:
		return parse.IsShortOption(head)
	}

	return false
}
