package core

import "github.com/toejough/clireader/internal/flags"

// RulesForTest exposes the live rules so tests can inspect per-parse state.
func RulesForTest(p *Parser) []*flags.Rule {
	return p.registry.Rules()
}

// RunTokensForTest runs the engine over tokens that skip the tokenizer.
func RunTokensForTest(p *Parser, tokens []string) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.registry.ResetAll()

	ctx := &parseContext{registry: p.registry, tokens: tokens, logger: p.logger}

	err := ctx.run()
	if err == nil {
		err = ctx.validate(p.limit)
	}

	return ctx.operands, err
}
