package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/toejough/clireader/internal/flags"
	"github.com/toejough/clireader/internal/tokenize"
)

// Exported constants.
const (
	DefaultOperandLimit = 1
)

// Exported variables.
var (
	ErrNegativeLimit = errors.New("operand limit must not be negative")
)

// Parser owns one rule registry and parses argument vectors against it.
// Parse calls on a shared Parser are serialised.
type Parser struct {
	mu       sync.Mutex
	registry *flags.Registry
	limit    int
	logger   *slog.Logger
}

// NewParser returns a parser with no rules, an operand limit of one and a
// logger that discards everything.
func NewParser() *Parser {
	return &Parser{
		registry: flags.NewRegistry(),
		limit:    DefaultOperandLimit,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// MustRegister is Register for static rule tables. It panics on error.
func (p *Parser) MustRegister(spelling string, behavior flags.Behavior) {
	err := p.Register(spelling, behavior)
	if err != nil {
		panic(err)
	}
}

// OperandLimit returns the maximum number of operands a parse accepts.
func (p *Parser) OperandLimit() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.limit
}

// Parse tokenizes args and runs them against the registered rules. Any failure aborts
// the parse; no partial outcome is returned.
func (p *Parser) Parse(args []string) (*Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.registry.ResetAll()

	ctx := &parseContext{
		registry: p.registry,
		tokens:   tokenize.Tokenize(args),
		logger:   p.logger,
	}

	p.logger.Debug("tokenized", "raw", len(args), "tokens", len(ctx.tokens))

	err := ctx.run()
	if err == nil {
		err = ctx.validate(p.limit)
	}

	if err != nil {
		p.logger.Debug("parse failed", "error", err)
		p.registry.ResetAll()

		return nil, err
	}

	outcome := newOutcome(p.registry, ctx.tokens, ctx.operands)

	p.logger.Debug("parse complete", "handled", outcome.HandledCount(), "operands", outcome.OperandCount())

	return outcome, nil
}

// Register declares a flag by its spelling ("-v", "-value", "--verbose").
// A failed registration leaves the existing rules untouched.
func (p *Parser) Register(spelling string, behavior flags.Behavior) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if behavior < flags.Blank || behavior > flags.SepOptional {
		return fmt.Errorf("%w: %d", flags.ErrUnknownBehavior, int(behavior))
	}

	rule, err := flags.NewRule(spelling, behavior)
	if err != nil {
		return err
	}

	err = p.registry.Register(rule)
	if err != nil {
		return err
	}

	p.logger.Debug("registered", "flag", spelling, "behavior", behavior.String())

	return nil
}

// Reset clears the per-parse state of every rule.
func (p *Parser) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.registry.ResetAll()
}

// Rules returns the registered rules in registration order.
func (p *Parser) Rules() []*flags.Rule {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.registry.Rules()
}

// SetLogger sets the logger used for debug tracing. nil restores the discarding logger.
func (p *Parser) SetLogger(logger *slog.Logger) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p.logger = logger
}

// SetOperandLimit sets how many operands a parse may collect.
func (p *Parser) SetOperandLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.limit = limit

	return nil
}
