package reconcile

import (
	"context"
	"fmt"
	"time"

	"commerce-linker/core/models"
)

// Engine runs the matching passes in order over one pair of populations.
type Engine struct {
	passes []Pass
	now    func() time.Time
}

// EngineOption customises an Engine.
type EngineOption func(*Engine)

// WithPasses replaces the default pass cascade.
func WithPasses(passes ...Pass) EngineOption {
	return func(e *Engine) { e.passes = passes }
}

// WithClock fixes the reference time for account recency.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// DefaultPasses returns exact email, geographic/behavioural and timing
// passes configured from cfg, in that order.
func DefaultPasses(cfg Config) []Pass {
	return []Pass{
		NewExactEmailPass(),
		NewGeographicPass(cfg.RevenueTolerance),
		NewTimingPass(cfg.RecentPurchaseDays, cfg.timingWindow()),
	}
}

// NewEngine creates an engine with the default cascade.
func NewEngine(cfg Config, opts ...EngineOption) *Engine {
	e := &Engine{passes: DefaultPasses(cfg), now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run matches sessions to accounts. Each pass skips sessions claimed by an
// earlier one. Valid input never fails; only cancellation aborts a run.
func (e *Engine) Run(ctx context.Context, sessions []models.Session, accounts []models.Account) (*Result, error) {
	in := Input{Sessions: sessions, Accounts: accounts, Now: e.now().UTC()}
	state := NewState()

	for _, p := range e.passes {
		if err := p.Apply(ctx, in, state); err != nil {
			return nil, fmt.Errorf("%s pass: %w", p.Type(), err)
		}
	}

	return Summarize(in, state), nil
}
