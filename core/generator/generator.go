package generator

import (
	"fmt"
	"strings"
	"time"

	"commerce-linker/core/rng"
)

// Generator builds synthetic account and session populations.
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg      Config
	src      *rng.Source
	now      func() time.Time
	progress func(n int)
}

// Option customises a Generator.
type Option func(*Generator)

// WithSource replaces the random source built from Config.Seed.
func WithSource(src *rng.Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithClock fixes the reference time used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithProgress registers a callback invoked once per generated row.
func WithProgress(fn func(n int)) Option {
	return func(g *Generator) { g.progress = fn }
}

// New creates a Generator.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = rng.New(cfg.Seed)
	}
	return g
}

// Seed returns the seed of the underlying source.
func (g *Generator) Seed() int64 {
	return g.src.Seed()
}

// Config returns the generator limits.
func (g *Generator) Config() Config {
	return g.cfg
}

func (g *Generator) tick() {
	if g.progress != nil {
		g.progress(1)
	}
}

type identity struct {
	first string
	last  string
	email string
}

func (id identity) fullName() string {
	return id.first + " " + id.last
}

func (g *Generator) newIdentity() identity {
	first := rng.Pick(g.src, firstNames)
	last := rng.Pick(g.src, lastNames)
	local := strings.ToLower(strings.ReplaceAll(first+"."+last, " ", ""))
	return identity{
		first: first,
		last:  last,
		email: fmt.Sprintf("%s%d@%s", local, g.src.IntRange(1, 999), rng.Pick(g.src, emailDomains)),
	}
}

func (g *Generator) streetAddress() string {
	return fmt.Sprintf("%d %s %s", g.src.IntRange(1, 999), rng.Pick(g.src, streetNames), rng.Pick(g.src, streetSuffixes))
}

func (g *Generator) ipv4() string {
	return fmt.Sprintf("%d.%d.%d.%d", g.src.IntRange(1, 223), g.src.IntRange(0, 255), g.src.IntRange(0, 255), g.src.IntRange(1, 254))
}

// daysBetween returns the whole days from a to b, truncated.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
