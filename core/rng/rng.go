package rng

import (
	"encoding/binary"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source is a seedable random source for the generators.
// A Source is not safe for concurrent use.
type Source struct {
	seed   int64
	chacha *rand.ChaCha8
	r      *rand.Rand
}

// New creates a Source. A zero seed picks one from the clock.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	c := rand.NewChaCha8(key)
	return &Source{seed: seed, chacha: c, r: rand.New(c)}
}

// Seed returns the effective seed, so a run can be replayed.
func (s *Source) Seed() int64 {
	return s.seed
}

// IntRange returns an int in [lo, hi].
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Uniform returns a float64 in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}

// UUID returns a random version 4 UUID drawn from the source.
func (s *Source) UUID() string {
	id, err := uuid.NewRandomFromReader(s.chacha)
	if err != nil {
		// ChaCha8 reads never fail
		panic(err)
	}
	return id.String()
}

// Digits returns n random decimal digits.
func (s *Source) Digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + s.r.IntN(10)))
	}
	return b.String()
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](s *Source, items []T) T {
	return items[s.r.IntN(len(items))]
}

// Weighted returns an index drawn proportionally to weights.
func Weighted(s *Source, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := s.r.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}

// Sample returns k distinct elements in random order.
func Sample[T any](s *Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	idx := s.r.Perm(len(items))[:k]
	out := make([]T, k)
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
