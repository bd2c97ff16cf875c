package snowflake

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source yields uniformly distributed random integers for the low order
// field of generated ids. Statistical quality is sufficient; the layout
// makes no security claim for the random field.
//
// *math/rand/v2.Rand satisfies Source directly, which is the expected way
// to inject a seeded source for deterministic tests.
type Source interface {
	// Uint64N returns a uniform random value in [0, n).
	Uint64N(n uint64) uint64
}

// globalSource draws from the process wide math/rand/v2 generator, which
// is safe for concurrent use.
type globalSource struct{}

func (globalSource) Uint64N(n uint64) uint64 {
	return rand.Uint64N(n)
}

// Generator assembles fresh ids from a clock and a random source. It
// holds no mutable state: every call reads the clock and draws fresh
// randomness, so concurrent calls cannot observe or influence each
// other's draws.
//
// A Generator built with no options is safe for concurrent use. One built
// with WithSource inherits the concurrency contract of the injected
// source; in particular a *rand/v2.Rand is not safe for concurrent use
// and such a generator must be confined to a single goroutine.
type Generator struct {
	src Source
	now func() time.Time
}

type Option func(*Generator)

// WithSource replaces the default process wide random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// WithNow replaces the wall clock, for tests that need a fixed or
// scripted time.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		src: globalSource{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Random produces a fresh id: bit 63 zero, bits 62-22 the current
// timestamp field, bit 21 zero, bits 20-0 a uniform random draw. The two
// fields occupy disjoint bit ranges so the OR cannot carry. The only
// error paths are the clock preconditions of TimestampField, which
// propagate unchanged.
func (g *Generator) Random() (Snowflake, error) {
	random := g.src.Uint64N(RandomMask + 1)

	ts, err := TimestampField(g.now())
	if err != nil {
		return 0, err
	}
	return Snowflake(ts | random), nil
}

// New is an ergonomic alias for call sites wanting a zero argument
// constructor. It is defined as exactly Random.
func (g *Generator) New() (Snowflake, error) {
	return g.Random()
}

var (
	defaultGenerator     *Generator
	defaultGeneratorOnce sync.Once
)

// DefaultGenerator returns the lazily initialized process default
// generator, which is safe for concurrent use.
func DefaultGenerator() *Generator {
	defaultGeneratorOnce.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// Random produces a fresh id using the default generator.
func Random() (Snowflake, error) {
	return DefaultGenerator().Random()
}

// New is an alias for Random, see Generator.New.
func New() (Snowflake, error) {
	return DefaultGenerator().Random()
}
