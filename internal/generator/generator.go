package generator

import (
	"math/rand/v2"
	"time"
)

// Generator synthesizes CV records. It is not safe for concurrent use;
// give each goroutine its own Generator and random source.
type Generator struct {
	rng  *rand.Rand
	opts Options
}

// New creates a Generator that draws from rng.
func New(rng *rand.Rand, opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Generator{rng: rng, opts: opts.withDefaults()}, nil
}

// NewSeeded creates a Generator backed by a PCG source seeded with seed.
// The same seed and clock produce the same records.
func NewSeeded(seed uint64, opts Options) (*Generator, error) {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), opts)
}

// Options returns the sampling options in effect.
func (g *Generator) Options() Options {
	return g.opts
}

func (g *Generator) now() time.Time {
	return g.opts.Now()
}

// pick returns a uniformly chosen element of table.
func (g *Generator) pick(table []string) string {
	return table[g.rng.IntN(len(table))]
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// sample returns k distinct elements of table in random order.
func (g *Generator) sample(table []string, k int) []string {
	perm := g.rng.Perm(len(table))
	out := make([]string, k)
	for i := range k {
		out[i] = table[perm[i]]
	}
	return out
}
