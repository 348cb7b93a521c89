package challenge

import "math/rand/v2"

// Chooser picks uniformly from a finite set.
// Intn returns a value in [0, n).
//
// Implemented by RandChooser (production) and testutil.FixedChooser (tests).
type Chooser interface {
	Intn(n int) int
}

// RandChooser draws from a PCG source.
type RandChooser struct {
	rng *rand.Rand
}

// NewRandChooser returns a chooser seeded from the runtime's entropy.
func NewRandChooser() *RandChooser {
	return NewSeededChooser(rand.Uint64())
}

// NewSeededChooser returns a chooser that repeats the same sequence for
// the same seed.
func NewSeededChooser(seed uint64) *RandChooser {
	return &RandChooser{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn implements Chooser.
func (c *RandChooser) Intn(n int) int {
	return c.rng.IntN(n)
}
