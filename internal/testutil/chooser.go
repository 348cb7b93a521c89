package testutil

import "fmt"

// FixedChooser replays a predetermined sequence of choices.
//
// It satisfies challenge.Chooser. Tests list the index each draw should
// return, in draw order, and get a byte-identical question every run:
//
//	chooser := NewFixedChooser(0, 7) // string 0 (E), pitch 7 (G)
//	gen := challenge.NewGenerator(guitar.New(guitar.EADGBE), chooser)
//	c, _ := gen.Fret() // "With EADGBE tuning, which fret is G on E?"
//
// Panics when the sequence is exhausted or a value is outside [0, n).
// This is a fail-fast approach to catch a misconfigured test.
type FixedChooser struct {
	choices []int
	idx     int
}

// NewFixedChooser creates a chooser that returns choices in order.
func NewFixedChooser(choices ...int) *FixedChooser {
	return &FixedChooser{choices: choices}
}

// Intn returns the next predetermined choice.
func (c *FixedChooser) Intn(n int) int {
	if c.idx >= len(c.choices) {
		panic("FixedChooser: all choices exhausted")
	}
	v := c.choices[c.idx]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("FixedChooser: choice %d at position %d out of range [0, %d)", v, c.idx, n))
	}
	c.idx++
	return v
}

// Remaining reports how many choices are left.
func (c *FixedChooser) Remaining() int {
	return len(c.choices) - c.idx
}
