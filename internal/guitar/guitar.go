package guitar

import (
	"fmt"

	"github.com/roach88/fretdrill/internal/theory"
)

// Guitar is a tuning plus the fretboard arithmetic derived from it.
type Guitar struct {
	tuning Tuning
}

// New returns a Guitar strung in tuning. An unknown tuning panics; use
// ParseTuning to validate user input first.
func New(tuning Tuning) Guitar {
	if !tuning.Valid() {
		panic(fmt.Sprintf("guitar: invalid tuning %d", int(tuning)))
	}
	return Guitar{tuning: tuning}
}

// Tuning returns the tuning the guitar was built with.
func (g Guitar) Tuning() Tuning {
	return g.tuning
}

// Strings returns one open pitch per string, low to high.
func (g Guitar) Strings() []theory.PitchClass {
	open := tunings[g.tuning].strings
	out := make([]theory.PitchClass, len(open))
	copy(out, open[:])
	return out
}

// StringIndex returns the 1-based position of the first string tuned to
// pitch. ok is false when no string matches.
func (g Guitar) StringIndex(pitch theory.PitchClass) (index int, ok bool) {
	for i, open := range tunings[g.tuning].strings {
		if open == pitch {
			return i + 1, true
		}
	}
	return 0, false
}

// DeriveFret returns the fret in 0..11 at which want sounds on a string
// tuned to open.
//
// The two branches are kept as they are: below the open pitch the distance
// wraps through the octave, at or above it the plain difference is used.
// Both reduce modulo 12, so want == open gives 0 rather than 12.
func DeriveFret(open, want theory.PitchClass) int {
	s, w := int(open), int(want)
	if w < s {
		return (w + theory.SemitonesPerOctave - s) % theory.SemitonesPerOctave
	}
	return (w - s) % theory.SemitonesPerOctave
}

// NoteAtFret returns the pitch sounded at fret on a string tuned to open.
func NoteAtFret(open theory.PitchClass, fret int) (theory.PitchClass, error) {
	if _, err := theory.PitchClassOf(int(open)); err != nil {
		return 0, fmt.Errorf("open string: %w", err)
	}
	return theory.Transpose(open, fret), nil
}
