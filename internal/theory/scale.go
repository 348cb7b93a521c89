package theory

import "fmt"

// Scale is an ordered run of seven pitch classes.
// Index 0 is the Tonic of the mode the scale was built in.
type Scale struct {
	notes [DegreesPerScale]PitchClass
}

// NewScale walks the interval pattern up from key, then rotates the seven
// resulting notes left by the mode's ordinal.
//
// Building the diatonic pattern from C in Aeolian gives A B C D E F G: the
// underlying notes are those of C major, heard from the sixth degree.
func NewScale(pattern [6]Interval, mode Mode, key PitchClass) (Scale, error) {
	if !key.Valid() {
		return Scale{}, offsetError(int(key))
	}
	if !mode.Valid() {
		return Scale{}, fmt.Errorf("building scale: mode: %w", offsetError(int(mode)))
	}

	var built [DegreesPerScale]PitchClass
	built[0] = key
	note := key
	for i, step := range pattern {
		if !step.Valid() {
			return Scale{}, fmt.Errorf("building scale: step %d: %w", i, offsetError(int(step)))
		}
		note = Transpose(note, step.Semitones())
		built[i+1] = note
	}

	var s Scale
	for i := range built {
		s.notes[i] = built[(i+int(mode))%DegreesPerScale]
	}
	return s, nil
}

// Note returns the pitch at degree. An invalid degree is a programming
// error and panics.
func (s Scale) Note(degree Degree) PitchClass {
	if !degree.Valid() {
		panic(fmt.Sprintf("theory: degree %d out of range", int(degree)))
	}
	return s.notes[degree]
}

// Notes returns the seven pitch classes in order.
func (s Scale) Notes() []PitchClass {
	out := make([]PitchClass, DegreesPerScale)
	copy(out, s.notes[:])
	return out
}
