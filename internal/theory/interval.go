package theory

import "strings"

// Interval is the size of a single scale step.
type Interval int

const (
	Unison Interval = iota
	Half
	Whole
)

var intervalNames = [...]string{"Unison", "Half", "Whole"}

var intervalSpellings = map[string]Interval{
	"half":     Half,
	"semitone": Half,
	"whole":    Whole,
	"tone":     Whole,
}

// String returns the interval name.
func (i Interval) String() string {
	if !i.Valid() {
		return "Interval(?)"
	}
	return intervalNames[i]
}

// Valid reports whether i is one of the named intervals.
func (i Interval) Valid() bool {
	return i >= Unison && i <= Whole
}

// Semitones returns the width of the step: 0, 1 or 2.
func (i Interval) Semitones() int {
	switch i {
	case Unison:
		return 0
	case Half:
		return 1
	case Whole:
		return 2
	default:
		panic("theory: invalid interval " + i.String())
	}
}

// ParseInterval accepts "half"/"semitone" and "whole"/"tone", any case.
func ParseInterval(text string) (Interval, error) {
	if i, ok := intervalSpellings[strings.ToLower(strings.TrimSpace(text))]; ok {
		return i, nil
	}
	return 0, &Error{Code: ErrCodeUnrecognisedInterval, Input: text}
}

// diatonic is the six steps between the seven notes of the major scale.
// The closing half step back to the octave is implied.
var diatonic = [6]Interval{Whole, Whole, Half, Whole, Whole, Whole}

// DiatonicPattern returns a copy of the six-step diatonic interval pattern.
func DiatonicPattern() [6]Interval {
	return diatonic
}
