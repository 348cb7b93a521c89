package challenge

import (
	"fmt"

	"github.com/roach88/fretdrill/internal/theory"
)

// Answer is the canonical answer to a Challenge. The concrete type is the
// tag that decides how a guess is parsed:
//
//	FretAnswer, StringAnswer          integer
//	NoteAnswer, TuningAnswer,
//	DegreeAnswer                      note name
//	ModeAnswer                        mode name
//	IntervalAnswer                    interval name
//
// The set is closed; only this package implements Answer.
type Answer interface {
	fmt.Stringer

	// Kind reports the quiz the answer belongs to.
	Kind() Kind

	answer()
}

// FretAnswer is a fret number in 0..11.
type FretAnswer int

// NoteAnswer is the pitch sounded at a fret.
type NoteAnswer theory.PitchClass

// StringAnswer is a 1-based string position.
type StringAnswer int

// TuningAnswer is the open pitch of a string.
type TuningAnswer theory.PitchClass

// ModeAnswer is the mode implied by a tonic.
type ModeAnswer theory.Mode

// DegreeAnswer is the pitch found at a scale degree.
type DegreeAnswer theory.PitchClass

// IntervalAnswer is the width of one step of the diatonic pattern.
type IntervalAnswer theory.Interval

func (a FretAnswer) String() string     { return fmt.Sprintf("Fret(%d)", int(a)) }
func (a NoteAnswer) String() string     { return fmt.Sprintf("Note(%s)", theory.PitchClass(a)) }
func (a StringAnswer) String() string   { return fmt.Sprintf("String(%d)", int(a)) }
func (a TuningAnswer) String() string   { return fmt.Sprintf("Tuning(%s)", theory.PitchClass(a)) }
func (a ModeAnswer) String() string     { return fmt.Sprintf("Mode(%s)", theory.Mode(a)) }
func (a DegreeAnswer) String() string   { return fmt.Sprintf("Scale(%s)", theory.PitchClass(a)) }
func (a IntervalAnswer) String() string { return fmt.Sprintf("Interval(%s)", theory.Interval(a)) }

func (FretAnswer) Kind() Kind     { return Frets }
func (NoteAnswer) Kind() Kind     { return Notes }
func (StringAnswer) Kind() Kind   { return Strings }
func (TuningAnswer) Kind() Kind   { return Tunings }
func (ModeAnswer) Kind() Kind     { return Modes }
func (DegreeAnswer) Kind() Kind   { return Scales }
func (IntervalAnswer) Kind() Kind { return Intervals }

func (FretAnswer) answer()     {}
func (NoteAnswer) answer()     {}
func (StringAnswer) answer()   {}
func (TuningAnswer) answer()   {}
func (ModeAnswer) answer()     {}
func (DegreeAnswer) answer()   {}
func (IntervalAnswer) answer() {}
