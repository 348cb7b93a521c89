package challenge

import (
	"fmt"

	"github.com/roach88/fretdrill/internal/guitar"
	"github.com/roach88/fretdrill/internal/theory"
)

// Challenge is a question and the answer it is judged against.
// It is immutable once built.
type Challenge struct {
	question string
	answer   Answer
}

// New pairs a question with its answer.
func New(question string, answer Answer) Challenge {
	return Challenge{question: question, answer: answer}
}

// Question returns the prompt shown to the solver.
func (c Challenge) Question() string {
	return c.question
}

// Answer returns the canonical answer. Renderers show its String form
// when the solver peeks.
func (c Challenge) Answer() Answer {
	return c.answer
}

// Kind returns the quiz the challenge was generated for.
func (c Challenge) Kind() Kind {
	return c.answer.Kind()
}

// Generator builds random challenges for one guitar.
type Generator struct {
	guitar  guitar.Guitar
	chooser Chooser
}

// NewGenerator returns a Generator drawing from chooser.
func NewGenerator(g guitar.Guitar, chooser Chooser) *Generator {
	return &Generator{guitar: g, chooser: chooser}
}

// Guitar returns the guitar questions are asked about.
func (g *Generator) Guitar() guitar.Guitar {
	return g.guitar
}

// Generate builds a challenge of the given kind.
func (g *Generator) Generate(kind Kind) (Challenge, error) {
	switch kind {
	case Frets:
		return g.Fret()
	case Notes:
		return g.Note()
	case Strings:
		return g.StringIndex()
	case Tunings:
		return g.OpenString()
	case Modes:
		return g.Mode()
	case Scales:
		return g.ScaleDegree()
	case Intervals:
		return g.Interval()
	default:
		return Challenge{}, constructionError(kind, fmt.Errorf("no generator for %s", kind))
	}
}

// Fret asks which fret a random note sits on for a random string.
func (g *Generator) Fret() (Challenge, error) {
	open := g.chooseString()
	want := g.choosePitch()

	return New(
		fmt.Sprintf("With %s tuning, which fret is %s on %s?", g.guitar.Tuning(), want, open),
		FretAnswer(guitar.DeriveFret(open, want)),
	), nil
}

// Note asks which note sounds at a random fret of a random string.
func (g *Generator) Note() (Challenge, error) {
	open := g.chooseString()
	fret := g.chooseFret()

	note, err := guitar.NoteAtFret(open, fret)
	if err != nil {
		return Challenge{}, constructionError(Notes, err)
	}
	return New(
		fmt.Sprintf("With %s tuning, what note is fret %d on %s?", g.guitar.Tuning(), fret, open),
		NoteAnswer(note),
	), nil
}

// StringIndex asks for the position of an open string.
func (g *Generator) StringIndex() (Challenge, error) {
	open := g.chooseString()

	index, err := g.stringIndex(Strings, open)
	if err != nil {
		return Challenge{}, err
	}
	return New(
		fmt.Sprintf("With %s tuning, what string is %s?", g.guitar.Tuning(), open),
		StringAnswer(index),
	), nil
}

// OpenString asks for the open note of a string position.
func (g *Generator) OpenString() (Challenge, error) {
	open := g.chooseString()

	index, err := g.stringIndex(Tunings, open)
	if err != nil {
		return Challenge{}, err
	}
	return New(
		fmt.Sprintf("With %s tuning, what is the note of open string %d?", g.guitar.Tuning(), index),
		TuningAnswer(open),
	), nil
}

// Mode asks which mode of C has a given tonic.
func (g *Generator) Mode() (Challenge, error) {
	const key = theory.C
	const degree = theory.Tonic
	mode := g.chooseMode()

	scale, err := theory.NewScale(theory.DiatonicPattern(), mode, key)
	if err != nil {
		return Challenge{}, constructionError(Modes, err)
	}
	return New(
		fmt.Sprintf("In the key of %s what mode has a %s of %s?", key, degree, scale.Note(degree)),
		ModeAnswer(mode),
	), nil
}

// ScaleDegree asks for a random degree of C major.
func (g *Generator) ScaleDegree() (Challenge, error) {
	const key = theory.C
	scale, err := theory.NewScale(theory.DiatonicPattern(), theory.Ionian, key)
	if err != nil {
		return Challenge{}, constructionError(Scales, err)
	}
	degree := g.chooseDegree()

	return New(
		fmt.Sprintf("In the key of %s major, what is the %s note?", key, degree),
		DegreeAnswer(scale.Note(degree)),
	), nil
}

// Interval asks for the width of one step of the diatonic pattern.
func (g *Generator) Interval() (Challenge, error) {
	pattern := theory.DiatonicPattern()
	index := g.chooser.Intn(len(pattern))

	return New(
		fmt.Sprintf("In the diatonic scale, what is the width of interval %d?", index+1),
		IntervalAnswer(pattern[index]),
	), nil
}

func (g *Generator) stringIndex(kind Kind, open theory.PitchClass) (int, error) {
	index, ok := g.guitar.StringIndex(open)
	if !ok {
		return 0, constructionError(kind, fmt.Errorf("%s is not a string of %s", open, g.guitar.Tuning()))
	}
	return index, nil
}

func (g *Generator) choosePitch() theory.PitchClass {
	all := theory.AllPitchClasses()
	return all[g.chooser.Intn(len(all))]
}

func (g *Generator) chooseString() theory.PitchClass {
	strs := g.guitar.Strings()
	return strs[g.chooser.Intn(len(strs))]
}

func (g *Generator) chooseFret() int {
	return g.chooser.Intn(theory.SemitonesPerOctave)
}

func (g *Generator) chooseMode() theory.Mode {
	all := theory.AllModes()
	return all[g.chooser.Intn(len(all))]
}

func (g *Generator) chooseDegree() theory.Degree {
	all := theory.AllDegrees()
	return all[g.chooser.Intn(len(all))]
}
