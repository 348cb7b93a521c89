package theory

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PitchClass is one of the twelve semitones, C=0 through B=11.
type PitchClass int

const (
	C PitchClass = iota
	Db
	D
	Eb
	E
	F
	Gb
	G
	Ab
	A
	Bb
	B
)

// SemitonesPerOctave is the modulus of pitch class arithmetic.
const SemitonesPerOctave = 12

var pitchNames = [SemitonesPerOctave]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// pitchSpellings maps every accepted lower-case spelling to its class.
// Sharps resolve to the enharmonic flat.
var pitchSpellings = map[string]PitchClass{
	"c":  C,
	"c#": Db, "db": Db,
	"d":  D,
	"d#": Eb, "eb": Eb,
	"e":  E,
	"f":  F,
	"f#": Gb, "gb": Gb,
	"g":  G,
	"g#": Ab, "ab": Ab,
	"a":  A,
	"a#": Bb, "bb": Bb,
	"b":  B,
}

var accidentals = strings.NewReplacer("♯", "#", "♭", "b")

// String returns the canonical flat spelling ("Db", not "C#").
func (p PitchClass) String() string {
	if !p.Valid() {
		return "PitchClass(" + strconv.Itoa(int(p)) + ")"
	}
	return pitchNames[p]
}

// Valid reports whether p is one of the twelve named classes.
func (p PitchClass) Valid() bool {
	return p >= C && p <= B
}

// AllPitchClasses returns the twelve classes in ordinal order.
func AllPitchClasses() []PitchClass {
	out := make([]PitchClass, SemitonesPerOctave)
	for i := range out {
		out[i] = PitchClass(i)
	}
	return out
}

// PitchClassOf maps an ordinal in 0..11 to its class.
// Any other ordinal is an OffsetError.
func PitchClassOf(ordinal int) (PitchClass, error) {
	p := PitchClass(ordinal)
	if !p.Valid() {
		return 0, offsetError(ordinal)
	}
	return p, nil
}

// Transpose moves base by offset semitones, wrapping modulo 12.
// Negative offsets wrap downwards.
func Transpose(base PitchClass, offset int) PitchClass {
	return PitchClass(mod(int(base)+offset, SemitonesPerOctave))
}

// ParsePitch parses a note name such as "e", "C#", "db" or "B♭".
// Matching is case-insensitive and ignores surrounding whitespace.
func ParsePitch(text string) (PitchClass, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	key = accidentals.Replace(norm.NFC.String(key))
	if p, ok := pitchSpellings[key]; ok {
		return p, nil
	}
	return 0, notationError(text)
}

// NormalizeFretIndex reduces any fret number into 0..11, so "12" is
// equivalent to the open string.
func NormalizeFretIndex(value int) int {
	return mod(value, SemitonesPerOctave)
}

func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
