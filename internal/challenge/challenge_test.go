package challenge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fretdrill/internal/guitar"
	"github.com/roach88/fretdrill/internal/testutil"
	"github.com/roach88/fretdrill/internal/theory"
)

func newGen(tuning guitar.Tuning, choices ...int) *Generator {
	return NewGenerator(guitar.New(tuning), testutil.NewFixedChooser(choices...))
}

func TestGenerator_Fret(t *testing.T) {
	// string 0 (E), pitch 7 (G)
	c, err := newGen(guitar.EADGBE, 0, 7).Fret()
	require.NoError(t, err)

	assert.Equal(t, "With EADGBE tuning, which fret is G on E?", c.Question())
	assert.Equal(t, FretAnswer(3), c.Answer())
	assert.Equal(t, Frets, c.Kind())
}

func TestGenerator_Note(t *testing.T) {
	// string 1 (A), fret 3
	c, err := newGen(guitar.EADGBE, 1, 3).Note()
	require.NoError(t, err)

	assert.Equal(t, "With EADGBE tuning, what note is fret 3 on A?", c.Question())
	assert.Equal(t, NoteAnswer(theory.C), c.Answer())
}

func TestGenerator_StringIndex(t *testing.T) {
	c, err := newGen(guitar.EADGBE, 2).StringIndex()
	require.NoError(t, err)

	assert.Equal(t, "With EADGBE tuning, what string is D?", c.Question())
	assert.Equal(t, StringAnswer(3), c.Answer())
}

func TestGenerator_StringIndexUsesFirstMatch(t *testing.T) {
	// High E (index 5) is reported as string 1.
	c, err := newGen(guitar.EADGBE, 5).StringIndex()
	require.NoError(t, err)
	assert.Equal(t, StringAnswer(1), c.Answer())
}

func TestGenerator_OpenString(t *testing.T) {
	c, err := newGen(guitar.CGCFAD, 3).OpenString()
	require.NoError(t, err)

	assert.Equal(t, "With CGCFAD tuning, what is the note of open string 4?", c.Question())
	assert.Equal(t, TuningAnswer(theory.F), c.Answer())
}

func TestGenerator_Mode(t *testing.T) {
	c, err := newGen(guitar.EADGBE, int(theory.Dorian)).Mode()
	require.NoError(t, err)

	assert.Equal(t, "In the key of C what mode has a Tonic of D?", c.Question())
	assert.Equal(t, ModeAnswer(theory.Dorian), c.Answer())
}

func TestGenerator_ScaleDegree(t *testing.T) {
	c, err := newGen(guitar.EADGBE, int(theory.Dominant)).ScaleDegree()
	require.NoError(t, err)

	assert.Equal(t, "In the key of C major, what is the Dominant note?", c.Question())
	assert.Equal(t, DegreeAnswer(theory.G), c.Answer())
}

func TestGenerator_Interval(t *testing.T) {
	c, err := newGen(guitar.EADGBE, 2).Interval()
	require.NoError(t, err)

	assert.Equal(t, "In the diatonic scale, what is the width of interval 3?", c.Question())
	assert.Equal(t, IntervalAnswer(theory.Half), c.Answer())
}

func TestGenerator_GenerateDispatch(t *testing.T) {
	tests := []struct {
		kind    Kind
		choices []int
	}{
		{Frets, []int{0, 0}},
		{Notes, []int{0, 0}},
		{Strings, []int{0}},
		{Tunings, []int{0}},
		{Modes, []int{0}},
		{Scales, []int{0}},
		{Intervals, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			c, err := newGen(guitar.DADGBE, tt.choices...).Generate(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, c.Kind())
			assert.NotEmpty(t, c.Question())
		})
	}

	_, err := newGen(guitar.EADGBE).Generate(Kind(42))
	require.Error(t, err)
	assert.True(t, IsConstructionError(err))
}

func TestGenerator_FretAnswerInvertsNoteAtFret(t *testing.T) {
	pitches := theory.AllPitchClasses()

	for _, tuning := range guitar.Tunings() {
		strs := guitar.New(tuning).Strings()
		for si, open := range strs {
			for pi, want := range pitches {
				c, err := newGen(tuning, si, pi).Fret()
				require.NoError(t, err)

				fret := int(c.Answer().(FretAnswer))
				got, err := guitar.NoteAtFret(open, fret)
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s string %d, fret %d", tuning, si, fret)
			}
		}
	}
}

func TestSeededChooser_Repeatable(t *testing.T) {
	a, b := NewSeededChooser(42), NewSeededChooser(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(12), b.Intn(12))
	}
}

func TestAnswer_PeekStrings(t *testing.T) {
	assert.Equal(t, "Fret(3)", FretAnswer(3).String())
	assert.Equal(t, "Note(Db)", NoteAnswer(theory.Db).String())
	assert.Equal(t, "String(3)", StringAnswer(3).String())
	assert.Equal(t, "Tuning(E)", TuningAnswer(theory.E).String())
	assert.Equal(t, "Mode(Dorian)", ModeAnswer(theory.Dorian).String())
	assert.Equal(t, "Scale(G)", DegreeAnswer(theory.G).String())
	assert.Equal(t, "Interval(Whole)", IntervalAnswer(theory.Whole).String())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("chords")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}
