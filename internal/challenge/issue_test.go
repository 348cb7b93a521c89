package challenge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fretdrill/internal/guitar"
	"github.com/roach88/fretdrill/internal/render"
	"github.com/roach88/fretdrill/internal/theory"
)

func TestValidate_ByTag(t *testing.T) {
	tests := []struct {
		name    string
		answer  Answer
		guess   string
		correct bool
	}{
		{"fret exact", FretAnswer(1), "1", true},
		{"fret octave up", FretAnswer(1), "13", true},
		{"fret wrong", FretAnswer(1), "2", false},
		{"fret twelve is open", FretAnswer(0), "12", true},
		{"string exact", StringAnswer(3), "3", true},
		{"string not reduced", StringAnswer(3), "15", false},
		{"note flat", NoteAnswer(theory.Db), "db", true},
		{"note sharp", NoteAnswer(theory.Db), "c#", true},
		{"note wrong", NoteAnswer(theory.Db), "d", false},
		{"tuning", TuningAnswer(theory.E), "E", true},
		{"degree", DegreeAnswer(theory.G), "g", true},
		{"mode", ModeAnswer(theory.Lydian), "lydian", true},
		{"mode wrong", ModeAnswer(theory.Lydian), "ionian", false},
		{"interval half", IntervalAnswer(theory.Half), "semitone", true},
		{"interval whole", IntervalAnswer(theory.Whole), "tone", true},
		{"interval wrong", IntervalAnswer(theory.Whole), "half", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New("q", tt.answer).Validate(tt.guess)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, got)
		})
	}
}

func TestValidate_ParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		guess  string
	}{
		{"fret", FretAnswer(3), "three"},
		{"string", StringAnswer(3), "d"},
		{"note", NoteAnswer(theory.Db), "xyz"},
		{"mode", ModeAnswer(theory.Dorian), "minor"},
		{"interval", IntervalAnswer(theory.Half), "third"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("q", tt.answer).Validate(tt.guess)
			require.Error(t, err)
			assert.True(t, IsGuessError(err))
			assert.False(t, IsIOFailure(err))
		})
	}
}

func TestIssue_CorrectFirstTime(t *testing.T) {
	script := render.NewScript("3")
	out, err := Issue(New("q", FretAnswer(3)), script)

	require.NoError(t, err)
	assert.Equal(t, Outcome{Guesses: 1}, out)
	assert.Equal(t, []string{"q", "Correct"}, script.Lines())
}

func TestIssue_PeekDoesNotConsumeGuess(t *testing.T) {
	script := render.NewScript("peek", "PEEK", "3")
	out, err := Issue(New("q", FretAnswer(3)), script)

	require.NoError(t, err)
	assert.Equal(t, Outcome{Guesses: 1, Peeks: 2}, out)
	assert.Equal(t, []string{"q", "Fret(3)", "Fret(3)", "Correct"}, script.Lines())
}

func TestIssue_MalformedGuessIsIncorrect(t *testing.T) {
	script := render.NewScript("xyz", "c#")
	out, err := Issue(New("q", NoteAnswer(theory.Db)), script)

	require.NoError(t, err)
	assert.Equal(t, 2, out.Guesses)
	assert.Equal(t, []string{"q", "Incorrect", "Correct"}, script.Lines())
}

func TestIssue_MalformedGuessesAcrossKinds(t *testing.T) {
	tests := []struct {
		answer  Answer
		guesses []string
		final   string
	}{
		{FretAnswer(3), []string{"three", "3.0", "-"}, "3"},
		{StringAnswer(2), []string{"a", "2nd"}, "2"},
		{NoteAnswer(theory.C), []string{"h", "c##"}, "c"},
		{TuningAnswer(theory.E), []string{"e7"}, "e"},
		{DegreeAnswer(theory.G), []string{"sol"}, "g"},
		{ModeAnswer(theory.Dorian), []string{"minor"}, "dorian"},
		{IntervalAnswer(theory.Whole), []string{"third"}, "whole"},
	}

	for _, tt := range tests {
		t.Run(tt.answer.Kind().String(), func(t *testing.T) {
			c := New("q", tt.answer)
			for _, g := range tt.guesses {
				_, err := c.Validate(g)
				require.Error(t, err, g)
				assert.True(t, IsGuessError(err), g)
			}

			script := render.NewScript(append(tt.guesses, tt.final)...)
			out, err := Issue(c, script)
			require.NoError(t, err)
			assert.Equal(t, len(tt.guesses)+1, out.Guesses)
		})
	}
}

// unjudgedAnswer is an Answer that Validate has no rule for.
type unjudgedAnswer struct{}

func (unjudgedAnswer) String() string { return "Unjudged" }
func (unjudgedAnswer) Kind() Kind     { return Frets }
func (unjudgedAnswer) answer()        {}

func TestIssue_UnjudgeableChallengeIsFatal(t *testing.T) {
	script := render.NewScript("3", "3")
	out, err := Issue(New("q", unjudgedAnswer{}), script)

	require.Error(t, err)
	assert.True(t, IsConstructionError(err))
	assert.False(t, IsGuessError(err))
	assert.Equal(t, 0, out.Guesses)
	assert.Equal(t, []string{"q"}, script.Lines())
}

func TestIssue_LoopsUntilCorrect(t *testing.T) {
	script := render.NewScript("1", "2", "4", "15")
	out, err := Issue(New("q", FretAnswer(3)), script)

	require.NoError(t, err)
	assert.Equal(t, 4, out.Guesses)
	assert.Equal(t, []string{"q", "Incorrect", "Incorrect", "Incorrect", "Correct"}, script.Lines())
}

func TestIssue_ScriptExhaustedIsIOFailure(t *testing.T) {
	script := render.NewScript("1")
	out, err := Issue(New("q", FretAnswer(3)), script)

	require.Error(t, err)
	assert.True(t, IsIOFailure(err))
	assert.True(t, errors.Is(err, render.ErrScriptExhausted))
	assert.Equal(t, 1, out.Guesses)
}

type brokenRenderer struct {
	render.Script
	failOn string
}

var errBroken = errors.New("broken pipe")

func (b *brokenRenderer) Question(text string) error {
	if b.failOn == "question" {
		return errBroken
	}
	return b.Script.Question(text)
}

func (b *brokenRenderer) Hint(text string) error {
	if b.failOn == "hint" {
		return errBroken
	}
	return b.Script.Hint(text)
}

func (b *brokenRenderer) Verdict(correct bool) error {
	if b.failOn == "verdict" {
		return errBroken
	}
	return b.Script.Verdict(correct)
}

func TestIssue_RendererFailuresAreFatal(t *testing.T) {
	for _, failOn := range []string{"question", "hint", "verdict"} {
		t.Run(failOn, func(t *testing.T) {
			r := &brokenRenderer{Script: *render.NewScript("peek", "3"), failOn: failOn}
			_, err := Issue(New("q", FretAnswer(3)), r)

			require.Error(t, err)
			assert.True(t, IsIOFailure(err))
			assert.ErrorIs(t, err, errBroken)
		})
	}
}

func TestIssue_EndToEndFretChallenge(t *testing.T) {
	// EADGBE, low E string, target G.
	gen := newGen(guitar.EADGBE, 0, int(theory.G))
	c, err := gen.Fret()
	require.NoError(t, err)

	assert.Contains(t, c.Question(), "E")
	assert.Contains(t, c.Question(), "G")

	for _, guess := range []string{"3", "15", "27"} {
		ok, err := c.Validate(guess)
		require.NoError(t, err)
		assert.True(t, ok, guess)
	}
	for _, guess := range []string{"0", "2", "4", "12"} {
		ok, err := c.Validate(guess)
		require.NoError(t, err)
		assert.False(t, ok, guess)
	}

	script := render.NewScript("peek", "4", "g", "3")
	out, err := Issue(c, script)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Guesses: 3, Peeks: 1}, out)
	assert.Equal(t, []string{
		"With EADGBE tuning, which fret is G on E?",
		"Fret(3)",
		"Incorrect",
		"Incorrect",
		"Correct",
	}, script.Lines())
}
