package session

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fretdrill/internal/challenge"
	"github.com/roach88/fretdrill/internal/guitar"
	"github.com/roach88/fretdrill/internal/render"
	"github.com/roach88/fretdrill/internal/testutil"
)

func TestRun_SingleKindStopsAtMaxRounds(t *testing.T) {
	chooser := testutil.NewFixedChooser(
		0, 7, // round 1: E string, G
		1, 0, // round 2: A string, C
	)
	gen := challenge.NewGenerator(guitar.New(guitar.EADGBE), chooser)
	script := render.NewScript("3", "peek", "3")
	var sep bytes.Buffer

	s := New(gen, script,
		WithKinds(challenge.Frets),
		WithChooser(chooser),
		WithMaxRounds(2),
		WithSeparator(&sep),
		WithTokenGenerator(testutil.NewFixedTokenGenerator("session-1")),
	)

	stats, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Stats{
		Token:   "session-1",
		Rounds:  2,
		Guesses: 2,
		Peeks:   1,
		PerKind: map[string]int{"frets": 2},
	}, stats)
	assert.Equal(t, "\n", sep.String(), "one separator between two rounds")
	assert.Equal(t, []string{
		"With EADGBE tuning, which fret is G on E?",
		"Correct",
		"With EADGBE tuning, which fret is C on A?",
		"Fret(3)",
		"Correct",
	}, script.Lines())
	assert.Equal(t, 0, chooser.Remaining())
}

func TestRun_RandomKindPerRound(t *testing.T) {
	chooser := testutil.NewFixedChooser(
		4, 1, // kinds[4] = modes, Dorian
		6, 2, // kinds[6] = intervals, step 3
	)
	gen := challenge.NewGenerator(guitar.New(guitar.EADGBE), chooser)
	script := render.NewScript("dorian", "whole", "half")

	stats, err := New(gen, script,
		WithChooser(chooser),
		WithMaxRounds(2),
		WithTokenGenerator(testutil.NewFixedTokenGenerator("")),
	).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Rounds)
	assert.Equal(t, 3, stats.Guesses)
	assert.Equal(t, map[string]int{"modes": 1, "intervals": 1}, stats.PerKind)
	assert.Equal(t, []string{
		"In the key of C what mode has a Tonic of D?",
		"Correct",
		"In the diatonic scale, what is the width of interval 3?",
		"Incorrect",
		"Correct",
	}, script.Lines())
}

func TestRun_UnboundedEndsOnIOFailure(t *testing.T) {
	chooser := testutil.NewFixedChooser(2, 2)
	gen := challenge.NewGenerator(guitar.New(guitar.EADGBE), chooser)
	script := render.NewScript("3")

	stats, err := New(gen, script, WithKinds(challenge.Strings), WithChooser(chooser)).Run(context.Background())

	require.Error(t, err)
	assert.True(t, challenge.IsIOFailure(err))
	assert.Equal(t, 1, stats.Rounds)

	_, parseErr := uuid.Parse(stats.Token)
	assert.NoError(t, parseErr, "default token is a UUID")
}

func TestRun_CancelledContext(t *testing.T) {
	gen := challenge.NewGenerator(guitar.New(guitar.EADGBE), testutil.NewFixedChooser())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := New(gen, render.NewScript()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, stats.Rounds)
}

func warnLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func TestRun_InputClosedIsNotWarned(t *testing.T) {
	chooser := testutil.NewFixedChooser(3)
	gen := challenge.NewGenerator(guitar.New(guitar.EADGBE), chooser)
	term := render.NewTerminal(strings.NewReader(""), io.Discard)
	var logs bytes.Buffer

	_, err := New(gen, term,
		WithKinds(challenge.Strings),
		WithChooser(chooser),
		WithLogger(warnLogger(&logs)),
	).Run(context.Background())

	require.ErrorIs(t, err, io.EOF)
	assert.Empty(t, logs.String())
}

func TestRun_DeviceFailureIsWarned(t *testing.T) {
	chooser := testutil.NewFixedChooser(3)
	gen := challenge.NewGenerator(guitar.New(guitar.EADGBE), chooser)
	var logs bytes.Buffer

	_, err := New(gen, render.NewScript(),
		WithKinds(challenge.Strings),
		WithChooser(chooser),
		WithLogger(warnLogger(&logs)),
	).Run(context.Background())

	require.ErrorIs(t, err, render.ErrScriptExhausted)
	assert.Contains(t, logs.String(), "challenge aborted")
}

func TestRun_RecorderSeesRounds(t *testing.T) {
	chooser := testutil.NewFixedChooser(0, 0)
	gen := challenge.NewGenerator(guitar.New(guitar.EADGBE), chooser)
	rec := render.NewRecorder(render.NewScript("e", "e"), render.NewClock())

	_, err := New(gen, rec,
		WithKinds(challenge.Tunings),
		WithChooser(chooser),
		WithMaxRounds(2),
	).Run(context.Background())
	require.NoError(t, err)

	events := rec.Events()
	require.Len(t, events, 8)
	assert.Equal(t, render.EventRound, events[0].Type)
	assert.Equal(t, "tunings", events[0].Text)
	assert.Equal(t, render.EventRound, events[4].Type)
	assert.Equal(t, 2, events[4].Round)
}

func TestUUIDv7Generator(t *testing.T) {
	token := UUIDv7Generator{}.Generate()
	parsed, err := uuid.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
