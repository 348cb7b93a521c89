package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_PlainOutput(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("  C#  \n"), &out)

	require.NoError(t, term.Question("With EADGBE tuning, what string is D?"))
	resp, err := term.Response()
	require.NoError(t, err)
	require.NoError(t, term.Hint("String(3)"))
	require.NoError(t, term.Verdict(false))
	require.NoError(t, term.Verdict(true))

	assert.Equal(t, "c#", resp)
	assert.Equal(t,
		"With EADGBE tuning, what string is D?\n> String(3)\nIncorrect\nCorrect\n",
		out.String())
}

func TestTerminal_LastLineWithoutNewline(t *testing.T) {
	term := NewTerminal(strings.NewReader("Peek"), io.Discard)

	resp, err := term.Response()
	require.NoError(t, err)
	assert.Equal(t, "peek", resp)
}

func TestTerminal_EOFIsAnError(t *testing.T) {
	term := NewTerminal(strings.NewReader(""), io.Discard)

	_, err := term.Response()
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestTerminal_CancelUnblocksRead(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	term := NewTerminal(pr, io.Discard, WithContext(ctx))

	done := make(chan error, 1)
	go func() {
		_, err := term.Response()
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Response did not return after cancel")
	}
}

func TestTerminal_ReadsAcrossResponses(t *testing.T) {
	term := NewTerminal(strings.NewReader("e\npeek\n"), io.Discard, WithContext(context.Background()))

	first, err := term.Response()
	require.NoError(t, err)
	second, err := term.Response()
	require.NoError(t, err)
	_, err = term.Response()

	assert.Equal(t, "e", first)
	assert.Equal(t, "peek", second)
	assert.True(t, errors.Is(err, io.EOF))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestTerminal_WriteFailure(t *testing.T) {
	term := NewTerminal(strings.NewReader("3\n"), failingWriter{})

	assert.Error(t, term.Question("q"))
	_, err := term.Response()
	assert.Error(t, err)
	assert.Error(t, term.Verdict(true))
}

func TestTerminal_ColorKeepsText(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, WithColor(true))

	require.NoError(t, term.Verdict(true))
	assert.Contains(t, out.String(), "Correct")
}

func TestScript_RepliesInOrder(t *testing.T) {
	s := NewScript("PEEK", " 3 ")

	r, err := s.Response()
	require.NoError(t, err)
	assert.Equal(t, "peek", r)

	r, err = s.Response()
	require.NoError(t, err)
	assert.Equal(t, "3", r)
	assert.Equal(t, 0, s.Remaining())

	_, err = s.Response()
	assert.ErrorIs(t, err, ErrScriptExhausted)
}

func TestScript_CapturesLines(t *testing.T) {
	s := NewScript()
	require.NoError(t, s.Question("q"))
	require.NoError(t, s.Hint("Fret(3)"))
	require.NoError(t, s.Verdict(false))

	assert.Equal(t, []string{"q", "Fret(3)", "Incorrect"}, s.Lines())
}

func TestRecorder_StampsEvents(t *testing.T) {
	rec := NewRecorder(NewScript("xyz", "3"), nil)

	rec.BeginRound(1, "frets")
	require.NoError(t, rec.Question("q"))
	_, err := rec.Response()
	require.NoError(t, err)
	require.NoError(t, rec.Verdict(false))
	_, err = rec.Response()
	require.NoError(t, err)
	require.NoError(t, rec.Verdict(true))

	events := rec.Events()
	require.Len(t, events, 6)

	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
		assert.Equal(t, int64(i+1), e.Seq)
		assert.Equal(t, 1, e.Round)
	}
	assert.Equal(t, []EventType{
		EventRound, EventQuestion, EventResponse, EventVerdict, EventResponse, EventVerdict,
	}, types)
	assert.Equal(t, "frets", events[0].Text)
	assert.False(t, events[3].Correct)
	assert.True(t, events[5].Correct)
}

func TestRecorder_FailedCallsNotRecorded(t *testing.T) {
	rec := NewRecorder(NewScript(), nil)

	_, err := rec.Response()
	require.Error(t, err)
	assert.Empty(t, rec.Events())
}

func TestRecorder_TranscriptMaps(t *testing.T) {
	rec := NewRecorder(NewScript("e"), nil)
	require.NoError(t, rec.Question("q"))
	require.NoError(t, rec.Verdict(false))

	transcript := rec.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, map[string]any{"seq": int64(1), "type": "question", "round": 0, "text": "q"}, transcript[0])
	assert.Equal(t, map[string]any{"seq": int64(2), "type": "verdict", "round": 0, "text": "Incorrect", "correct": false}, transcript[1])
}
