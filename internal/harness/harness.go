package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/fretdrill/internal/challenge"
	"github.com/roach88/fretdrill/internal/guitar"
	"github.com/roach88/fretdrill/internal/render"
	"github.com/roach88/fretdrill/internal/session"
	"github.com/roach88/fretdrill/internal/testutil"
)

// Run executes a scenario and returns the result.
//
// The same fixed chooser feeds the per-round kind draw and the generator,
// so Choices lists every draw in the order the session makes them.
// A scenario whose choices run out or fall out of range is an error, not a
// failed result. Leftover choices or responses fail the result.
func Run(scenario *Scenario) (*Result, error) {
	tuning := guitar.EADGBE
	if scenario.Tuning != "" {
		t, err := guitar.ParseTuning(scenario.Tuning)
		if err != nil {
			return nil, err
		}
		tuning = t
	}

	kinds := make([]challenge.Kind, 0, len(scenario.Kinds))
	for _, name := range scenario.Kinds {
		k, err := challenge.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}

	chooser := testutil.NewFixedChooser(scenario.Choices...)
	script := render.NewScript(scenario.Responses...)
	recorder := render.NewRecorder(script, render.NewClock())
	gen := challenge.NewGenerator(guitar.New(tuning), chooser)

	sess := session.New(gen, recorder,
		session.WithKinds(kinds...),
		session.WithChooser(chooser),
		session.WithMaxRounds(scenario.Rounds),
		session.WithTokenGenerator(testutil.NewFixedTokenGenerator(scenario.SessionToken)),
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), // Suppress logs in tests
	)

	stats, runErr := runGuarded(sess)
	var fault *faultError
	if errors.As(runErr, &fault) {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, fault)
	}

	result := NewResult()
	result.Stats = stats
	result.Trace = recorder.Events()
	result.Lines = script.Lines()
	result.transcript = recorder.Transcript()

	switch {
	case runErr == nil:
		result.Outcome = OutcomeCompleted
	case challenge.IsIOFailure(runErr):
		result.Outcome = OutcomeIOFailure
	case challenge.IsConstructionError(runErr):
		result.Outcome = OutcomeConstructionError
	default:
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, runErr)
	}

	if n := chooser.Remaining(); n > 0 {
		result.AddError(fmt.Sprintf("%d unused choices", n))
	}
	if n := script.Remaining(); n > 0 && result.Outcome == OutcomeCompleted {
		result.AddError(fmt.Sprintf("%d unused responses", n))
	}

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(errMsg)
	}

	return result, nil
}

// faultError reports a scenario that drove the fixed chooser past its script.
type faultError struct {
	value any
}

func (e *faultError) Error() string {
	return fmt.Sprintf("%v", e.value)
}

// runGuarded turns a FixedChooser panic into a faultError.
func runGuarded(sess *session.Session) (stats session.Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &faultError{value: r}
		}
	}()
	return sess.Run(context.Background())
}
