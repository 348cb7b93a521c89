package challenge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/fretdrill/internal/theory"
)

// PeekToken reveals the answer without consuming a guess.
const PeekToken = "peek"

// Outcome summarizes one completed challenge.
type Outcome struct {
	Guesses int // judged guesses, including the final correct one
	Peeks   int
}

// Validate parses guess according to the answer's tag and compares it.
// A parse failure is returned as an error satisfying IsGuessError;
// callers judging a solver's guess treat it as Incorrect.
func (c Challenge) Validate(guess string) (bool, error) {
	guess = strings.TrimSpace(guess)

	switch answer := c.answer.(type) {
	case FretAnswer:
		n, err := parseInt(Frets, guess)
		if err != nil {
			return false, err
		}
		return theory.NormalizeFretIndex(n) == int(answer), nil
	case StringAnswer:
		n, err := parseInt(Strings, guess)
		if err != nil {
			return false, err
		}
		return n == int(answer), nil
	case NoteAnswer:
		p, err := theory.ParsePitch(guess)
		if err != nil {
			return false, err
		}
		return p == theory.PitchClass(answer), nil
	case TuningAnswer:
		p, err := theory.ParsePitch(guess)
		if err != nil {
			return false, err
		}
		return p == theory.PitchClass(answer), nil
	case DegreeAnswer:
		p, err := theory.ParsePitch(guess)
		if err != nil {
			return false, err
		}
		return p == theory.PitchClass(answer), nil
	case ModeAnswer:
		m, err := theory.ParseMode(guess)
		if err != nil {
			return false, err
		}
		return m == theory.Mode(answer), nil
	case IntervalAnswer:
		i, err := theory.ParseInterval(guess)
		if err != nil {
			return false, err
		}
		return i == theory.Interval(answer), nil
	default:
		return false, fmt.Errorf("challenge: unhandled answer type %T", answer)
	}
}

// Issue presents c through r and loops until the solver guesses correctly.
//
// "peek" shows the answer and does not count as a guess. Malformed
// guesses are judged Incorrect. There is no guess limit. Any Renderer
// error ends the loop and is returned as an IoFailure. A challenge that
// cannot judge a guess at all is returned as a construction error.
func Issue(c Challenge, r Renderer) (Outcome, error) {
	var out Outcome
	kind := c.Kind()

	if err := r.Question(c.Question()); err != nil {
		return out, ioFailure(kind, err)
	}

	for {
		response, err := r.Response()
		if err != nil {
			return out, ioFailure(kind, err)
		}
		response = strings.ToLower(strings.TrimSpace(response))

		if response == PeekToken {
			out.Peeks++
			if err := r.Hint(c.Answer().String()); err != nil {
				return out, ioFailure(kind, err)
			}
			continue
		}

		correct, err := c.Validate(response)
		if err != nil {
			if !IsGuessError(err) {
				return out, constructionError(kind, err)
			}
			correct = false
		}
		out.Guesses++

		if err := r.Verdict(correct); err != nil {
			return out, ioFailure(kind, err)
		}
		if correct {
			return out, nil
		}
	}
}

func parseInt(kind Kind, guess string) (int, error) {
	n, err := strconv.Atoi(guess)
	if err != nil {
		return 0, &Error{Code: ErrCodeInvalidGuess, Kind: kind, Err: err}
	}
	return n, nil
}
