package harness

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/roach88/fretdrill/internal/render"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string         // Assertion type for categorization
	Expected string         // Human-readable expected outcome
	Actual   string         // Human-readable actual outcome
	Trace    []render.Event // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		switch event.Type {
		case render.EventRound:
			fmt.Fprintf(&buf, "  [%d] round %d (%s)\n", event.Seq, event.Round, event.Text)
		case render.EventVerdict:
			fmt.Fprintf(&buf, "  [%d] verdict %t\n", event.Seq, event.Correct)
		default:
			fmt.Fprintf(&buf, "  [%d] %s %q\n", event.Seq, event.Type, event.Text)
		}
	}

	return buf.String()
}

// questionOf returns the first question asked in round.
func questionOf(trace []render.Event, round int) (string, bool) {
	for _, e := range trace {
		if e.Round == round && e.Type == render.EventQuestion {
			return e.Text, true
		}
	}
	return "", false
}

func assertQuestion(trace []render.Event, a Assertion) error {
	got, ok := questionOf(trace, a.Round)
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("round %d asks a question", a.Round),
			Actual:   "no question recorded",
			Trace:    trace,
		}
	}

	matched := got == a.Text
	if a.Type == AssertQuestionContains {
		matched = strings.Contains(got, a.Text)
	}
	if !matched {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("round %d question %q", a.Round, a.Text),
			Actual:   fmt.Sprintf("%q", got),
			Trace:    trace,
		}
	}
	return nil
}

func assertVerdicts(trace []render.Event, a Assertion) error {
	got := []bool{}
	for _, e := range trace {
		if e.Round == a.Round && e.Type == render.EventVerdict {
			got = append(got, e.Correct)
		}
	}
	if !reflect.DeepEqual(got, a.Verdicts) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("round %d verdicts %v", a.Round, a.Verdicts),
			Actual:   fmt.Sprintf("%v", got),
			Trace:    trace,
		}
	}
	return nil
}

func assertHintCount(result *Result, a Assertion) error {
	if result.Stats.Peeks != a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d hints", a.Count),
			Actual:   fmt.Sprintf("%d hints", result.Stats.Peeks),
			Trace:    result.Trace,
		}
	}
	return nil
}

func assertRounds(result *Result, a Assertion) error {
	if result.Stats.Rounds != a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d solved rounds", a.Count),
			Actual:   fmt.Sprintf("%d solved rounds", result.Stats.Rounds),
			Trace:    result.Trace,
		}
	}
	return nil
}

func assertOutcome(result *Result, a Assertion) error {
	if result.Outcome != a.Outcome {
		return &AssertionError{
			Type:     a.Type,
			Expected: a.Outcome,
			Actual:   result.Outcome,
			Trace:    result.Trace,
		}
	}
	return nil
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertQuestionEquals, AssertQuestionContains:
			err = assertQuestion(result.Trace, assertion)
		case AssertVerdicts:
			err = assertVerdicts(result.Trace, assertion)
		case AssertHintCount:
			err = assertHintCount(result, assertion)
		case AssertRounds:
			err = assertRounds(result, assertion)
		case AssertOutcome:
			err = assertOutcome(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
