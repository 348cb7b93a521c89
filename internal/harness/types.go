package harness

import (
	"github.com/roach88/fretdrill/internal/render"
	"github.com/roach88/fretdrill/internal/session"
)

// Outcome values reported by Run.
const (
	OutcomeCompleted         = "completed"
	OutcomeIOFailure         = "io_failure"
	OutcomeConstructionError = "construction_error"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every assertion held and the script was fully used.
	Pass bool `json:"pass"`

	// Outcome is how the session ended.
	Outcome string `json:"outcome"`

	// Stats are the session statistics.
	Stats session.Stats `json:"stats"`

	// Trace holds every recorded boundary call in order.
	Trace []render.Event `json:"trace"`

	// Lines is what a terminal would have printed, minus prompts.
	Lines []string `json:"lines"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	transcript []any
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []render.Event{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Snapshot returns the golden-file view of the result.
func (r *Result) Snapshot(scenarioName string) map[string]any {
	transcript := r.transcript
	if transcript == nil {
		transcript = []any{}
	}
	return map[string]any{
		"scenario_name": scenarioName,
		"session_token": r.Stats.Token,
		"outcome":       r.Outcome,
		"trace":         transcript,
	}
}
