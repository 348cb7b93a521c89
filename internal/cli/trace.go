package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/fretdrill/internal/harness"
	"github.com/roach88/fretdrill/internal/render"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Round int // optional - filter to one round
}

// TraceResult holds the complete trace output.
type TraceResult struct {
	Scenario string         `json:"scenario"`
	Outcome  string         `json:"outcome"`
	Timeline []render.Event `json:"timeline"`
	Stats    TraceStats     `json:"stats"`
}

// TraceStats holds summary statistics for the trace.
type TraceStats struct {
	TotalEvents int `json:"total_events"`
	Rounds      int `json:"rounds"`
	Guesses     int `json:"guesses"`
	Peeks       int `json:"peeks"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <scenario.yaml>",
		Short: "Replay a scenario and show its transcript",
		Long: `Replay a scripted drill scenario and print every boundary call.

The timeline lists each round start, question, response, hint and
verdict with its sequence number. Assertions are not evaluated; use
"fretdrill test" for that.

Examples:
  fretdrill trace ./scenarios/fret_low_e_to_g.yaml
  fretdrill trace ./scenarios/modes_then_intervals.yaml --round 2
  fretdrill trace ./scenarios/modes_then_intervals.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Round, "round", 0, "filter to one round")

	return cmd
}

func runTrace(opts *TraceOptions, path string, cmd *cobra.Command) error {
	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	result, err := harness.Run(scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to run scenario", err)
	}

	trace := TraceResult{
		Scenario: scenario.Name,
		Outcome:  result.Outcome,
		Timeline: buildTimeline(result.Trace, opts.Round),
		Stats: TraceStats{
			TotalEvents: len(result.Trace),
			Rounds:      result.Stats.Rounds,
			Guesses:     result.Stats.Guesses,
			Peeks:       result.Stats.Peeks,
		},
	}

	if opts.Format == "json" {
		return outputTraceJSON(cmd, trace)
	}
	return outputTraceText(cmd, trace)
}

// buildTimeline keeps the events of one round, or all of them when round is 0.
func buildTimeline(events []render.Event, round int) []render.Event {
	timeline := make([]render.Event, 0, len(events))
	for _, e := range events {
		if round != 0 && e.Round != round {
			continue
		}
		timeline = append(timeline, e)
	}
	return timeline
}

// outputTraceJSON outputs the trace result as JSON.
func outputTraceJSON(cmd *cobra.Command, result TraceResult) error {
	response := CLIResponse{
		Status: "ok",
		Data:   result,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// outputTraceText outputs the trace result as text.
func outputTraceText(cmd *cobra.Command, result TraceResult) error {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Trace for Scenario: %s\n", result.Scenario)
	fmt.Fprintf(w, "Outcome: %s\n", result.Outcome)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Timeline ===")
	if len(result.Timeline) == 0 {
		fmt.Fprintln(w, "  (no events)")
	} else {
		for _, event := range result.Timeline {
			formatTimelineEvent(w, event)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Stats ===")
	fmt.Fprintf(w, "  Total Events: %d\n", result.Stats.TotalEvents)
	fmt.Fprintf(w, "  Rounds:       %d\n", result.Stats.Rounds)
	fmt.Fprintf(w, "  Guesses:      %d\n", result.Stats.Guesses)
	fmt.Fprintf(w, "  Peeks:        %d\n", result.Stats.Peeks)

	return nil
}

// formatTimelineEvent formats a single timeline event for text output.
func formatTimelineEvent(w io.Writer, event render.Event) {
	switch event.Type {
	case render.EventRound:
		fmt.Fprintf(w, "  [%d] ROUND %d %s\n", event.Seq, event.Round, event.Text)
	case render.EventQuestion:
		fmt.Fprintf(w, "  [%d] ASK   %s\n", event.Seq, event.Text)
	case render.EventResponse:
		fmt.Fprintf(w, "  [%d] GOT   %s\n", event.Seq, event.Text)
	case render.EventHint:
		fmt.Fprintf(w, "  [%d] HINT  %s\n", event.Seq, event.Text)
	case render.EventVerdict:
		fmt.Fprintf(w, "  [%d] %s\n", event.Seq, verdictLabel(event.Correct))
	}
}

func verdictLabel(correct bool) string {
	if correct {
		return "✓ correct"
	}
	return "✗ incorrect"
}
