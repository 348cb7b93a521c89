package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fretdrill/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // glob over scenario file names
}

// ScenarioReport is how one scripted drill went.
type ScenarioReport struct {
	File    string               `json:"file"`
	Name    string               `json:"name"`
	Outcome string               `json:"outcome,omitempty"`
	Rounds  int                  `json:"rounds"`
	Guesses int                  `json:"guesses"`
	Peeks   int                  `json:"peeks"`
	Golden  harness.GoldenStatus `json:"golden,omitempty"`
	Pass    bool                 `json:"pass"`
	Errors  []string             `json:"errors,omitempty"`
}

// TestReport collects every scenario in a run.
type TestReport struct {
	Scenarios []ScenarioReport `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run scripted drill scenarios",
		Long: `Run scripted drill scenarios.

Each YAML scenario pins the random draws and the solver's responses,
then asserts on the questions, verdicts and outcome. The report shows
how many rounds were solved, how many guesses and peeks it took, and
whether the transcript matched <scenarios-dir>/golden/<name>.golden.
A scenario without a golden file is judged on its assertions alone.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (missing directory, bad filter)

Examples:
  fretdrill test ./scenarios
  fretdrill test ./scenarios --filter "fret_*"
  fretdrill test ./scenarios --update
  fretdrill test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only run scenarios whose file name matches this glob")

	return cmd
}

func runTests(opts *TestOptions, dir string, cmd *cobra.Command) error {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", dir))
	}

	files, err := harness.FindScenarios(dir, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}

	report := TestReport{Scenarios: make([]ScenarioReport, 0, len(files))}
	for _, file := range files {
		sr := checkScenario(file, opts.Update)
		if sr.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Scenarios = append(report.Scenarios, sr)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Format == "json" {
		if report.Failed > 0 {
			_ = formatter.Error("E_TEST_FAILED", fmt.Sprintf("%d scenario(s) failed", report.Failed), report)
		} else if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		writeTestReport(formatter.Writer, report)
	}

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", report.Failed))
	}
	return nil
}

// checkScenario loads, runs and golden-checks one scenario file.
func checkScenario(file string, update bool) ScenarioReport {
	sr := ScenarioReport{
		File: file,
		Name: strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
	}

	scenario, err := harness.LoadScenario(file)
	if err != nil {
		sr.Errors = []string{err.Error()}
		return sr
	}
	sr.Name = scenario.Name

	result, err := harness.Run(scenario)
	if err != nil {
		sr.Errors = []string{err.Error()}
		return sr
	}
	sr.Outcome = result.Outcome
	sr.Rounds = result.Stats.Rounds
	sr.Guesses = result.Stats.Guesses
	sr.Peeks = result.Stats.Peeks
	sr.Errors = append(sr.Errors, result.Errors...)

	sr.Golden, err = harness.CheckGolden(file, scenario.Name, result, update)
	switch {
	case err != nil:
		sr.Errors = append(sr.Errors, fmt.Sprintf("golden file: %v", err))
	case sr.Golden == harness.GoldenMismatch:
		sr.Errors = append(sr.Errors, "transcript differs from golden file (run with --update to regenerate)")
	}

	sr.Pass = len(sr.Errors) == 0
	return sr
}

func writeTestReport(w io.Writer, report TestReport) {
	if len(report.Scenarios) == 0 {
		fmt.Fprintln(w, "No scenarios found.")
		return
	}

	for _, sr := range report.Scenarios {
		verdict := "PASS"
		if !sr.Pass {
			verdict = "FAIL"
		}
		if sr.Outcome == "" {
			fmt.Fprintf(w, "%s %s\n", verdict, sr.Name)
		} else {
			fmt.Fprintf(w, "%s %s: %s, %d rounds, %d guesses, %d peeks, golden %s\n",
				verdict, sr.Name, sr.Outcome, sr.Rounds, sr.Guesses, sr.Peeks, sr.Golden)
		}
		for _, e := range sr.Errors {
			fmt.Fprintf(w, "    %s\n", e)
		}
	}

	fmt.Fprintf(w, "\n%d passed, %d failed\n", report.Passed, report.Failed)
}
