package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fretdrill/internal/challenge"
	"github.com/roach88/fretdrill/internal/guitar"
)

// TuningInfo describes one supported tuning.
type TuningInfo struct {
	Name    string   `json:"name"`
	Strings []string `json:"strings"`
}

// KindsResult lists what the drill can ask about.
type KindsResult struct {
	Quizzes []string     `json:"quizzes"`
	Tunings []TuningInfo `json:"tunings"`
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List quizzes and tunings",
		Long: `List the quiz selectors accepted as the drill argument and the
supported tunings with their open strings, lowest first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(rootOpts, cmd)
		},
	}
}

func runKinds(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	result := buildKindsResult()
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintln(w, "Quizzes:")
	for _, q := range result.Quizzes {
		fmt.Fprintf(w, "  %s\n", q)
	}
	fmt.Fprintln(w, "Tunings:")
	for _, t := range result.Tunings {
		fmt.Fprintf(w, "  %-8s %s\n", t.Name, strings.Join(t.Strings, " "))
	}
	return nil
}

func buildKindsResult() KindsResult {
	result := KindsResult{}
	for _, k := range challenge.Kinds() {
		result.Quizzes = append(result.Quizzes, k.String())
	}
	for _, t := range guitar.Tunings() {
		info := TuningInfo{Name: t.String()}
		for _, p := range guitar.New(t).Strings() {
			info.Strings = append(info.Strings, p.String())
		}
		result.Tunings = append(result.Tunings, info)
	}
	return result
}
