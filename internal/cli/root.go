package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the fretdrill CLI.
//
// The root command itself runs the drill; subcommands inspect the quiz
// catalogue, presets and scripted scenarios.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	drill := &DrillOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "fretdrill [quiz]",
		Short: "fretdrill - guitar fretboard and theory drills",
		Long: `An interactive drill for the guitar fretboard and diatonic theory.

Each round asks one question and waits until it is answered correctly.
Type "peek" to reveal the answer. With no quiz argument a quiz is drawn
at random every round.

Quizzes: frets, notes, strings, tunings, modes, scales, intervals

Examples:
  fretdrill
  fretdrill frets --tuning DADGBE
  fretdrill modes --rounds 10 --seed 7
  fretdrill --config ./drill.cue`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrill(drill, args, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	addDrillFlags(cmd, drill)

	// Add subcommands
	cmd.AddCommand(NewKindsCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
