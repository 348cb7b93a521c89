package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fretdrill/internal/config"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool           `json:"valid"`
	Preset *config.Preset `json:"preset,omitempty"`
}

// LoadErrorDetails locates a preset error in its source file.
type LoadErrorDetails struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <preset.cue>",
		Short: "Validate a drill preset without running it",
		Long: `Validate a CUE drill preset against the preset schema.

Reports the first error with its file position. Exit code 2 when the
preset is invalid.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	formatter.VerboseLog("Loading preset %s", path)
	preset, err := config.Load(path)
	if err != nil {
		var loadErr *config.LoadError
		if errors.As(err, &loadErr) {
			return outputValidateError(formatter, loadErr.Code, loadErr.Message, detailsOf(loadErr))
		}
		return outputValidateError(formatter, "C000", err.Error(), nil)
	}

	return outputValidateSuccess(formatter, preset)
}

func detailsOf(err *config.LoadError) any {
	if !err.Pos.IsValid() {
		return nil
	}
	return LoadErrorDetails{
		File:   err.Pos.Filename(),
		Line:   err.Pos.Line(),
		Column: err.Pos.Column(),
	}
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, preset *config.Preset) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Preset: preset})
	}

	fmt.Fprintln(formatter.Writer, "✓ Preset valid")
	return nil
}

// outputValidateError outputs a single validation error.
func outputValidateError(formatter *OutputFormatter, code, message string, details any) error {
	_ = formatter.Error(code, message, details)
	// Validation errors are command-level errors (exit code 2)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}
