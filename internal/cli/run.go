package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/fretdrill/internal/challenge"
	"github.com/roach88/fretdrill/internal/config"
	"github.com/roach88/fretdrill/internal/guitar"
	"github.com/roach88/fretdrill/internal/render"
	"github.com/roach88/fretdrill/internal/session"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DrillOptions holds flags for the drill itself.
type DrillOptions struct {
	*RootOptions
	Tuning string
	Rounds int
	Seed   int64
	Color  string
	Config string

	// TokenGenerator allows overriding the session token source (for testing).
	// If nil, defaults to session.UUIDv7Generator.
	TokenGenerator session.TokenGenerator
}

// DrillSummary is the payload reported when a drill ends.
type DrillSummary struct {
	Stats      session.Stats  `json:"stats"`
	Transcript []render.Event `json:"transcript,omitempty"`
}

// drillSettings is the resolved configuration after merging preset and flags.
type drillSettings struct {
	tuning guitar.Tuning
	kinds  []challenge.Kind
	rounds int
	color  bool
	seed   int64
	seeded bool
}

func addDrillFlags(cmd *cobra.Command, opts *DrillOptions) {
	cmd.Flags().StringVar(&opts.Tuning, "tuning", guitar.EADGBE.String(), "guitar tuning (EADGBE|DADGBE|CGCFAD)")
	cmd.Flags().IntVar(&opts.Rounds, "rounds", 0, "stop after this many solved rounds (0 = until input closes)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed the question generator for a repeatable drill")
	cmd.Flags().StringVar(&opts.Color, "color", ColorAuto, "color output (auto|always|never)")
	cmd.Flags().StringVar(&opts.Config, "config", "", "path to a CUE drill preset")
}

func runDrill(opts *DrillOptions, args []string, cmd *cobra.Command) error {
	settings, err := resolveSettings(opts, args, cmd)
	if err != nil {
		return err
	}

	// Configure logging based on verbose flag
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	chooser := challenge.NewRandChooser()
	if settings.seeded {
		chooser = challenge.NewSeededChooser(uint64(settings.seed))
	}

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second interrupt gets the default behavior and kills the process.
	context.AfterFunc(ctx, stop)

	out := cmd.OutOrStdout()
	terminal := render.NewTerminal(cmd.InOrStdin(), out,
		render.WithColor(settings.color),
		render.WithContext(ctx),
	)

	var boundary challenge.Renderer = terminal
	var recorder *render.Recorder
	if opts.Format == "json" {
		recorder = render.NewRecorder(terminal, nil)
		boundary = recorder
	}

	sessOpts := []session.Option{
		session.WithKinds(settings.kinds...),
		session.WithChooser(chooser),
		session.WithMaxRounds(settings.rounds),
		session.WithSeparator(out),
		session.WithLogger(logger),
	}
	if opts.TokenGenerator != nil {
		sessOpts = append(sessOpts, session.WithTokenGenerator(opts.TokenGenerator))
	}

	gen := challenge.NewGenerator(guitar.New(settings.tuning), chooser)
	sess := session.New(gen, boundary, sessOpts...)

	stats, runErr := sess.Run(ctx)

	summary := DrillSummary{Stats: stats}
	if recorder != nil {
		summary.Transcript = recorder.Events()
	}
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.ErrOrStderr(), // the drill owns stdout
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		SessionID: stats.Token,
	}

	switch {
	case runErr == nil, errors.Is(runErr, io.EOF), errors.Is(runErr, context.Canceled):
		// Closing input or interrupting is how an unbounded drill ends.
		logger.Debug("drill ended", "reason", endReason(runErr))
		return outputDrillSummary(formatter, summary)
	case challenge.IsConstructionError(runErr):
		_ = formatter.Error("E_CONSTRUCTION", runErr.Error(), summary)
		return WrapExitError(ExitFailure, "challenge construction failed", runErr)
	default:
		_ = formatter.Error("E_IO", runErr.Error(), summary)
		return WrapExitError(ExitFailure, "drill aborted", runErr)
	}
}

// resolveSettings layers the preset under explicitly set flags and the
// quiz argument.
func resolveSettings(opts *DrillOptions, args []string, cmd *cobra.Command) (drillSettings, error) {
	s := drillSettings{tuning: guitar.EADGBE}
	color := ColorAuto

	if opts.Config != "" {
		preset, err := config.Load(opts.Config)
		if err != nil {
			return s, WrapExitError(ExitCommandError, "failed to load preset", err)
		}
		if t, ok, err := preset.TuningValue(); err != nil {
			return s, WrapExitError(ExitCommandError, "invalid preset tuning", err)
		} else if ok {
			s.tuning = t
		}
		kinds, err := preset.KindValues()
		if err != nil {
			return s, WrapExitError(ExitCommandError, "invalid preset kinds", err)
		}
		s.kinds = kinds
		if preset.Rounds != nil {
			s.rounds = *preset.Rounds
		}
		if preset.Seed != nil {
			s.seed, s.seeded = *preset.Seed, true
		}
		if preset.Color != nil {
			color = ColorNever
			if *preset.Color {
				color = ColorAlways
			}
		}
	}

	flags := cmd.Flags()
	if flags.Changed("tuning") {
		t, err := guitar.ParseTuning(opts.Tuning)
		if err != nil {
			return s, WrapExitError(ExitCommandError, "invalid --tuning", err)
		}
		s.tuning = t
	}
	if flags.Changed("rounds") {
		if opts.Rounds < 0 {
			return s, NewExitError(ExitCommandError, "--rounds must not be negative")
		}
		s.rounds = opts.Rounds
	}
	if flags.Changed("seed") {
		s.seed, s.seeded = opts.Seed, true
	}
	if flags.Changed("color") {
		color = opts.Color
	}

	if len(args) == 1 {
		k, err := challenge.ParseKind(args[0])
		if err != nil {
			return s, WrapExitError(ExitCommandError, fmt.Sprintf("unknown quiz %q", args[0]), err)
		}
		s.kinds = []challenge.Kind{k}
	}

	switch color {
	case ColorAlways:
		s.color = true
	case ColorNever:
		s.color = false
	case ColorAuto:
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			s.color = render.ColorEnabled(f)
		}
	default:
		return s, NewExitError(ExitCommandError,
			fmt.Sprintf("invalid --color %q: must be one of auto, always, never", color))
	}

	return s, nil
}

func endReason(err error) string {
	switch {
	case err == nil:
		return "round limit"
	case errors.Is(err, context.Canceled):
		return "interrupted"
	default:
		return "input closed"
	}
}

// outputDrillSummary reports the session statistics.
func outputDrillSummary(formatter *OutputFormatter, summary DrillSummary) error {
	if formatter.Format == "json" {
		return formatter.Success(summary)
	}

	st := summary.Stats
	fmt.Fprintf(formatter.Writer, "\n%d rounds, %d guesses, %d peeks\n", st.Rounds, st.Guesses, st.Peeks)
	formatter.VerboseLog("session %s", st.Token)
	return nil
}
