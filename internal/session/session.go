package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/fretdrill/internal/challenge"
)

// RoundObserver is implemented by renderers that want to mark round
// boundaries, such as render.Recorder.
type RoundObserver interface {
	BeginRound(round int, kind string)
}

// Stats summarizes a finished or aborted session.
type Stats struct {
	Token   string         `json:"token"`
	Rounds  int            `json:"rounds"`
	Guesses int            `json:"guesses"`
	Peeks   int            `json:"peeks"`
	PerKind map[string]int `json:"per_kind"`
}

// Session drives repeated challenges through one renderer.
type Session struct {
	gen       *challenge.Generator
	renderer  challenge.Renderer
	kinds     []challenge.Kind
	chooser   challenge.Chooser
	maxRounds int
	separator io.Writer
	tokens    TokenGenerator
	logger    *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithKinds restricts the quizzes drawn from. One kind fixes the quiz;
// several are drawn uniformly per round. Default: every kind.
func WithKinds(kinds ...challenge.Kind) Option {
	return func(s *Session) {
		if len(kinds) > 0 {
			s.kinds = append([]challenge.Kind(nil), kinds...)
		}
	}
}

// WithChooser sets the source for the per-round kind draw.
// Default: a RandChooser.
func WithChooser(c challenge.Chooser) Option {
	return func(s *Session) {
		s.chooser = c
	}
}

// WithMaxRounds stops the session after n solved challenges.
// Zero, the default, means run until the boundary fails.
func WithMaxRounds(n int) Option {
	return func(s *Session) {
		s.maxRounds = n
	}
}

// WithSeparator sets where the blank line between rounds is written.
// Default: io.Discard.
func WithSeparator(w io.Writer) Option {
	return func(s *Session) {
		s.separator = w
	}
}

// WithTokenGenerator overrides the session token source.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(s *Session) {
		s.tokens = g
	}
}

// WithLogger sets the structured logger. Default: discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates a Session issuing challenges from gen through r.
func New(gen *challenge.Generator, r challenge.Renderer, opts ...Option) *Session {
	s := &Session{
		gen:       gen,
		renderer:  r,
		kinds:     challenge.Kinds(),
		separator: io.Discard,
		tokens:    UUIDv7Generator{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.chooser == nil {
		s.chooser = challenge.NewRandChooser()
	}
	return s
}

// Run issues challenges until the round limit, a cancelled ctx, or a fatal
// error. Stats are returned in every case.
//
// Construction errors and renderer failures are both fatal; an incorrect
// guess never is.
func (s *Session) Run(ctx context.Context) (Stats, error) {
	stats := Stats{
		Token:   s.tokens.Generate(),
		PerKind: make(map[string]int),
	}
	logger := s.logger.With("session", stats.Token)
	logger.Info("session starting",
		"tuning", s.gen.Guitar().Tuning().String(),
		"kinds", len(s.kinds),
		"max_rounds", s.maxRounds)

	for round := 1; s.maxRounds == 0 || round <= s.maxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if round > 1 {
			if _, err := fmt.Fprintln(s.separator); err != nil {
				return stats, fmt.Errorf("writing separator: %w", err)
			}
		}

		kind := s.pickKind()
		if obs, ok := s.renderer.(RoundObserver); ok {
			obs.BeginRound(round, kind.String())
		}

		c, err := s.gen.Generate(kind)
		if err != nil {
			logger.Error("challenge construction failed", "round", round, "kind", kind.String(), "error", err)
			return stats, fmt.Errorf("round %d: %w", round, err)
		}
		logger.Debug("challenge issued", "round", round, "kind", kind.String(), "answer", c.Answer().String())

		out, err := challenge.Issue(c, s.renderer)
		stats.Guesses += out.Guesses
		stats.Peeks += out.Peeks
		if err != nil {
			if endedByUser(err) {
				logger.Debug("challenge ended early", "round", round, "kind", kind.String(), "error", err)
			} else {
				logger.Warn("challenge aborted", "round", round, "kind", kind.String(), "error", err)
			}
			return stats, fmt.Errorf("round %d: %w", round, err)
		}

		stats.Rounds++
		stats.PerKind[kind.String()]++
		logger.Debug("challenge solved", "round", round, "guesses", out.Guesses, "peeks", out.Peeks)
	}

	logger.Info("session finished", "rounds", stats.Rounds, "guesses", stats.Guesses)
	return stats, nil
}

func (s *Session) pickKind() challenge.Kind {
	if len(s.kinds) == 1 {
		return s.kinds[0]
	}
	return s.kinds[s.chooser.Intn(len(s.kinds))]
}

// endedByUser reports whether err is the solver closing input or
// interrupting the drill rather than a device fault.
func endedByUser(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
