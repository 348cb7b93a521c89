package challenge

import (
	"errors"
	"fmt"

	"github.com/roach88/fretdrill/internal/theory"
)

// ErrorCode categorizes challenge errors.
type ErrorCode string

const (
	// ErrCodeInvalidGuess indicates a non-integer guess where an integer was required.
	ErrCodeInvalidGuess ErrorCode = "INVALID_GUESS"

	// ErrCodeIOFailure indicates the Renderer can no longer talk to the solver.
	ErrCodeIOFailure ErrorCode = "IO_FAILURE"

	// ErrCodeConstruction indicates a question could not be generated.
	ErrCodeConstruction ErrorCode = "CONSTRUCTION"
)

// Error wraps a failure with the quiz it occurred in.
type Error struct {
	Code ErrorCode
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Code, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Code, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsIOFailure reports whether err came from the Renderer.
// Uses errors.As to handle wrapped errors.
func IsIOFailure(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeIOFailure
	}
	return false
}

// IsConstructionError reports whether err aborted question generation.
func IsConstructionError(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeConstruction
	}
	return false
}

// IsGuessError reports whether err only means the guess was malformed.
// Such errors are judged Incorrect and never shown to the solver.
func IsGuessError(err error) bool {
	var ce *Error
	if errors.As(err, &ce) && ce.Code == ErrCodeInvalidGuess {
		return true
	}
	return theory.IsNotationError(err) || theory.IsModeError(err) || theory.IsIntervalError(err)
}

func ioFailure(kind Kind, err error) *Error {
	return &Error{Code: ErrCodeIOFailure, Kind: kind, Err: err}
}

func constructionError(kind Kind, err error) *Error {
	return &Error{Code: ErrCodeConstruction, Kind: kind, Err: err}
}
