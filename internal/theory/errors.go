package theory

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes theory errors.
type ErrorCode string

const (
	// ErrCodeNotation indicates text that is not a recognised note name.
	ErrCodeNotation ErrorCode = "NOTATION"

	// ErrCodeOffset indicates a pitch computation that produced no mapped class.
	// Unreachable through the public constructors; kept as an invariant check.
	ErrCodeOffset ErrorCode = "OFFSET"

	// ErrCodeUnrecognisedMode indicates text that is not one of the seven mode names.
	ErrCodeUnrecognisedMode ErrorCode = "UNRECOGNISED_MODE"

	// ErrCodeUnrecognisedInterval indicates text that is not an interval name.
	ErrCodeUnrecognisedInterval ErrorCode = "UNRECOGNISED_INTERVAL"
)

// Error is returned by the parsers and scale construction.
type Error struct {
	Code  ErrorCode
	Input string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %q", e.Code, e.Input)
	}
	return string(e.Code)
}

func notationError(input string) *Error {
	return &Error{Code: ErrCodeNotation, Input: input}
}

func offsetError(value int) *Error {
	return &Error{Code: ErrCodeOffset, Input: fmt.Sprintf("%d", value)}
}

// IsNotationError reports whether err is an unparsable note name.
// Uses errors.As to handle wrapped errors.
func IsNotationError(err error) bool {
	return hasCode(err, ErrCodeNotation)
}

// IsOffsetError reports whether err is an out-of-range pitch computation.
func IsOffsetError(err error) bool {
	return hasCode(err, ErrCodeOffset)
}

// IsModeError reports whether err is an unrecognised mode name.
func IsModeError(err error) bool {
	return hasCode(err, ErrCodeUnrecognisedMode)
}

// IsIntervalError reports whether err is an unrecognised interval name.
func IsIntervalError(err error) bool {
	return hasCode(err, ErrCodeUnrecognisedInterval)
}

func hasCode(err error, code ErrorCode) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Code == code
	}
	return false
}
