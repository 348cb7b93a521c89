package challenge

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects which quiz a Challenge belongs to.
type Kind int

const (
	Frets Kind = iota
	Notes
	Strings
	Tunings
	Modes
	Scales
	Intervals
)

// ErrUnknownKind is returned by ParseKind for an unrecognised selector.
var ErrUnknownKind = errors.New("unrecognised quiz")

var kindNames = [...]string{"frets", "notes", "strings", "tunings", "modes", "scales", "intervals"}

// String returns the selector used on the command line.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a known quiz.
func (k Kind) Valid() bool {
	return k >= Frets && k <= Intervals
}

// Kinds returns every quiz in selector order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind matches a selector such as "frets" or "modes".
func ParseKind(selector string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(selector))
	for i, name := range kindNames {
		if name == key {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKind, selector)
}
