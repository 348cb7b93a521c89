package guitar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/fretdrill/internal/theory"
)

// Tuning names a fixed set of open-string pitches.
type Tuning int

const (
	EADGBE Tuning = iota
	DADGBE
	CGCFAD
)

// ErrUnknownTuning is returned by ParseTuning for names outside the table.
var ErrUnknownTuning = errors.New("unknown tuning")

type tuningEntry struct {
	name    string
	strings [6]theory.PitchClass
}

// tunings is indexed by Tuning. Strings run low to high.
var tunings = [...]tuningEntry{
	EADGBE: {"EADGBE", [6]theory.PitchClass{theory.E, theory.A, theory.D, theory.G, theory.B, theory.E}},
	DADGBE: {"DADGBE", [6]theory.PitchClass{theory.D, theory.A, theory.D, theory.G, theory.B, theory.E}},
	CGCFAD: {"CGCFAD", [6]theory.PitchClass{theory.C, theory.G, theory.C, theory.F, theory.A, theory.D}},
}

func (t Tuning) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tuning(%d)", int(t))
	}
	return tunings[t].name
}

// Valid reports whether t is in the tuning table.
func (t Tuning) Valid() bool {
	return t >= EADGBE && int(t) < len(tunings)
}

// Tunings lists every known tuning in table order.
func Tunings() []Tuning {
	out := make([]Tuning, len(tunings))
	for i := range out {
		out[i] = Tuning(i)
	}
	return out
}

// ParseTuning matches a tuning name such as "eadgbe", any case.
func ParseTuning(name string) (Tuning, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for i, entry := range tunings {
		if entry.name == key {
			return Tuning(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTuning, name)
}
