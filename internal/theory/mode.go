package theory

import "strings"

// Mode is one of the seven rotations of the diatonic pattern.
// The ordinal is the rotation: Ionian rotates by 0, Locrian by 6.
type Mode int

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

var modeNames = [...]string{
	"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian",
}

func (m Mode) String() string {
	if !m.Valid() {
		return "Mode(?)"
	}
	return modeNames[m]
}

// Valid reports whether m is one of the seven modes.
func (m Mode) Valid() bool {
	return m >= Ionian && m <= Locrian
}

// AllModes returns Ionian through Locrian.
func AllModes() []Mode {
	out := make([]Mode, len(modeNames))
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// ParseMode matches one of the seven mode names, any case.
func ParseMode(text string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	for i, name := range modeNames {
		if strings.ToLower(name) == key {
			return Mode(i), nil
		}
	}
	return 0, &Error{Code: ErrCodeUnrecognisedMode, Input: text}
}
