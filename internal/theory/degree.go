package theory

// Degree is a position within a seven-note scale.
type Degree int

const (
	Tonic Degree = iota
	Supertonic
	Mediant
	Subdominant
	Dominant
	Submediant
	Subtonic
)

// DegreesPerScale is the length of every realized Scale.
const DegreesPerScale = 7

var degreeNames = [DegreesPerScale]string{
	"Tonic", "Supertonic", "Mediant", "Subdominant", "Dominant", "Submediant", "Subtonic",
}

func (d Degree) String() string {
	if !d.Valid() {
		return "Degree(?)"
	}
	return degreeNames[d]
}

// Valid reports whether d indexes into a seven-note scale.
func (d Degree) Valid() bool {
	return d >= Tonic && d <= Subtonic
}

// AllDegrees returns Tonic through Subtonic.
func AllDegrees() []Degree {
	out := make([]Degree, DegreesPerScale)
	for i := range out {
		out[i] = Degree(i)
	}
	return out
}
