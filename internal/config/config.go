// Package config loads drill presets written in CUE.
//
// A preset fixes any subset of the drill settings:
//
//	tuning: "DADGBE"
//	kinds:  ["frets", "notes"]
//	rounds: 20
//	color:  false
//	seed:   42
//
// Presets are validated against a closed schema, so a misspelled field or
// an unknown tuning is rejected with its file position.
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/fretdrill/internal/challenge"
	"github.com/roach88/fretdrill/internal/guitar"
)

const schema = `
#Drill: {
	tuning?: "EADGBE" | "DADGBE" | "CGCFAD"
	kinds?: [...("frets" | "notes" | "strings" | "tunings" | "modes" | "scales" | "intervals")]
	rounds?: int & >=0
	color?:  bool
	seed?:   int & >=0
}
`

// Error code constants.
const (
	ErrCodeRead     = "C001" // preset file unreadable
	ErrCodeCompile  = "C002" // not valid CUE
	ErrCodeValidate = "C003" // does not satisfy the schema
	ErrCodeDecode   = "C004" // could not be decoded
)

// LoadError is returned by Load with the CUE position when one is known.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Preset is a decoded drill preset. Nil fields were not set.
type Preset struct {
	Tuning *string  `json:"tuning,omitempty"`
	Kinds  []string `json:"kinds,omitempty"`
	Rounds *int     `json:"rounds,omitempty"`
	Color  *bool    `json:"color,omitempty"`
	Seed   *int64   `json:"seed,omitempty"`
}

// Load reads and validates a preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Message: err.Error()}
	}
	return Parse(path, data)
}

// Parse validates preset source. filename is used in error positions.
func Parse(filename string, src []byte) (*Preset, error) {
	ctx := cuecontext.New()

	def := ctx.CompileString(schema, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#Drill"))
	if err := def.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeCompile, Message: fmt.Sprintf("schema: %v", err)}
	}

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, newLoadError(ErrCodeCompile, err)
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, newLoadError(ErrCodeValidate, err)
	}

	var p Preset
	if err := unified.Decode(&p); err != nil {
		return nil, newLoadError(ErrCodeDecode, err)
	}
	return &p, nil
}

// TuningValue returns the preset tuning, if set.
func (p *Preset) TuningValue() (guitar.Tuning, bool, error) {
	if p.Tuning == nil {
		return 0, false, nil
	}
	t, err := guitar.ParseTuning(*p.Tuning)
	return t, err == nil, err
}

// KindValues returns the preset quiz kinds; empty means unset.
func (p *Preset) KindValues() ([]challenge.Kind, error) {
	kinds := make([]challenge.Kind, 0, len(p.Kinds))
	for _, name := range p.Kinds {
		k, err := challenge.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func newLoadError(code string, err error) *LoadError {
	le := &LoadError{Code: code, Message: err.Error()}
	if errs := cueerrors.Errors(err); len(errs) > 0 {
		le.Message = errs[0].Error()
		le.Pos = errs[0].Position()
	}
	return le
}
