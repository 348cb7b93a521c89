package harness

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/fretdrill/internal/challenge"
	"github.com/roach88/fretdrill/internal/guitar"
)

// Scenario defines a scripted drill session.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Tuning of the guitar. Defaults to EADGBE.
	Tuning string `yaml:"tuning,omitempty"`

	// Kinds restricts the quizzes. Defaults to all of them.
	Kinds []string `yaml:"kinds,omitempty"`

	// Rounds is how many challenges must be solved. Must be positive so
	// the session ends.
	Rounds int `yaml:"rounds"`

	// Choices are the random draws, in draw order.
	Choices []int `yaml:"choices"`

	// Responses are the solver's input lines, in order.
	Responses []string `yaml:"responses"`

	// SessionToken is an optional fixed token. Defaults to "test-session-default".
	SessionToken string `yaml:"session_token,omitempty"`

	// Assertions validate the transcript and outcome.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one aspect of the result.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Round is the 1-based round (question_*, verdicts).
	Round int `yaml:"round,omitempty"`

	// Text is the expected question text (question_*).
	Text string `yaml:"text,omitempty"`

	// Verdicts is the expected verdict sequence (verdicts).
	Verdicts []bool `yaml:"verdicts,omitempty"`

	// Count is the expected number (hint_count, rounds).
	Count int `yaml:"count,omitempty"`

	// Outcome is the expected session outcome (outcome).
	Outcome string `yaml:"outcome,omitempty"`
}

// Assertion type constants.
const (
	AssertQuestionEquals   = "question_equals"
	AssertQuestionContains = "question_contains"
	AssertVerdicts         = "verdicts"
	AssertHintCount        = "hint_count"
	AssertRounds           = "rounds"
	AssertOutcome          = "outcome"
)

// FindScenarios lists the .yaml and .yml scenario files under dir, in
// lexical order. The golden directory is skipped. A non-empty filter is a
// filepath.Match glob applied to the file name without its extension.
func FindScenarios(dir, filter string) ([]string, error) {
	if filter != "" {
		if _, err := filepath.Match(filter, ""); err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
		}
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && d.Name() == goldenSubdir {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if filter != "" {
			// pattern was checked above
			if ok, _ := filepath.Match(filter, strings.TrimSuffix(d.Name(), ext)); !ok {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive")
	}

	if s.Tuning != "" {
		if _, err := guitar.ParseTuning(s.Tuning); err != nil {
			return err
		}
	}

	for i, k := range s.Kinds {
		if _, err := challenge.ParseKind(k); err != nil {
			return fmt.Errorf("kinds[%d]: %w", i, err)
		}
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertQuestionEquals, AssertQuestionContains:
		if a.Round <= 0 {
			return fmt.Errorf("assertions[%d]: round is required for %s", index, a.Type)
		}
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for %s", index, a.Type)
		}
	case AssertVerdicts:
		if a.Round <= 0 {
			return fmt.Errorf("assertions[%d]: round is required for verdicts", index)
		}
		if len(a.Verdicts) == 0 {
			return fmt.Errorf("assertions[%d]: verdicts list is required", index)
		}
	case AssertHintCount, AssertRounds:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertOutcome:
		switch a.Outcome {
		case OutcomeCompleted, OutcomeIOFailure, OutcomeConstructionError:
		default:
			return fmt.Errorf("assertions[%d]: unknown outcome %q", index, a.Outcome)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
