package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/fretdrill/internal/canonical"
)

// GoldenDir is where golden transcripts live, relative to the test package.
const GoldenDir = "testdata/scenarios/golden"

// goldenSubdir holds the golden files beside a directory of scenarios.
const goldenSubdir = "golden"

// GoldenStatus is what CheckGolden found or did.
type GoldenStatus string

const (
	GoldenMatch    GoldenStatus = "match"
	GoldenMismatch GoldenStatus = "mismatch"
	GoldenMissing  GoldenStatus = "missing"
	GoldenUpdated  GoldenStatus = "updated"
)

// SnapshotJSON renders the canonical golden-file bytes for a result.
func SnapshotJSON(scenarioName string, result *Result) ([]byte, error) {
	return canonical.Marshal(result.Snapshot(scenarioName))
}

// RunWithGolden executes a scenario and compares the transcript against
// GoldenDir/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the transcript doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := SnapshotJSON(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}

// GoldenPath returns the golden file for a scenario file:
// <dir>/golden/<base name>.golden.
func GoldenPath(scenarioFile string) string {
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(scenarioFile), goldenSubdir, name+".golden")
}

// CheckGolden compares a result with the golden file beside scenarioFile,
// or rewrites that file when update is set. A missing golden file is
// reported as GoldenMissing, not as an error.
//
// This is the command-line counterpart of AssertGolden, which needs a
// *testing.T.
func CheckGolden(scenarioFile, scenarioName string, result *Result, update bool) (GoldenStatus, error) {
	data, err := SnapshotJSON(scenarioName, result)
	if err != nil {
		return "", fmt.Errorf("marshal transcript: %w", err)
	}
	path := GoldenPath(scenarioFile)

	if update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", err
		}
		return GoldenUpdated, nil
	}

	want, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return GoldenMissing, nil
	}
	if err != nil {
		return "", err
	}
	if !bytes.Equal(want, data) {
		return GoldenMismatch, nil
	}
	return GoldenMatch, nil
}
