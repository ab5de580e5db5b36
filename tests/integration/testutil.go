// Package integration provides CLI integration tests for shringar. Each
// test runs the built binary against an isolated config and data
// directory.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// shringarBin is the path to the built shringar binary.
	shringarBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetShringarBin sets the path to the shringar binary (called from TestMain).
func SetShringarBin(path string) {
	shringarBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and
// data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build shringar: %v", buildErr)
	}
	if shringarBin == "" {
		t.Fatal("shringar binary not built (shringarBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a shringar command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunShringar executes the shringar CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunShringar(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(shringarBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run shringar: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunShringar executes the shringar CLI and fails the test if it
// returns non-zero.
func (e *TestEnv) MustRunShringar(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunShringar(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("shringar %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Service mirrors the service entity for JSON parsing.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// Client mirrors the client entity for JSON parsing.
type Client struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	TotalVisits int    `json:"totalVisits"`
	LastVisit   string `json:"lastVisit"`
}

// Appointment mirrors the appointment entity for JSON parsing.
type Appointment struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"clientId"`
	ServiceID   string  `json:"serviceId"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"totalAmount"`
}

// Jewelry mirrors the jewelry entity for JSON parsing.
type Jewelry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	InStock  bool    `json:"inStock"`
}

// Stats mirrors the stats output for JSON parsing.
type Stats struct {
	Services          int     `json:"services"`
	Clients           int     `json:"clients"`
	TodayAppointments int     `json:"todayAppointments"`
	Revenue           float64 `json:"revenue"`
	JewelryItems      int     `json:"jewelryItems"`
	GoldItems         int     `json:"goldItems"`
	InStockItems      int     `json:"inStockItems"`
}
