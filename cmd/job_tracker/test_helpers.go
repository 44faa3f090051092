package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath locates the compiled job_tracker binary for whole-command
// tests. Skips when running short or when the binary has not been built.
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "job_tracker")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s; build it with 'go build -o bin/job_tracker ./cmd/job_tracker'", binaryPath)
	}

	return binaryPath
}
