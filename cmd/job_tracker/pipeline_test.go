package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineCommand_FullRun(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "new_jobs.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte(importTestSheet), 0644))

	storePath := filepath.Join(dir, "job_listings.json")
	sheetsDir := filepath.Join(dir, "documents", "sheets")
	outcomeDir := filepath.Join(dir, "outcome")

	configPath := filepath.Join(dir, "config.json")
	configContent := fmt.Sprintf(`{"store": %q, "sheets_dir": %q, "outcome_dir": %q}`,
		storePath, sheetsDir, outcomeDir)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cmd := exec.Command(binaryPath, "pipeline", inputPath, "2026-02-03", "--config", configPath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "JOB LISTINGS PIPELINE")
	assert.Contains(t, string(output), "PIPELINE COMPLETE")

	assert.FileExists(t, filepath.Join(sheetsDir, "2026-02-03.tsv"))
	assert.FileExists(t, storePath)
	assert.FileExists(t, filepath.Join(outcomeDir, "resume_skills.json"))
	assert.FileExists(t, filepath.Join(outcomeDir, "count", "skill_counts_master.csv"))
}

func TestPipelineCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	configContent := fmt.Sprintf(`{"store": %q, "sheets_dir": %q, "outcome_dir": %q}`,
		filepath.Join(dir, "job_listings.json"), filepath.Join(dir, "sheets"), filepath.Join(dir, "outcome"))
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cmd := exec.Command(binaryPath, "pipeline", filepath.Join(dir, "absent.txt"), "--config", configPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "staging input file failed")
}

func TestPipelineCommand_RequiresInputArg(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "pipeline")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "arg")
}
