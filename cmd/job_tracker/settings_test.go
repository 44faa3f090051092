package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootFlags restores the global flag variables after a test mutates
// them.
func resetRootFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		rootStorePath = ""
		rootConfigPath = ""
		rootVerbose = false
	})
	t.Setenv("DATABASE_URL", "")
}

func TestResolveConfig_Defaults(t *testing.T) {
	resetRootFlags(t)

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, "job_listings.json", cfg.Store)
	assert.Equal(t, filepath.Join("documents", "sheets"), cfg.SheetsDir)
	assert.Equal(t, "outcome", cfg.OutcomeDir)
	assert.Equal(t, "", cfg.DatabaseURL)
}

func TestResolveConfig_FromFile(t *testing.T) {
	resetRootFlags(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	content := `{"store": "custom.json", "scrape_rate": 1.5}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	rootConfigPath = configPath

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, "custom.json", cfg.Store)
	assert.Equal(t, 1.5, cfg.ScrapeRate)
	// Unset fields still get defaults.
	assert.Equal(t, "outcome", cfg.OutcomeDir)
}

func TestResolveConfig_StoreFlagWins(t *testing.T) {
	resetRootFlags(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"store": "from_file.json"}`), 0644))
	rootConfigPath = configPath
	rootStorePath = "from_flag.json"

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, "from_flag.json", cfg.Store)
}

func TestResolveConfig_VerboseFlag(t *testing.T) {
	resetRootFlags(t)
	rootVerbose = true

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
}

func TestResolveConfig_InvalidFile(t *testing.T) {
	resetRootFlags(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0644))
	rootConfigPath = configPath

	_, err := resolveConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestResolveConfig_DatabaseURLFromEnv(t *testing.T) {
	resetRootFlags(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/jobs")

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/jobs", cfg.DatabaseURL)
}
