package main

import (
	"fmt"
	"os"

	"github.com/jonathan/job-tracker/internal/config"
)

// resolveConfig builds the effective configuration for one invocation:
// config file (explicit flag, or the default file when present), then
// defaults for anything unset, then the global flag overrides.
func resolveConfig() (*config.Config, error) {
	cfg := &config.Config{}

	path := rootConfigPath
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			path = config.DefaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	cfg = &merged

	if rootStorePath != "" {
		cfg.Store = rootStorePath
	}
	if rootVerbose {
		cfg.Verbose = true
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}
