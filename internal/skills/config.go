package skills

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds a keyword dictionary override loaded from a YAML file.
// A non-empty categories section replaces the built-in dictionaries
// wholesale, and a non-empty exclude_words list replaces the built-in
// exclusion list the same way; a section left empty keeps the defaults.
type Config struct {
	Categories   map[string][]string `yaml:"categories"`
	ExcludeWords []string            `yaml:"exclude_words"`
}

// LoadConfig reads a keyword configuration from a YAML file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("keyword config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse keyword config YAML: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration does not name empty categories
// or blank keywords, which would produce matchers that match nothing.
func (c *Config) Validate() error {
	for name, words := range c.Categories {
		if name == "" {
			return fmt.Errorf("keyword config error: category with empty name")
		}
		if len(words) == 0 {
			return fmt.Errorf("keyword config error: category %q has no keywords", name)
		}
		for _, w := range words {
			if w == "" {
				return fmt.Errorf("keyword config error: category %q contains a blank keyword", name)
			}
		}
	}
	return nil
}
