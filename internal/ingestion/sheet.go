// Package ingestion reads daily job sheets from disk and stages them into the
// dated sheets directory the pipeline works from.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NormalizeSheet normalizes line endings (CRLF and lone CR become LF).
// Nothing else is touched: tabs and interior whitespace are sheet layout and
// must reach the tokenizer intact.
func NormalizeSheet(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return content
}

// ReadSheet reads a sheet file, normalizes its line endings, and returns the
// content with metadata about what was read.
func ReadSheet(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("sheet not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	normalized := NormalizeSheet(string(content))
	return normalized, NewMetadata(normalized, path), nil
}

// StageSheet copies an input file into the sheets directory under its dated
// name (<sheetsDir>/<date>.tsv) and returns the staged path. The copy is what
// later runs and reports refer back to.
func StageSheet(inputPath, sheetsDir, date string) (string, error) {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("input file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read input file: %w", err)
	}

	if err := os.MkdirAll(sheetsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create sheets directory: %w", err)
	}

	target := filepath.Join(sheetsDir, date+".tsv")
	if err := os.WriteFile(target, content, 0644); err != nil {
		return "", fmt.Errorf("failed to stage sheet: %w", err)
	}

	return target, nil
}

// DefaultSheetPath returns the conventional location of a day's sheet.
func DefaultSheetPath(sheetsDir, date string) string {
	return filepath.Join(sheetsDir, date+".tsv")
}
