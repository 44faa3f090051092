package trends

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultOutputName is the trend report output file.
const DefaultOutputName = "trending_keywords.json"

// DefaultTopN is how many trending keywords the report keeps.
const DefaultTopN = 30

// TrendReport bundles an analysis with its trending ranking for output.
type TrendReport struct {
	Analysis    *Analysis      `json:"analysis"`
	Trending    []KeywordCount `json:"trending_keywords"`
	GeneratedAt string         `json:"generated_at"`
}

// NewTrendReport analyzes descriptions and ranks the top-N trending
// keywords.
func NewTrendReport(descriptions []string, topN int) *TrendReport {
	if topN <= 0 {
		topN = DefaultTopN
	}
	analysis := Analyze(descriptions)
	return &TrendReport{
		Analysis:    analysis,
		Trending:    Trending(analysis, topN),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
}

// WriteTrendReport saves the report with two-space indentation, creating
// parent directories as needed.
func WriteTrendReport(path string, report *TrendReport) error {
	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trend report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write trend report: %w", err)
	}
	return nil
}
