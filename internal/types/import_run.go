// Package types provides type definitions for structured data used throughout the job-tracker system.
package types

// ImportSummary represents the outcome of one sheet import run.
type ImportSummary struct {
	RunID       string   `json:"run_id"`
	Source      string   `json:"source"`
	SheetDate   string   `json:"sheet_date,omitempty"`
	Found       int      `json:"found"`
	Imported    int      `json:"imported"`
	Skipped     int      `json:"skipped"`
	Truncated   int      `json:"truncated"`
	SkipReasons []string `json:"skip_reasons,omitempty"`
	TotalStored int      `json:"total_stored"`
}
