// Package types provides type definitions for structured data used throughout the job-tracker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// dateShape is the accepted form of the sheet date column. The value is not
// checked as a calendar date; 2026-02-30 is accepted.
var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// JobRecord represents a single imported job listing. Field order matches the
// sheet columns and the on-disk JSON storage keys.
type JobRecord struct {
	PositionTitle   string   `json:"position_title" validate:"required"`
	Date            string   `json:"date" validate:"required"`
	WorkModel       string   `json:"work_model"`
	Location        string   `json:"location"`
	Company         string   `json:"company"`
	Salary          string   `json:"salary"`
	CompanySize     string   `json:"company_size"`
	CompanyIndustry []string `json:"company_industry"`
	Qualifications  string   `json:"qualifications"`
	H1BSponsored    string   `json:"h1b_sponsored"`
	IsNewGrad       bool     `json:"is_new_grad"`
	ApplyURL        string   `json:"apply_url,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// Validate validates a manually constructed JobRecord using the validator,
// plus the date-shape rule the parser guarantees for imported records.
func (j *JobRecord) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return err
	}
	if !dateShape.MatchString(j.Date) {
		return fmt.Errorf("date %q is not in YYYY-MM-DD form", j.Date)
	}
	return nil
}

// IndustryLine renders the industry list the way the sheets and CSV exports
// show it.
func (j *JobRecord) IndustryLine() string {
	return strings.Join(j.CompanyIndustry, ", ")
}

// NewGradLabel renders the new-grad flag for display and CSV export.
func (j *JobRecord) NewGradLabel() string {
	if j.IsNewGrad {
		return "Yes"
	}
	return "No"
}
