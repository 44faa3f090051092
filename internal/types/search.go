// Package types provides type definitions for structured data used throughout the job-tracker system.
package types

import "strings"

// SearchFilter represents the criteria for filtering stored job records.
// Zero-value fields are ignored; set fields combine with AND.
type SearchFilter struct {
	Company   string
	Location  string
	WorkModel string
	Industry  string
	H1B       string
	NewGrad   *bool
}

// Matches reports whether a record satisfies every set criterion.
// Company, Location, and Industry match as case-insensitive substrings;
// WorkModel and H1B match as case-insensitive equality.
func (f *SearchFilter) Matches(j *JobRecord) bool {
	if f.Company != "" && !containsFold(j.Company, f.Company) {
		return false
	}
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if f.WorkModel != "" && !strings.EqualFold(j.WorkModel, f.WorkModel) {
		return false
	}
	if f.Industry != "" {
		found := false
		for _, ind := range j.CompanyIndustry {
			if containsFold(ind, f.Industry) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.H1B != "" && !strings.EqualFold(j.H1BSponsored, f.H1B) {
		return false
	}
	if f.NewGrad != nil && j.IsNewGrad != *f.NewGrad {
		return false
	}
	return true
}

// IsZero reports whether no criteria are set.
func (f *SearchFilter) IsZero() bool {
	return f.Company == "" && f.Location == "" && f.WorkModel == "" &&
		f.Industry == "" && f.H1B == "" && f.NewGrad == nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
