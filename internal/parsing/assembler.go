package parsing

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-tracker/internal/types"
)

// Sheet column positions. Columns ten and eleven are optional; everything
// through qualifications must be present.
const (
	fieldTitle = iota
	fieldDate
	fieldApplyURL
	fieldWorkModel
	fieldLocation
	fieldCompany
	fieldSalary
	fieldCompanySize
	fieldIndustry
	fieldQualifications
	fieldH1B
	fieldNewGrad

	minFields = fieldH1B // title through qualifications
)

// newGradValues are the accepted truthy spellings of the new-grad column.
var newGradValues = map[string]bool{
	"yes":  true,
	"y":    true,
	"true": true,
	"1":    true,
}

// AssembleRecord builds a JobRecord from tokenized fields. It is a pure
// transformation: no I/O, no mutation of its input.
//
// Records with fewer than ten fields, or with an empty title or date, are
// rejected with a MalformedRecordError so the caller can count the skip and
// move on.
func AssembleRecord(fields []string) (*types.JobRecord, error) {
	if len(fields) < minFields {
		return nil, &MalformedRecordError{
			Reason: fmt.Sprintf("%d fields, need at least %d", len(fields), minFields),
		}
	}
	if fields[fieldTitle] == "" {
		return nil, &MalformedRecordError{Reason: "missing position title"}
	}
	if fields[fieldDate] == "" {
		return nil, &MalformedRecordError{Reason: "missing date"}
	}

	record := &types.JobRecord{
		PositionTitle:   fields[fieldTitle],
		Date:            fields[fieldDate],
		ApplyURL:        fields[fieldApplyURL],
		WorkModel:       fields[fieldWorkModel],
		Location:        normalizeLocation(fields[fieldLocation]),
		Company:         fields[fieldCompany],
		Salary:          fields[fieldSalary],
		CompanySize:     fields[fieldCompanySize],
		CompanyIndustry: splitIndustries(fields[fieldIndustry]),
		Qualifications:  fields[fieldQualifications],
		H1BSponsored:    "not sure",
		IsNewGrad:       false,
	}

	if len(fields) > fieldH1B {
		if h1b := strings.ToLower(strings.TrimSpace(fields[fieldH1B])); h1b != "" {
			record.H1BSponsored = h1b
		}
	}
	if len(fields) > fieldNewGrad {
		record.IsNewGrad = newGradValues[strings.ToLower(strings.TrimSpace(fields[fieldNewGrad]))]
	}

	return record, nil
}

// splitIndustries splits the comma-separated industry column into trimmed,
// non-empty entries. An empty column becomes ["Unknown"].
func splitIndustries(raw string) []string {
	var industries []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			industries = append(industries, trimmed)
		}
	}
	if len(industries) == 0 {
		return []string{"Unknown"}
	}
	return industries
}

// normalizeLocation collapses a multi-line location column. Sheets mark
// multi-city postings with a "Multi Location" header line followed by the
// cities; those are joined with "; ". Any other multi-line value keeps its
// first non-empty line.
func normalizeLocation(raw string) string {
	if !strings.Contains(raw, "\n") {
		return raw
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return raw
	}

	if strings.Contains(lines[0], "Multi Location") {
		if len(lines) > 1 {
			return strings.Join(lines[1:], "; ")
		}
		return lines[0]
	}
	return lines[0]
}
