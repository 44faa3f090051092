// Package parsing implements the daily-sheet parser: record boundary
// detection over physical lines, quote-aware field tokenization, and
// assembly of typed job records. It replaces the four near-duplicate
// importers that previously each did a slightly different subset of this.
package parsing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/job-tracker/internal/types"
)

// maxSkipReasons bounds how many per-record failures are kept verbatim for
// the run summary. Further failures are still counted.
const maxSkipReasons = 5

// ParseReport represents the outcome of parsing one sheet.
type ParseReport struct {
	Records     []types.JobRecord
	Found       int
	Skipped     int
	Truncated   int
	SkipReasons []string
}

// ParseSheet parses a whole sheet already read into memory and returns the
// assembled records plus the parse counters. Per-record failures never abort
// the batch; only a sheet with no content at all is an error.
func ParseSheet(content string) (*ParseReport, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &EmptyInputError{}
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	spans := DetectRecords(lines)
	report := &ParseReport{Found: len(spans)}

	for _, span := range spans {
		raw := strings.Join(lines[span.Start:span.End+1], "\n")
		fields, unterminated := Tokenize(raw)

		if span.Truncated || unterminated {
			report.Truncated++
		}

		record, err := AssembleRecord(fields)
		if err != nil {
			var malformed *MalformedRecordError
			if errors.As(err, &malformed) {
				malformed.Line = span.Start + 1
			}
			report.Skipped++
			if len(report.SkipReasons) < maxSkipReasons {
				report.SkipReasons = append(report.SkipReasons, err.Error())
			}
			continue
		}

		report.Records = append(report.Records, *record)
	}

	return report, nil
}

// Summary renders the one-line counts string every import run ends with.
func (r *ParseReport) Summary() string {
	return fmt.Sprintf("found %d, assembled %d, skipped %d, truncated %d",
		r.Found, len(r.Records), r.Skipped, r.Truncated)
}
