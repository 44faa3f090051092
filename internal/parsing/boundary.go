package parsing

import (
	"regexp"
	"strings"
)

// recordStartDate matches the sheet date column at the start of the second
// tab-separated field. Only the shape is checked, never the calendar.
var recordStartDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Span represents the physical line range of one record within a sheet,
// inclusive on both ends.
type Span struct {
	Start     int
	End       int
	Truncated bool
}

// isRecordStart reports whether a physical line begins a new record: the line
// is non-empty, contains at least one tab, and its second tab field starts
// with a YYYY-MM-DD date.
func isRecordStart(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if !strings.Contains(line, "\t") {
		return false
	}
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 2 {
		return false
	}
	return recordStartDate.MatchString(parts[1])
}

// quoteParityOdd reports whether a line contains an odd number of quote
// characters, i.e. whether it flips the open-quote state of the record.
func quoteParityOdd(line string) bool {
	return strings.Count(line, `"`)%2 == 1
}

// DetectRecords scans the sheet's physical lines and returns the ordered
// spans of every record it finds.
//
// A record runs from its start line until the line on which the cumulative
// quote count balances out. A start line whose quotes are already balanced is
// a complete single-line record. Lines between records that do not themselves
// start a record are noise and are skipped. A quote left open at EOF closes
// the final record and marks it truncated.
//
// Because the open-quote state is tracked across the whole span, a line that
// merely looks like a record start inside an open quote stays part of the
// current record, and a line that closes one quote but opens another keeps
// the record open.
func DetectRecords(lines []string) []Span {
	var spans []Span

	i := 0
	for i < len(lines) {
		if !isRecordStart(lines[i]) {
			i++
			continue
		}

		span := Span{Start: i}
		open := quoteParityOdd(lines[i])

		j := i
		for open && j+1 < len(lines) {
			j++
			if quoteParityOdd(lines[j]) {
				open = false
			}
		}

		span.End = j
		span.Truncated = open
		spans = append(spans, span)

		i = j + 1
	}

	return spans
}
