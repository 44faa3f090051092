package parsing

import "fmt"

// EmptyInputError reports a sheet with no parseable content at all.
type EmptyInputError struct {
	Message string
}

func (e *EmptyInputError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("empty input: %s", e.Message)
	}
	return "empty input: sheet has no content"
}

// MalformedRecordError reports a record that could not be assembled.
// The batch continues past it; the error only feeds the run summary.
type MalformedRecordError struct {
	Line   int // 1-based sheet line where the record starts, 0 if unknown
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed record: %s", e.Reason)
}

// TruncatedQuoteError reports a quoted field whose closing quote never
// appeared. The record is still emitted with best-effort content.
type TruncatedQuoteError struct {
	Line int // 1-based sheet line where the record starts
}

func (e *TruncatedQuoteError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("unterminated quote in record starting at line %d", e.Line)
	}
	return "unterminated quote in record"
}
