package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_PlainFields(t *testing.T) {
	fields, truncated := Tokenize("Software Engineer\t2026-02-03\thttps://example.com/apply")

	assert.False(t, truncated)
	assert.Equal(t, []string{"Software Engineer", "2026-02-03", "https://example.com/apply"}, fields)
}

func TestTokenize_TrimsWhitespace(t *testing.T) {
	fields, _ := Tokenize("  Software Engineer \t 2026-02-03\t Hybrid ")

	assert.Equal(t, []string{"Software Engineer", "2026-02-03", "Hybrid"}, fields)
}

func TestTokenize_QuotedFieldWithEmbeddedTabs(t *testing.T) {
	fields, truncated := Tokenize("title\t\"has\ta tab\"\tnext")

	assert.False(t, truncated)
	require.Len(t, fields, 3)
	assert.Equal(t, "has\ta tab", fields[1], "tab inside quotes must not split the field")
	assert.Equal(t, "next", fields[2])
}

func TestTokenize_QuotedFieldWithEmbeddedNewline(t *testing.T) {
	fields, truncated := Tokenize("title\t\"line one\nline two\"\tafter")

	assert.False(t, truncated)
	require.Len(t, fields, 3)
	assert.Equal(t, "line one\nline two", fields[1], "newline inside quotes is literal field content")
}

func TestTokenize_StripsWrappingQuotesOnly(t *testing.T) {
	fields, _ := Tokenize("\"fully wrapped\"\tsaid \"hi\" there")

	assert.Equal(t, "fully wrapped", fields[0])
	assert.Equal(t, `said "hi" there`, fields[1], "interior quotes are content, not wrapping")
}

func TestTokenize_EmptyQuotedField(t *testing.T) {
	fields, _ := Tokenize("a\t\"\"\tb")

	assert.Equal(t, []string{"a", "", "b"}, fields)
}

func TestTokenize_UnterminatedQuoteEmitsPartialField(t *testing.T) {
	fields, truncated := Tokenize("title\t2026-02-03\t\"1. BS in CS\n2. Strong SQL")

	assert.True(t, truncated, "open quote at end of input signals truncation")
	require.Len(t, fields, 3)
	assert.Equal(t, "1. BS in CS\n2. Strong SQL", fields[2],
		"partial field is emitted best-effort without the orphan opening quote")
}

func TestTokenize_TrailingTabDropsEmptyLastField(t *testing.T) {
	fields, _ := Tokenize("a\tb\t")

	assert.Equal(t, []string{"a", "b"}, fields)
}

func TestTokenize_EmptyInteriorFieldsKept(t *testing.T) {
	fields, _ := Tokenize("a\t\t\tb")

	assert.Equal(t, []string{"a", "", "", "b"}, fields)
}

func TestTokenize_QuoteClosedThenReopened(t *testing.T) {
	fields, truncated := Tokenize("\"first\"\t\"second")

	assert.True(t, truncated)
	require.Len(t, fields, 2)
	assert.Equal(t, "first", fields[0])
	assert.Equal(t, "second", fields[1])
}
