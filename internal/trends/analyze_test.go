package trends

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	cleaned := CleanText("<p>Experience with  C++, scikit-learn!</p>")

	// Tags and specials go, hyphens stay, whitespace collapses.
	assert.Equal(t, "experience with c scikit-learn", cleaned)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("<br/>"))
}

func TestExtractKeywords_FiltersStopAndShortWords(t *testing.T) {
	got := ExtractKeywords("We use Python and Go daily")

	// Tokens keep use/python/daily; "go" is too short as a token but comes
	// back as a tech phrase, and "python" double-counts the same way.
	assert.ElementsMatch(t, []string{"use", "python", "daily", "go", "python"}, got)
}

func TestExtractKeywords_PhraseMatch(t *testing.T) {
	got := ExtractKeywords("Background in machine learning required")

	assert.Contains(t, got, "machine learning")
}

func TestAnalyze_CountsAndTechFilter(t *testing.T) {
	analysis := Analyze([]string{
		"Python and TensorFlow",
		"Python with React",
	})

	assert.Equal(t, 2, analysis.TotalJobs)
	assert.Equal(t, 4, analysis.KeywordCounts["python"])
	assert.Equal(t, 2, analysis.KeywordCounts["tensorflow"])
	assert.Equal(t, 2, analysis.KeywordCounts["react"])

	assert.Equal(t, 4, analysis.TechKeywords["python"])
	assert.Equal(t, 2, analysis.TechKeywords["react"])
	assert.NotEmpty(t, analysis.Timestamp)
}

func TestAnalyze_ExcludesFillerFromTechReport(t *testing.T) {
	analysis := Analyze([]string{"experience experience experience"})

	assert.Equal(t, 3, analysis.KeywordCounts["experience"])
	assert.NotContains(t, analysis.TechKeywords, "experience")
}

func TestAnalyze_LongWordHeuristic(t *testing.T) {
	analysis := Analyze([]string{"blockchain expertise wanted"})

	// blockchain relates to no tech term but passes the length heuristic;
	// wanted does too; expertise is excluded.
	assert.Contains(t, analysis.TechKeywords, "blockchain")
	assert.NotContains(t, analysis.TechKeywords, "expertise")
}

func TestAnalyze_CapsRawKeywords(t *testing.T) {
	var words string
	for i := 0; i < 105; i++ {
		words += fmt.Sprintf("unique%03d ", i)
	}

	analysis := Analyze([]string{words})

	assert.Len(t, analysis.KeywordCounts, 100)
	// Equal counts break ties alphabetically, keeping the first hundred.
	assert.Contains(t, analysis.KeywordCounts, "unique000")
	assert.NotContains(t, analysis.KeywordCounts, "unique104")
}

func TestTrending_RanksByCount(t *testing.T) {
	analysis := Analyze([]string{
		"Python and TensorFlow",
		"Python with React",
	})

	trending := Trending(analysis, 30)
	require.NotEmpty(t, trending)
	assert.Equal(t, KeywordCount{Keyword: "python", Count: 4}, trending[0])

	trimmed := Trending(analysis, 2)
	assert.Len(t, trimmed, 2)
}

func TestSampleDescriptions(t *testing.T) {
	samples := SampleDescriptions("machine learning engineer")

	require.Len(t, samples, 6)
	assert.Contains(t, samples[0], "Machine Learning Engineer")
	for _, sample := range samples {
		assert.NotEmpty(t, sample)
	}
}

func TestNewTrendReport_DefaultTopN(t *testing.T) {
	report := NewTrendReport(SampleDescriptions("software engineer"), 0)

	require.NotNil(t, report.Analysis)
	assert.Equal(t, 6, report.Analysis.TotalJobs)
	assert.LessOrEqual(t, len(report.Trending), DefaultTopN)
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestWriteTrendReport(t *testing.T) {
	report := NewTrendReport([]string{"Python and Docker"}, 10)

	path := filepath.Join(t.TempDir(), "outcome", DefaultOutputName)
	require.NoError(t, WriteTrendReport(path, report))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "analysis")
	assert.Contains(t, decoded, "trending_keywords")
	assert.Contains(t, decoded, "generated_at")
}
