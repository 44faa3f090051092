package trends

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

var (
	htmlTags   = regexp.MustCompile(`<[^>]+>`)
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// CleanText strips HTML tags, drops non-word characters except hyphens, and
// collapses whitespace, returning lower-cased text.
func CleanText(text string) string {
	text = htmlTags.ReplaceAllString(text, "")
	text = nonWord.ReplaceAllString(text, " ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

// ExtractKeywords returns the tokens of a description longer than two
// characters that are not stop words, plus every tech phrase found by
// substring in the cleaned text. Repetitions are kept; the analysis counts
// them.
func ExtractKeywords(text string) []string {
	cleaned := CleanText(text)

	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if _, stop := stopWords[word]; stop || len(word) <= 2 {
			continue
		}
		keywords = append(keywords, word)
	}

	for _, kw := range techKeywordList {
		if strings.Contains(cleaned, kw) {
			keywords = append(keywords, kw)
		}
	}

	return keywords
}

// Analysis is the keyword-frequency result over a set of descriptions.
type Analysis struct {
	TotalJobs     int            `json:"total_jobs"`
	KeywordCounts map[string]int `json:"keyword_counts"`
	TechKeywords  map[string]int `json:"tech_keywords"`
	Timestamp     string         `json:"timestamp"`
}

// rawKeywordLimit and techKeywordLimit cap the two frequency maps.
const (
	rawKeywordLimit  = 100
	techKeywordLimit = 50
)

// Analyze counts keyword frequencies across descriptions. KeywordCounts
// keeps the 100 most frequent raw keywords; TechKeywords keeps the 50 most
// frequent keywords that relate to a tech term by substring either way, or
// that are longer than four characters and not stop words, minus the
// exclude list.
func Analyze(descriptions []string) *Analysis {
	counts := make(map[string]int)
	for _, desc := range descriptions {
		for _, kw := range ExtractKeywords(desc) {
			counts[kw]++
		}
	}

	techCounts := make(map[string]int)
	for kw, count := range counts {
		if isTechKeyword(kw) {
			techCounts[kw] = count
		}
	}

	return &Analysis{
		TotalJobs:     len(descriptions),
		KeywordCounts: topCounts(counts, rawKeywordLimit),
		TechKeywords:  topCounts(techCounts, techKeywordLimit),
		Timestamp:     time.Now().Format(time.RFC3339),
	}
}

// isTechKeyword reports whether a counted keyword belongs in the tech
// report.
func isTechKeyword(kw string) bool {
	if _, excluded := excludeWords[kw]; excluded {
		return false
	}
	for _, tech := range techKeywordList {
		if strings.Contains(kw, tech) || strings.Contains(tech, kw) {
			return true
		}
	}
	if len(kw) > 4 {
		if _, stop := stopWords[kw]; !stop {
			return true
		}
	}
	return false
}

// KeywordCount is one trending entry.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Trending returns the top-N tech keywords of an analysis by count, ties
// broken alphabetically.
func Trending(analysis *Analysis, topN int) []KeywordCount {
	ranked := rankCounts(analysis.TechKeywords)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// topCounts keeps the limit most frequent entries of counts.
func topCounts(counts map[string]int, limit int) map[string]int {
	if len(counts) <= limit {
		return counts
	}
	out := make(map[string]int, limit)
	for _, entry := range rankCounts(counts)[:limit] {
		out[entry.Keyword] = entry.Count
	}
	return out
}

// rankCounts orders a frequency map by count descending, then keyword.
func rankCounts(counts map[string]int) []KeywordCount {
	ranked := make([]KeywordCount, 0, len(counts))
	for kw, count := range counts {
		ranked = append(ranked, KeywordCount{Keyword: kw, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})
	return ranked
}
