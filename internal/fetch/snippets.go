// Package fetch - snippets.go extracts job-description snippets from search
// result pages.
package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minSnippetLength drops navigation fragments and truncated teasers.
const minSnippetLength = 50

// ExtractSnippets pulls job-description snippets out of a search results page.
// A job card is any div or anchor whose class mentions "job" or "result";
// the snippet is the first div or span inside it whose class mentions
// "snippet" or "summary". Boards rename their classes often, so matching is
// by substring rather than exact selector. At most maxCards cards are
// examined (all of them when maxCards <= 0); snippets of minSnippetLength
// characters or fewer are dropped.
func ExtractSnippets(html string, maxCards int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var snippets []string
	examined := 0
	doc.Find("div, a").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		class, _ := card.Attr("class")
		if !classMentions(class, "job", "result") {
			return true
		}
		examined++
		if snippet, ok := cardSnippet(card); ok {
			snippets = append(snippets, snippet)
		}
		return maxCards <= 0 || examined < maxCards
	})

	return snippets, nil
}

// cardSnippet finds the first snippet or summary element inside a job card.
func cardSnippet(card *goquery.Selection) (string, bool) {
	var text string
	found := false
	card.Find("div, span").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		class, _ := el.Attr("class")
		if !classMentions(class, "snippet", "summary") {
			return true
		}
		text = strings.TrimSpace(el.Text())
		found = true
		return false
	})
	if !found || len(text) <= minSnippetLength {
		return "", false
	}
	return text, true
}

// classMentions reports whether the class attribute contains any of the
// markers, case-insensitively.
func classMentions(class string, markers ...string) bool {
	if class == "" {
		return false
	}
	lower := strings.ToLower(class)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
