package skills

import (
	"regexp"
	"sort"
	"strings"
)

// techPatterns sweep up technology names the dictionaries might miss:
// .js frameworks, C-family names, API styles, and common ML acronyms.
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[a-z]+\.js\b`),
	regexp.MustCompile(`\b[a-z]+\+\+`),
	regexp.MustCompile(`\b[a-z]+#`),
	regexp.MustCompile(`\b(?:rest api|api|graphql)\b`),
	regexp.MustCompile(`\b(?:ci/cd|tdd|nlp|llm|gpt|bert|cnn|rnn|lstm|gan|svm)\b`),
}

// Extractor matches qualification text against immutable keyword
// dictionaries. Build one at startup and reuse it; construction compiles a
// matcher per keyword.
type Extractor struct {
	categories map[string][]string
	order      []string
	exclude    map[string]struct{}
	matchers   map[string]*regexp.Regexp // keyword -> compiled boundary matcher
}

// NewExtractor builds an Extractor over the built-in dictionaries.
func NewExtractor() *Extractor {
	return newExtractor(defaultCategories, defaultExcludeWords)
}

// NewExtractorFromConfig builds an Extractor over a loaded keyword config.
// Sections left empty in the config fall back to the built-in defaults.
func NewExtractorFromConfig(cfg *Config) *Extractor {
	categories := defaultCategories
	if len(cfg.Categories) > 0 {
		categories = cfg.Categories
	}
	exclude := defaultExcludeWords
	if len(cfg.ExcludeWords) > 0 {
		exclude = cfg.ExcludeWords
	}
	return newExtractor(categories, exclude)
}

func newExtractor(categories map[string][]string, excludeWords []string) *Extractor {
	e := &Extractor{
		categories: categories,
		order:      orderedCategories(categories),
		exclude:    make(map[string]struct{}, len(excludeWords)),
		matchers:   make(map[string]*regexp.Regexp),
	}
	for _, word := range excludeWords {
		e.exclude[strings.ToLower(word)] = struct{}{}
	}
	for _, keywords := range categories {
		for _, kw := range keywords {
			if _, ok := e.matchers[kw]; !ok {
				e.matchers[kw] = keywordMatcher(kw)
			}
		}
	}
	return e
}

// keywordMatcher compiles a boundary-aware matcher for one keyword. A plain
// \b boundary fails after trailing + or # (c++, c#), so the boundary here is
// "not adjacent to a letter or digit" on both sides.
func keywordMatcher(keyword string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(strings.ToLower(keyword))
	return regexp.MustCompile(`(?:^|[^a-z0-9])` + escaped + `(?:$|[^a-z0-9])`)
}

// Extract scans qualification text and returns category -> sorted skills.
// Matched skills are reported in their canonical dictionary form; pattern
// hits that fit no category land in other_technologies. Empty categories are
// absent from the result.
func (e *Extractor) Extract(text string) map[string][]string {
	lower := strings.ToLower(text)
	found := make(map[string]map[string]struct{})

	add := func(category, skill string) {
		if _, excluded := e.exclude[skill]; excluded || len(skill) <= 1 {
			return
		}
		if found[category] == nil {
			found[category] = make(map[string]struct{})
		}
		found[category][skill] = struct{}{}
	}

	for _, category := range e.order {
		for _, kw := range e.categories[category] {
			if e.matchers[kw].MatchString(lower) {
				add(category, kw)
			}
		}
	}

	for _, pattern := range techPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			match = strings.TrimSpace(match)
			if match == "" {
				continue
			}
			add(e.categorize(match), match)
		}
	}

	result := make(map[string][]string, len(found))
	for category, skills := range found {
		sorted := make([]string, 0, len(skills))
		for skill := range skills {
			sorted = append(sorted, skill)
		}
		sort.Strings(sorted)
		result[category] = sorted
	}
	return result
}

// categorize routes a pattern hit to the first category that either contains
// it verbatim or contains a keyword embedded in it (so "vue.js" follows
// "vue"). Unrouted hits go to other_technologies.
func (e *Extractor) categorize(match string) string {
	for _, category := range e.order {
		for _, kw := range e.categories[category] {
			if match == kw || strings.Contains(match, kw) {
				return category
			}
		}
	}
	return CategoryOther
}

// OrderedCategories returns the categories of an extraction result in
// presentation order.
func (e *Extractor) OrderedCategories(result map[string][]string) []string {
	var out []string
	emitted := make(map[string]bool, len(result))
	for _, category := range append(append([]string{}, e.order...), CategoryOther) {
		if _, ok := result[category]; ok && !emitted[category] {
			out = append(out, category)
			emitted[category] = true
		}
	}
	return out
}

// orderedCategories lays out category keys: canonical built-ins first, then
// custom categories alphabetically.
func orderedCategories(categories map[string][]string) []string {
	known := make(map[string]bool, len(categoryOrder))
	var order []string
	for _, category := range categoryOrder {
		if _, ok := categories[category]; ok {
			order = append(order, category)
			known[category] = true
		}
	}
	var custom []string
	for category := range categories {
		if !known[category] {
			custom = append(custom, category)
		}
	}
	sort.Strings(custom)
	return append(order, custom...)
}

// TitleCase renders a category key the way the CSV exports label it:
// underscores become spaces and each word is capitalized.
func TitleCase(category string) string {
	words := strings.Split(strings.ReplaceAll(category, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
