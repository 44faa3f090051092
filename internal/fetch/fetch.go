// Package fetch provides job-board page fetching and HTML-to-text processing.
// It centralizes the HTTP and headless-browser logic used by the trends
// scraper; the import pipeline itself never touches the network.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds a single search-page request.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is the desktop browser user agent sent with search requests.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// noiseSelector matches chrome and ad elements stripped before text
// extraction. Job-board search pages bury the result list in exactly this
// kind of clutter.
const noiseSelector = "nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// Result is one fetched page. On a non-200 response the Result is still
// populated so callers can inspect the status and any error body.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error is a fetch failure tied to the URL that produced it.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures one fetch: request timeout, user agent, and extra
// request headers.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns defaults suitable for job-board search pages.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Headers: map[string]string{
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.5",
		},
	}
}

// URL fetches one page over HTTP. A non-200 status returns both the
// populated Result and an *Error describing the status.
func URL(ctx context.Context, rawURL string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for name, value := range opts.Headers {
		req.Header.Set(name, value)
	}

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to read body", Cause: err}
	}

	result := &Result{
		URL:         rawURL,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// ExtractMainText strips noise elements from the HTML, then returns the text
// of the first matching content selector, falling back to the whole body
// when none match.
func ExtractMainText(html string, contentSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(noiseSelector).Remove()

	content := firstMatch(doc, contentSelectors)
	if content == nil {
		content = doc.Find("body")
	}
	return collapseBlankLines(content.Text()), nil
}

// firstMatch returns the first selection any of the selectors produces, in
// selector order, or nil.
func firstMatch(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, selector := range selectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return sel.First()
		}
	}
	return nil
}

// DefaultTextSelectors returns selectors for general page content.
func DefaultTextSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".main-content",
		"#main-content",
	}
}

// SearchResultSelectors returns selectors for the results region of a
// job-board search page.
func SearchResultSelectors() []string {
	return []string{
		"#mosaic-provider-jobcards",
		".jobsearch-ResultsList",
		"#resultsCol",
		".jobs-search-results",
		"main",
		"#content",
	}
}

// collapseBlankLines trims every line and drops the empty ones, keeping one
// line per rendered block of text.
func collapseBlankLines(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}
