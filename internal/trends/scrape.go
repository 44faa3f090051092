package trends

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-tracker/internal/fetch"
)

// DefaultMaxResults caps how many descriptions a single query may contribute.
const DefaultMaxResults = 20

// DefaultRatePerHost spaces board requests about two seconds apart.
const DefaultRatePerHost = 0.5

// DefaultQueryTimeout bounds one query across all boards, including the
// headless-browser fallback.
const DefaultQueryTimeout = 2 * time.Minute

// DefaultQueries returns the searches run when none are given.
func DefaultQueries() []string {
	return []string{
		"software engineer",
		"machine learning engineer",
		"data scientist",
		"ML engineer",
	}
}

// ScraperConfig holds configuration for the job-board scraper.
type ScraperConfig struct {
	Boards         []fetch.Board
	Options        *fetch.Options
	Location       string
	MaxResults     int
	RatePerHost    float64
	Burst          int
	QueryTimeout   time.Duration
	UseBrowser     bool
	BrowserTimeout time.Duration
	Verbose        bool
}

// DefaultScraperConfig returns sensible defaults.
func DefaultScraperConfig() *ScraperConfig {
	return &ScraperConfig{
		Boards:         fetch.DefaultBoards(),
		Options:        fetch.DefaultOptions(),
		MaxResults:     DefaultMaxResults,
		RatePerHost:    DefaultRatePerHost,
		Burst:          1,
		QueryTimeout:   DefaultQueryTimeout,
		BrowserTimeout: fetch.DefaultBrowserTimeout,
	}
}

// Scraper gathers job-description snippets from job-board search pages,
// topping up with the built-in samples when a query comes back thin.
type Scraper struct {
	boards         []fetch.Board
	options        *fetch.Options
	limiter        *fetch.HostLimiter
	location       string
	maxResults     int
	queryTimeout   time.Duration
	useBrowser     bool
	browserTimeout time.Duration
	verbose        bool

	// searchURL is swapped out in tests to point at a local server.
	searchURL func(board fetch.Board, query, location string) (string, error)
}

// NewScraper creates a scraper from config (nil gets defaults).
func NewScraper(config *ScraperConfig) *Scraper {
	if config == nil {
		config = DefaultScraperConfig()
	}
	if len(config.Boards) == 0 {
		config.Boards = fetch.DefaultBoards()
	}
	if config.Options == nil {
		config.Options = fetch.DefaultOptions()
	}
	if config.MaxResults <= 0 {
		config.MaxResults = DefaultMaxResults
	}
	if config.RatePerHost <= 0 {
		config.RatePerHost = DefaultRatePerHost
	}
	if config.Burst <= 0 {
		config.Burst = 1
	}
	if config.QueryTimeout <= 0 {
		config.QueryTimeout = DefaultQueryTimeout
	}
	if config.BrowserTimeout <= 0 {
		config.BrowserTimeout = fetch.DefaultBrowserTimeout
	}

	return &Scraper{
		boards:         config.Boards,
		options:        config.Options,
		limiter:        fetch.NewHostLimiter(config.RatePerHost, config.Burst),
		location:       config.Location,
		maxResults:     config.MaxResults,
		queryTimeout:   config.QueryTimeout,
		useBrowser:     config.UseBrowser,
		browserTimeout: config.BrowserTimeout,
		verbose:        config.Verbose,
		searchURL:      fetch.SearchURL,
	}
}

type queryResult struct {
	query        string
	descriptions []string
}

// Descriptions gathers job descriptions for every query. Queries run
// concurrently under an errgroup; every board request still passes through
// the shared per-host limiter. Results come back in input-query order so
// repeated runs count keywords the same way.
func (s *Scraper) Descriptions(ctx context.Context, queries []string) []string {
	var g errgroup.Group

	results := make(chan queryResult, len(queries))

	for _, query := range queries {
		query := query

		g.Go(func() error {
			qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
			defer cancel()

			if s.verbose {
				log.Printf("[scrape] searching for: %s", query)
			}
			descriptions := s.descriptionsForQuery(qctx, query)
			if s.verbose {
				log.Printf("[scrape] %q: %d descriptions", query, len(descriptions))
			}
			results <- queryResult{query: query, descriptions: descriptions}
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	byQuery := make(map[string][]string, len(queries))
	for res := range results {
		byQuery[res.query] = res.descriptions
	}

	var all []string
	for _, query := range queries {
		all = append(all, byQuery[query]...)
	}
	return all
}

// descriptionsForQuery scrapes every configured board for one query and tops
// up with samples when fewer than minScrapedDescriptions came back.
func (s *Scraper) descriptionsForQuery(ctx context.Context, query string) []string {
	var descriptions []string
	for _, board := range s.boards {
		snippets, err := s.scrapeBoard(ctx, board, query)
		if err != nil {
			if s.verbose {
				log.Printf("[scrape:%s] %q: %v", board, query, err)
			}
			continue
		}
		descriptions = append(descriptions, snippets...)
	}

	if len(descriptions) < minScrapedDescriptions {
		descriptions = append(descriptions, SampleDescriptions(query)...)
	}
	if len(descriptions) > s.maxResults {
		descriptions = descriptions[:s.maxResults]
	}
	return descriptions
}

// scrapeBoard fetches one board's search page and extracts its snippets.
func (s *Scraper) scrapeBoard(ctx context.Context, board fetch.Board, query string) ([]string, error) {
	searchURL, err := s.searchURL(board, query, s.location)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.WaitURL(ctx, searchURL); err != nil {
		return nil, err
	}

	result, err := fetch.URL(ctx, searchURL, s.options)
	if err != nil {
		return nil, err
	}

	snippets, err := fetch.ExtractSnippets(result.HTML, s.maxResults)
	if err != nil {
		return nil, err
	}
	if len(snippets) > 0 || !s.useBrowser {
		return snippets, nil
	}

	// No cards in the static page. If the page text is thin it is probably a
	// JavaScript shell, so render it in a headless browser and retry.
	text, err := fetch.ExtractMainText(result.HTML, fetch.SearchResultSelectors())
	if err != nil || !fetch.ShouldUseBrowser(text) {
		return snippets, nil
	}

	html, err := fetch.WithBrowser(ctx, searchURL, s.browserTimeout, s.verbose)
	if err != nil {
		return nil, err
	}
	return fetch.ExtractSnippets(html, s.maxResults)
}
