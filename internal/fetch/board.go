// Package fetch - board.go builds search-results URLs for known job boards.
package fetch

import (
	"fmt"
	"net/url"
)

// Board identifies a job-search site the trends scraper knows how to query.
type Board string

const (
	// BoardIndeed is the Indeed job-search site.
	BoardIndeed Board = "indeed"
)

// DefaultBoards returns the boards queried when none are configured.
// Indeed is the only board with a usable public search page; the tech-focused
// boards the scraper once tried have shut down or moved behind logins.
func DefaultBoards() []Board {
	return []Board{BoardIndeed}
}

// SearchURL builds the search-results URL for a query on a board.
// Location may be empty for a nationwide search.
func SearchURL(board Board, query, location string) (string, error) {
	switch board {
	case BoardIndeed:
		params := url.Values{}
		params.Set("q", query)
		params.Set("l", location)
		params.Set("start", "0")
		return "https://www.indeed.com/jobs?" + params.Encode(), nil
	default:
		return "", fmt.Errorf("no search URL for job board %q", board)
	}
}
