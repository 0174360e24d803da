// Package scrape collects job listings from external boards, one search
// query at a time.
package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/surya/job-search-agent/internal/types"
)

// Request carries one search term plus the fixed per-run scrape parameters.
type Request struct {
	Role     string
	Location string
	// Limit caps results per board per query.
	Limit int
	// MaxAge is the recency window for postings.
	MaxAge time.Duration
	// Country selects the country site on boards that have one.
	Country string
}

// Board scrapes a single job board for one search request.
type Board interface {
	Name() string
	Search(ctx context.Context, req Request) ([]types.Listing, error)
}

// cleanText collapses runs of whitespace inside scraped card text.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripTracking removes query-string tracking parameters from a listing URL
// so the same posting dedupes across runs.
func stripTracking(u string) string {
	if idx := strings.IndexByte(u, '?'); idx >= 0 {
		return u[:idx]
	}
	return u
}
