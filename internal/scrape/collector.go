package scrape

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/surya/job-search-agent/internal/types"
)

// Config fixes the per-run scrape parameters shared by every query.
type Config struct {
	Limit   int
	MaxAge  time.Duration
	Country string
	// Delay is the politeness pause between successive query iterations.
	Delay time.Duration
}

// Collector issues each query to every board, strictly in sequence.
type Collector struct {
	boards  []Board
	cfg     Config
	limiter *rate.Limiter
}

// NewCollector builds a Collector over the given boards.
func NewCollector(boards []Board, cfg Config) *Collector {
	var limiter *rate.Limiter
	if cfg.Delay > 0 {
		// Burst 1: the first query proceeds immediately, later ones are
		// spaced by the configured delay.
		limiter = rate.NewLimiter(rate.Every(cfg.Delay), 1)
	}

	return &Collector{
		boards:  boards,
		cfg:     cfg,
		limiter: limiter,
	}
}

// Collect runs every query in order and concatenates the per-query results.
// A failed query is logged and skipped; it never aborts the remaining
// queries. When everything fails the result is simply empty.
func (c *Collector) Collect(ctx context.Context, queries []types.SearchQuery) []types.Listing {
	var combined []types.Listing

	for i, q := range queries {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				log.Printf("[SCRAPE] aborted while pacing queries: %v", err)
				break
			}
		}

		listings, err := c.collectOne(ctx, q)
		if err != nil {
			log.Printf("[SCRAPE] query %d/%d %q failed, skipping: %v", i+1, len(queries), q.String(), err)
			continue
		}

		log.Printf("[SCRAPE] query %d/%d %q returned %d listings", i+1, len(queries), q.String(), len(listings))
		combined = append(combined, listings...)
	}

	return combined
}

// collectOne fans a single query across the boards in order. A board failure
// is logged and skipped; the query fails only when every board does. Apply
// links are normalized here, and listings without one are dropped because
// they cannot be deduplicated downstream.
func (c *Collector) collectOne(ctx context.Context, q types.SearchQuery) ([]types.Listing, error) {
	req := Request{
		Role:     q.Role,
		Location: q.Location,
		Limit:    c.cfg.Limit,
		MaxAge:   c.cfg.MaxAge,
		Country:  c.cfg.Country,
	}

	var out []types.Listing
	okBoards := 0
	var lastErr error

	for _, b := range c.boards {
		listings, err := b.Search(ctx, req)
		if err != nil {
			lastErr = err
			log.Printf("[SCRAPE] board %s failed for %q: %v", b.Name(), q.String(), err)
			continue
		}
		okBoards++

		for i := range listings {
			listings[i].NormalizeApplyLink()
			if listings[i].ApplyLink == "" {
				continue
			}
			out = append(out, listings[i])
		}
	}

	if okBoards == 0 {
		return nil, &QueryError{Query: q.String(), Cause: lastErr}
	}

	return out, nil
}
