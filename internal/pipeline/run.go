// Package pipeline provides the high-level orchestration for the job search process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/surya/job-search-agent/internal/filter"
	"github.com/surya/job-search-agent/internal/observability"
	"github.com/surya/job-search-agent/internal/sheets"
	"github.com/surya/job-search-agent/internal/types"
)

// QuerySource produces the search queries for one run. It never fails; a
// generation problem degrades to the fallback list inside the source.
type QuerySource interface {
	Generate(ctx context.Context) []types.SearchQuery
}

// Collector gathers listings for the queries, skipping failed ones.
type Collector interface {
	Collect(ctx context.Context, queries []types.SearchQuery) []types.Listing
}

// Persister writes the filtered listings to the job table.
type Persister interface {
	Persist(ctx context.Context, listings []types.Listing) (sheets.Result, error)
}

// RunOptions holds the collaborators and settings for running the pipeline.
type RunOptions struct {
	Queries   QuerySource
	Collector Collector
	Filter    *filter.Filter
	Writer    Persister
	Verbose   bool
}

// RunPipeline orchestrates the full job search pipeline: queries, scraping,
// seniority filtering, persistence. The steps run strictly in sequence; the
// returned result is the persist outcome for the run.
func RunPipeline(ctx context.Context, opts RunOptions) (sheets.Result, error) {
	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("Step 1/4: Generating search queries from resume...\n")
	searchQueries := opts.Queries.Generate(ctx)
	fmt.Printf("Generated %d queries\n", len(searchQueries))
	if opts.Verbose {
		printer.PrintQueries(searchQueries)
	}

	fmt.Printf("Step 2/4: Scraping job boards...\n")
	listings := opts.Collector.Collect(ctx, searchQueries)
	fmt.Printf("Collected %d listings\n", len(listings))

	fmt.Printf("Step 3/4: Filtering out senior roles...\n")
	kept, removed := opts.Filter.Apply(listings)
	fmt.Printf("Removed %d senior listings, %d remain\n", removed, len(kept))
	if opts.Verbose {
		printer.PrintListings(kept, removed)
	}

	fmt.Printf("Step 4/4: Saving to spreadsheet...\n")
	result, err := opts.Writer.Persist(ctx, kept)
	if err != nil {
		return result, fmt.Errorf("saving listings failed: %w", err)
	}
	fmt.Printf("Run finished: %s\n", result.Outcome)
	if opts.Verbose {
		printer.PrintRunSummary(result)
	}

	return result, nil
}
