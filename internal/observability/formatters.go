// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/surya/job-search-agent/internal/sheets"
	"github.com/surya/job-search-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQueries outputs the search queries the pipeline will scrape.
func (p *Printer) PrintQueries(queries []types.SearchQuery) {
	if len(queries) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range queries {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.String()))
	}

	p.printBox("SEARCH QUERIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintListings outputs the listings that survived the seniority filter,
// with a per-board breakdown and a sample of titles.
func (p *Printer) PrintListings(listings []types.Listing, removed int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Kept %d listings (%d senior roles removed)\n", len(listings), removed))

	if len(listings) > 0 {
		bySite := make(map[string]int)
		for _, l := range listings {
			bySite[l.Site]++
		}
		sites := make([]string, 0, len(bySite))
		for site := range bySite {
			sites = append(sites, site)
		}
		sort.Strings(sites)

		parts := make([]string, 0, len(sites))
		for _, site := range sites {
			parts = append(parts, fmt.Sprintf("%s: %d", site, bySite[site]))
		}
		sb.WriteString(fmt.Sprintf("By site:  %s\n\n", strings.Join(parts, ", ")))

		count := min(len(listings), maxItemsToShow)
		for i := 0; i < count; i++ {
			title := listings[i].Title
			if len(title) > 50 {
				title = title[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("• %s\n", title))
		}
		if len(listings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(listings)-maxItemsToShow))
		}
	}

	p.printBox("FILTERED LISTINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs the persist outcome for the run.
func (p *Printer) PrintRunSummary(res sheets.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Outcome:     %s\n", res.Outcome))
	sb.WriteString(fmt.Sprintf("Appended:    %d\n", res.Appended))
	sb.WriteString(fmt.Sprintf("Duplicates:  %d\n", res.Deduplicated))
	if res.ConnectAttempts > 0 {
		sb.WriteString(fmt.Sprintf("Connects:    %d attempt(s)\n", res.ConnectAttempts))
	}

	p.printBox("RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
