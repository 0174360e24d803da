// Package filter removes senior-level postings from scraped job listings.
package filter

import (
	"regexp"
	"strings"

	"github.com/surya/job-search-agent/internal/types"
)

// DefaultSeniorityKeywords are the title words that mark a posting as aimed
// at experienced or leadership candidates. Matched whole-word and
// case-insensitively.
var DefaultSeniorityKeywords = []string{
	"senior",
	"lead",
	"manager",
	"principal",
	"architect",
	"head",
	"director",
	"vp",
}

// yearsPattern matches explicit experience thresholds of five or more years,
// e.g. "5+ years" or "12+ Years".
var yearsPattern = regexp.MustCompile(`(?i)\b([5-9]|[1-9][0-9]+)\+\s*years?\b`)

// Filter rejects listings whose titles carry seniority signals.
type Filter struct {
	patterns []*regexp.Regexp
}

// New compiles a Filter from the given keyword list. Keywords match as whole
// words, case-insensitively; the numeric experience-threshold pattern is
// always included. An empty list falls back to DefaultSeniorityKeywords.
func New(keywords []string) *Filter {
	if len(keywords) == 0 {
		keywords = DefaultSeniorityKeywords
	}

	patterns := make([]*regexp.Regexp, 0, len(keywords)+1)
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	patterns = append(patterns, yearsPattern)

	return &Filter{patterns: patterns}
}

// Apply returns the listings whose titles carry no seniority signal,
// preserving input order, together with the number removed. Listings with a
// missing or empty title are kept.
func (f *Filter) Apply(listings []types.Listing) ([]types.Listing, int) {
	kept := make([]types.Listing, 0, len(listings))
	for _, l := range listings {
		if f.Matches(l.Title) {
			continue
		}
		kept = append(kept, l)
	}
	return kept, len(listings) - len(kept)
}

// Matches reports whether a title carries any seniority signal. Empty titles
// never match.
func (f *Filter) Matches(title string) bool {
	if strings.TrimSpace(title) == "" {
		return false
	}
	for _, p := range f.patterns {
		if p.MatchString(title) {
			return true
		}
	}
	return false
}
