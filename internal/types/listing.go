// Package types provides type definitions for the records that flow through the job-search pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SheetColumns is the header row of the job table, in write order. The sheet
// writer appends AppliedColumn after these.
var SheetColumns = []string{"site", "title", "company", "location", "date_posted", "apply_link"}

// AppliedColumn is the manually-maintained tracking column that trails SheetColumns.
const AppliedColumn = "Applied?"

// ApplyLinkColumn is the 0-based ordinal of apply_link within SheetColumns.
// It is the deduplication key position and must stay stable across runs.
const ApplyLinkColumn = 5

// Listing represents one scraped job posting.
type Listing struct {
	Site         string `json:"site"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	DatePosted   string `json:"date_posted,omitempty"`
	JobURL       string `json:"job_url"`
	JobURLDirect string `json:"job_url_direct,omitempty"`
	ApplyLink    string `json:"apply_link"`
}

// NormalizeApplyLink derives the canonical application URL: the direct apply
// URL when the board exposes one, otherwise the board's listing URL.
func (l *Listing) NormalizeApplyLink() {
	if l.JobURLDirect != "" {
		l.ApplyLink = l.JobURLDirect
		return
	}
	l.ApplyLink = l.JobURL
}

// Row coerces the listing to its sheet representation, one text cell per
// SheetColumns entry.
func (l Listing) Row() []string {
	return []string{l.Site, l.Title, l.Company, l.Location, l.DatePosted, l.ApplyLink}
}
