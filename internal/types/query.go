// Package types provides type definitions for the records that flow through the job-search pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// QuerySeparator splits the role and location halves of a raw query entry.
const QuerySeparator = "|"

// SearchQuery represents one "Role | Location" search term issued to the job boards.
type SearchQuery struct {
	Role     string `json:"role"`
	Location string `json:"location"`
}

// ParseSearchQuery parses a raw "Role | Location" entry into a SearchQuery.
// Splitting on the separator must yield exactly two non-empty trimmed fields;
// anything else is rejected so the caller can drop that entry alone.
func ParseSearchQuery(raw string) (SearchQuery, error) {
	parts := strings.Split(raw, QuerySeparator)
	if len(parts) != 2 {
		return SearchQuery{}, fmt.Errorf("malformed query %q: want exactly one %q separator", raw, QuerySeparator)
	}

	role := strings.TrimSpace(parts[0])
	location := strings.TrimSpace(parts[1])
	if role == "" || location == "" {
		return SearchQuery{}, fmt.Errorf("malformed query %q: empty role or location", raw)
	}

	return SearchQuery{Role: role, Location: location}, nil
}

// String returns the canonical "Role | Location" form.
func (q SearchQuery) String() string {
	return q.Role + " " + QuerySeparator + " " + q.Location
}
