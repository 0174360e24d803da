package scrape

import "fmt"

// QueryError represents a search query for which every board attempt failed
type QueryError struct {
	Query string
	Cause error
}

func (e *QueryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("all boards failed for query %q: %v", e.Query, e.Cause)
	}
	return fmt.Sprintf("all boards failed for query %q", e.Query)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}
