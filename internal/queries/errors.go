package queries

import "fmt"

// GenerationError represents any failure on the path from résumé text to a
// parsed query list. Every instance is recovered via the fallback list.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("query generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("query generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
