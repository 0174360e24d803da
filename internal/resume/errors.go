package resume

import "fmt"

// ExtractionError represents a failure producing text from the résumé file
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
