package sheets

import "fmt"

// ConnectError represents failure to open the spreadsheet after every retry.
type ConnectError struct {
	Attempts int
	Cause    error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("spreadsheet connect failed after %d attempt(s): %v", e.Attempts, e.Cause)
}

func (e *ConnectError) Unwrap() error {
	return e.Cause
}

// ReadError represents failure to read the existing table rows.
type ReadError struct {
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("spreadsheet read failed: %v", e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failed header or data append.
type WriteError struct {
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("spreadsheet write failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("spreadsheet write failed: %s", e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
