package sheets

// Outcome is the terminal state of one persist run.
type Outcome string

const (
	// OutcomeSkipped means the input was empty and no store call was made.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeWritten means new rows were appended.
	OutcomeWritten Outcome = "written"
	// OutcomeDeduplicated means every incoming listing was already present.
	OutcomeDeduplicated Outcome = "deduplicated"
	// OutcomeConnectFailed means the store could not be opened after retries.
	OutcomeConnectFailed Outcome = "connect_failed"
	// OutcomeReadFailed means existing rows could not be read.
	OutcomeReadFailed Outcome = "read_failed"
	// OutcomeWriteFailed means a header or row append failed.
	OutcomeWriteFailed Outcome = "write_failed"
)

// Failed reports whether the outcome aborted the run.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeConnectFailed, OutcomeReadFailed, OutcomeWriteFailed:
		return true
	}
	return false
}

// Result reports what one persist run did.
type Result struct {
	Outcome Outcome
	// Appended is the number of data rows written, excluding any header.
	Appended int
	// Deduplicated is the number of incoming listings dropped as already
	// present.
	Deduplicated int
	// ConnectAttempts is how many times the store open was tried.
	ConnectAttempts int
}
