package sheets

import (
	"context"
	"log"
	"time"

	"github.com/surya/job-search-agent/internal/retry"
	"github.com/surya/job-search-agent/internal/types"
)

const (
	// DefaultConnectAttempts bounds the open-or-create retry loop.
	DefaultConnectAttempts = 3
	// DefaultConnectDelay is the fixed pause between connect attempts.
	DefaultConnectDelay = 5 * time.Second

	// appliedDefault is the initial tracking value for a freshly appended row.
	appliedDefault = "FALSE"
)

// Config fixes the writer's connect retry policy.
type Config struct {
	ConnectAttempts int
	ConnectDelay    time.Duration
}

// Writer merges scraped listings into the persistent job table: it opens the
// store with bounded retries, writes the header on a fresh table, drops
// listings whose apply link is already present, and appends the survivors in
// one bulk call. Formatting is cosmetic and never changes the outcome.
type Writer struct {
	store     Store
	formatter Formatter
	cfg       Config
}

// NewWriter builds a Writer. A nil formatter disables cosmetics; zero config
// fields fall back to the defaults.
func NewWriter(store Store, formatter Formatter, cfg Config) *Writer {
	if formatter == nil {
		formatter = NoopFormatter{}
	}
	if cfg.ConnectAttempts < 1 {
		cfg.ConnectAttempts = DefaultConnectAttempts
	}
	if cfg.ConnectDelay <= 0 {
		cfg.ConnectDelay = DefaultConnectDelay
	}

	return &Writer{
		store:     store,
		formatter: formatter,
		cfg:       cfg,
	}
}

// Persist writes the listings to the table and reports the outcome. The
// returned error is non-nil exactly when the outcome is a failure; Skipped,
// Written and Deduplicated are normal completions.
func (w *Writer) Persist(ctx context.Context, listings []types.Listing) (Result, error) {
	if len(listings) == 0 {
		log.Printf("[SHEETS] no listings to save")
		return Result{Outcome: OutcomeSkipped}, nil
	}

	attempts, err := retry.Do(ctx, w.cfg.ConnectAttempts, w.cfg.ConnectDelay, w.store.Open)
	if err != nil {
		connErr := &ConnectError{Attempts: attempts, Cause: err}
		log.Printf("[SHEETS] %v", connErr)
		return Result{Outcome: OutcomeConnectFailed, ConnectAttempts: attempts}, connErr
	}

	rows, err := w.store.Rows(ctx)
	if err != nil {
		readErr := &ReadError{Cause: err}
		log.Printf("[SHEETS] %v", readErr)
		return Result{Outcome: OutcomeReadFailed, ConnectAttempts: attempts}, readErr
	}

	if len(rows) == 0 {
		header := headerRow()
		if err := w.store.Append(ctx, [][]string{header}); err != nil {
			writeErr := &WriteError{Message: "header append", Cause: err}
			log.Printf("[SHEETS] %v", writeErr)
			return Result{Outcome: OutcomeWriteFailed, ConnectAttempts: attempts}, writeErr
		}
		rows = [][]string{header}

		if err := w.formatter.BoldHeader(ctx); err != nil {
			log.Printf("[SHEETS] header bolding skipped: %v", err)
		}
		if err := w.formatter.FreezeHeader(ctx); err != nil {
			log.Printf("[SHEETS] header freeze skipped: %v", err)
		}
	}

	seen := existingLinks(rows)
	fresh := make([][]string, 0, len(listings))
	dropped := 0
	for _, l := range listings {
		if _, ok := seen[l.ApplyLink]; ok {
			dropped++
			continue
		}
		// The apply link is the table's uniqueness key, so repeats inside
		// one batch are dropped too.
		seen[l.ApplyLink] = struct{}{}
		fresh = append(fresh, append(l.Row(), appliedDefault))
	}

	if len(fresh) == 0 {
		log.Printf("[SHEETS] all %d listings already present", dropped)
		return Result{Outcome: OutcomeDeduplicated, Deduplicated: dropped, ConnectAttempts: attempts}, nil
	}

	if err := w.store.Append(ctx, fresh); err != nil {
		writeErr := &WriteError{Message: "row append", Cause: err}
		log.Printf("[SHEETS] %v", writeErr)
		return Result{Outcome: OutcomeWriteFailed, Deduplicated: dropped, ConnectAttempts: attempts}, writeErr
	}
	log.Printf("[SHEETS] appended %d new listings, dropped %d duplicates", len(fresh), dropped)

	firstRow := len(rows) + 1
	lastRow := len(rows) + len(fresh)
	if err := w.formatter.Checkboxes(ctx, firstRow, lastRow); err != nil {
		log.Printf("[SHEETS] checkbox validation skipped: %v", err)
	}

	return Result{
		Outcome:         OutcomeWritten,
		Appended:        len(fresh),
		Deduplicated:    dropped,
		ConnectAttempts: attempts,
	}, nil
}

// headerRow is the column names plus the trailing tracking column.
func headerRow() []string {
	header := make([]string, 0, len(types.SheetColumns)+1)
	header = append(header, types.SheetColumns...)
	return append(header, types.AppliedColumn)
}

// existingLinks collects the apply-link cell from every data row. Short rows
// without an apply-link cell are ignored.
func existingLinks(rows [][]string) map[string]struct{} {
	seen := make(map[string]struct{})
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) > types.ApplyLinkColumn {
			seen[row[types.ApplyLinkColumn]] = struct{}{}
		}
	}
	return seen
}
