// Package sheets persists job listings into a spreadsheet-shaped table,
// deduplicating against rows already present and applying optional cosmetic
// formatting that never affects the write outcome.
package sheets

import "context"

// Store is the persistent job table. Implementations back it with a Google
// spreadsheet or a local workbook file.
type Store interface {
	// Open authenticates and locates the named table, creating it when
	// absent. It is the only call the writer retries.
	Open(ctx context.Context) error
	// Rows returns every row currently in the table, header included, in
	// table order.
	Rows(ctx context.Context) ([][]string, error)
	// Append adds rows to the end of the table in one bulk call.
	Append(ctx context.Context, rows [][]string) error
}

// Formatter applies cosmetic presentation to the table. Every method may
// fail freely; callers log the failure and carry on.
type Formatter interface {
	BoldHeader(ctx context.Context) error
	FreezeHeader(ctx context.Context) error
	// Checkboxes applies a checkbox-style validation rule to the tracking
	// column over the given 1-based row range, inclusive.
	Checkboxes(ctx context.Context, firstRow, lastRow int) error
}

// NoopFormatter is the Formatter used when cosmetics are disabled or the
// backend cannot provide them.
type NoopFormatter struct{}

func (NoopFormatter) BoldHeader(context.Context) error { return nil }

func (NoopFormatter) FreezeHeader(context.Context) error { return nil }

func (NoopFormatter) Checkboxes(context.Context, int, int) error { return nil }
