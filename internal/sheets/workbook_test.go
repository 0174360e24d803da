package sheets

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surya/job-search-agent/internal/types"
)

func TestWorkbookStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	store := NewWorkbookStore(path)
	ctx := context.Background()

	require.NoError(t, store.Open(ctx))

	rows, err := store.Rows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows, "a freshly created workbook has no rows")

	require.NoError(t, store.Append(ctx, [][]string{headerRow()}))
	require.NoError(t, store.Append(ctx, [][]string{
		{"linkedin", "Data Scientist", "Acme", "India", "2026-08-24", "https://example.com/a", "FALSE"},
	}))

	rows, err = store.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, headerRow(), rows[0])
	assert.Equal(t, "https://example.com/a", rows[1][types.ApplyLinkColumn])

	require.NoError(t, store.Close())

	reopened := NewWorkbookStore(path)
	require.NoError(t, reopened.Open(ctx))
	rows, err = reopened.Rows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "rows survive a close and reopen")
	require.NoError(t, reopened.Close())
}

func TestWorkbookStore_OpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	store := NewWorkbookStore(path)
	ctx := context.Background()

	require.NoError(t, store.Open(ctx))
	require.NoError(t, store.Open(ctx))
	require.NoError(t, store.Close())
}

func TestWorkbookStore_FormattingDoesNotBreakRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	store := NewWorkbookStore(path)
	ctx := context.Background()

	require.NoError(t, store.Open(ctx))
	require.NoError(t, store.Append(ctx, [][]string{headerRow()}))

	require.NoError(t, store.BoldHeader(ctx))
	require.NoError(t, store.FreezeHeader(ctx))
	require.NoError(t, store.Checkboxes(ctx, 2, 4))

	rows, err := store.Rows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	require.NoError(t, store.Close())
}

func TestWriter_PersistIntoWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	store := NewWorkbookStore(path)
	defer func() { _ = store.Close() }()

	w := NewWriter(store, store, Config{ConnectAttempts: 1, ConnectDelay: time.Millisecond})

	res, err := w.Persist(context.Background(), []types.Listing{
		jobListing("Data Scientist", "https://example.com/a"),
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeWritten, res.Outcome)
	assert.Equal(t, 1, res.Appended)

	rows, err := store.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "FALSE", rows[1][len(types.SheetColumns)])
}
