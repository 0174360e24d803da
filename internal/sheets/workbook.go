package sheets

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/surya/job-search-agent/internal/types"
)

// defaultWorkbookSheet is the sheet name used in a freshly created workbook.
const defaultWorkbookSheet = "Jobs"

// WorkbookStore persists the job table in a local .xlsx workbook. It is the
// credential-free counterpart of GoogleStore for offline runs and implements
// Formatter with the closest workbook equivalents.
type WorkbookStore struct {
	path  string
	sheet string
	file  *excelize.File
}

// NewWorkbookStore builds the store; the file is touched only by Open.
func NewWorkbookStore(path string) *WorkbookStore {
	return &WorkbookStore{path: path}
}

// Open loads the workbook, creating it with a single empty sheet when the
// file does not exist yet.
func (s *WorkbookStore) Open(_ context.Context) error {
	if s.file != nil {
		return nil
	}

	if _, err := os.Stat(s.path); err == nil {
		f, err := excelize.OpenFile(s.path)
		if err != nil {
			return fmt.Errorf("workbook open: %w", err)
		}
		s.file = f
		s.sheet = f.GetSheetList()[0]
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("workbook stat: %w", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetList()[0], defaultWorkbookSheet); err != nil {
		_ = f.Close()
		return fmt.Errorf("workbook init: %w", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		_ = f.Close()
		return fmt.Errorf("workbook create: %w", err)
	}
	log.Printf("[SHEETS] workbook %s not found, created it", s.path)

	s.file = f
	s.sheet = defaultWorkbookSheet
	return nil
}

// Rows reads the whole table. Trailing empty cells are absent, which the
// dedup logic tolerates.
func (s *WorkbookStore) Rows(_ context.Context) ([][]string, error) {
	rows, err := s.file.GetRows(s.sheet)
	if err != nil {
		return nil, fmt.Errorf("workbook read: %w", err)
	}
	return rows, nil
}

// Append writes rows after the current last row and saves the file.
func (s *WorkbookStore) Append(_ context.Context, rows [][]string) error {
	existing, err := s.file.GetRows(s.sheet)
	if err != nil {
		return fmt.Errorf("workbook read: %w", err)
	}

	start := len(existing) + 1
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, start+i)
			if err != nil {
				return fmt.Errorf("workbook append: %w", err)
			}
			if err := s.file.SetCellValue(s.sheet, name, cell); err != nil {
				return fmt.Errorf("workbook append: %w", err)
			}
		}
	}

	if err := s.file.Save(); err != nil {
		return fmt.Errorf("workbook save: %w", err)
	}
	return nil
}

// BoldHeader bolds the header row.
func (s *WorkbookStore) BoldHeader(_ context.Context) error {
	style, err := s.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("workbook style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(types.SheetColumns)+1, 1)
	if err != nil {
		return err
	}
	if err := s.file.SetCellStyle(s.sheet, "A1", last, style); err != nil {
		return fmt.Errorf("workbook style: %w", err)
	}
	return s.file.Save()
}

// FreezeHeader pins the header row while scrolling.
func (s *WorkbookStore) FreezeHeader(_ context.Context) error {
	err := s.file.SetPanes(s.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("workbook freeze: %w", err)
	}
	return s.file.Save()
}

// Checkboxes approximates checkboxes with a TRUE/FALSE drop list; xlsx has
// no native checkbox cell.
func (s *WorkbookStore) Checkboxes(_ context.Context, firstRow, lastRow int) error {
	col, err := excelize.ColumnNumberToName(len(types.SheetColumns) + 1)
	if err != nil {
		return err
	}

	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s%d:%s%d", col, firstRow, col, lastRow)
	if err := dv.SetDropList([]string{"TRUE", "FALSE"}); err != nil {
		return fmt.Errorf("workbook validation: %w", err)
	}
	if err := s.file.AddDataValidation(s.sheet, dv); err != nil {
		return fmt.Errorf("workbook validation: %w", err)
	}
	return s.file.Save()
}

// Close releases the open workbook file.
func (s *WorkbookStore) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
