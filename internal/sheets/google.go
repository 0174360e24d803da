package sheets

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/surya/job-search-agent/internal/types"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// GoogleConfig locates the spreadsheet and the service-account credentials
// used to reach it.
type GoogleConfig struct {
	CredentialsFile string
	SpreadsheetName string
	// ShareWith, when set, grants this account writer access to a newly
	// created spreadsheet. Without it a service-account-owned sheet is
	// invisible to the human running the pipeline.
	ShareWith string
}

// GoogleStore persists the job table in the first sheet of a Google
// spreadsheet, located by name and created lazily when absent. It also
// implements Formatter via the spreadsheet batch-update API.
type GoogleStore struct {
	cfg GoogleConfig

	svc      *sheetsapi.Service
	driveSvc *drive.Service

	spreadsheetID string
	sheetID       int64
	sheetTitle    string
}

// NewGoogleStore builds the store; no network call is made until Open.
func NewGoogleStore(cfg GoogleConfig) *GoogleStore {
	return &GoogleStore{cfg: cfg}
}

// Open authenticates with the credentials file, locates the spreadsheet by
// name and creates it when missing. Safe to call repeatedly; the writer
// retries it on failure.
func (s *GoogleStore) Open(ctx context.Context) error {
	if s.svc == nil {
		svc, err := sheetsapi.NewService(ctx,
			option.WithCredentialsFile(s.cfg.CredentialsFile),
			option.WithScopes(sheetsapi.SpreadsheetsScope, drive.DriveScope),
		)
		if err != nil {
			return fmt.Errorf("sheets service: %w", err)
		}
		driveSvc, err := drive.NewService(ctx,
			option.WithCredentialsFile(s.cfg.CredentialsFile),
			option.WithScopes(drive.DriveScope),
		)
		if err != nil {
			return fmt.Errorf("drive service: %w", err)
		}
		s.svc = svc
		s.driveSvc = driveSvc
	}

	id, err := s.findSpreadsheet(ctx)
	if err != nil {
		return err
	}
	if id == "" {
		id, err = s.createSpreadsheet(ctx)
		if err != nil {
			return err
		}
		log.Printf("[SHEETS] spreadsheet %q not found, created %s", s.cfg.SpreadsheetName, id)
	}
	s.spreadsheetID = id

	return s.loadFirstSheet(ctx)
}

// findSpreadsheet resolves the spreadsheet name to a file ID via the Drive
// API, or "" when no such spreadsheet exists.
func (s *GoogleStore) findSpreadsheet(ctx context.Context) (string, error) {
	name := strings.ReplaceAll(s.cfg.SpreadsheetName, `'`, `\'`)
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", name, spreadsheetMimeType)

	list, err := s.driveSvc.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("spreadsheet lookup: %w", err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}

func (s *GoogleStore) createSpreadsheet(ctx context.Context) (string, error) {
	created, err := s.svc.Spreadsheets.Create(&sheetsapi.Spreadsheet{
		Properties: &sheetsapi.SpreadsheetProperties{Title: s.cfg.SpreadsheetName},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("spreadsheet create: %w", err)
	}

	if s.cfg.ShareWith != "" {
		_, err := s.driveSvc.Permissions.Create(created.SpreadsheetId, &drive.Permission{
			Type:         "user",
			Role:         "writer",
			EmailAddress: s.cfg.ShareWith,
		}).Context(ctx).Do()
		if err != nil {
			log.Printf("[SHEETS] could not share %s with %s: %v", created.SpreadsheetId, s.cfg.ShareWith, err)
		}
	}

	return created.SpreadsheetId, nil
}

// loadFirstSheet records the first sheet's ID and title; the title scopes
// value reads and appends, the ID scopes formatting requests.
func (s *GoogleStore) loadFirstSheet(ctx context.Context) error {
	ss, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets(properties(sheetId,title))").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("spreadsheet open: %w", err)
	}
	if len(ss.Sheets) == 0 {
		return fmt.Errorf("spreadsheet %s has no sheets", s.spreadsheetID)
	}

	props := ss.Sheets[0].Properties
	s.sheetID = props.SheetId
	s.sheetTitle = props.Title
	return nil
}

// Rows reads the whole table. Cells come back typed from the API and are
// coerced to text.
func (s *GoogleStore) Rows(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetTitle).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("values read: %w", err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append bulk-appends rows after the table's last row.
func (s *GoogleStore) Append(ctx context.Context, rows [][]string) error {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		values = append(values, cells)
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.sheetTitle, &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("values append: %w", err)
	}
	return nil
}

// BoldHeader bolds the header row.
func (s *GoogleStore) BoldHeader(ctx context.Context) error {
	return s.batchUpdate(ctx, &sheetsapi.Request{
		RepeatCell: &sheetsapi.RepeatCellRequest{
			Range: &sheetsapi.GridRange{
				SheetId:       s.sheetID,
				StartRowIndex: 0,
				EndRowIndex:   1,
			},
			Cell: &sheetsapi.CellData{
				UserEnteredFormat: &sheetsapi.CellFormat{
					TextFormat: &sheetsapi.TextFormat{Bold: true},
				},
			},
			Fields: "userEnteredFormat.textFormat.bold",
		},
	})
}

// FreezeHeader pins the header row while scrolling.
func (s *GoogleStore) FreezeHeader(ctx context.Context) error {
	return s.batchUpdate(ctx, &sheetsapi.Request{
		UpdateSheetProperties: &sheetsapi.UpdateSheetPropertiesRequest{
			Properties: &sheetsapi.SheetProperties{
				SheetId:        s.sheetID,
				GridProperties: &sheetsapi.GridProperties{FrozenRowCount: 1},
			},
			Fields: "gridProperties.frozenRowCount",
		},
	})
}

// Checkboxes renders the tracking column of the given row range as
// checkboxes via a boolean validation rule.
func (s *GoogleStore) Checkboxes(ctx context.Context, firstRow, lastRow int) error {
	col := int64(len(types.SheetColumns))
	return s.batchUpdate(ctx, &sheetsapi.Request{
		SetDataValidation: &sheetsapi.SetDataValidationRequest{
			Range: &sheetsapi.GridRange{
				SheetId:          s.sheetID,
				StartRowIndex:    int64(firstRow - 1),
				EndRowIndex:      int64(lastRow),
				StartColumnIndex: col,
				EndColumnIndex:   col + 1,
			},
			Rule: &sheetsapi.DataValidationRule{
				Condition:    &sheetsapi.BooleanCondition{Type: "BOOLEAN"},
				ShowCustomUi: true,
			},
		},
	})
}

func (s *GoogleStore) batchUpdate(ctx context.Context, reqs ...*sheetsapi.Request) error {
	_, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	return err
}
