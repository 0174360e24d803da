package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"resume_file": "cv.pdf",
		"sheet_name": "My_Jobs",
		"store": "workbook",
		"results_wanted": 10,
		"use_browser": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "cv.pdf", cfg.ResumeFile)
	assert.Equal(t, "My_Jobs", cfg.SheetName)
	assert.Equal(t, StoreWorkbook, cfg.Store)
	assert.Equal(t, 10, cfg.ResultsWanted)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownStore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store = "postgres"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestValidate_UnknownBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Boards = []string{"linkedin", "monster"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestValidate_MissingSheetName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SheetName = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SheetName")
}

func TestValidate_MissingCredentialsForGoogleStore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CredentialsFile = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials_file")
}

func TestValidate_MissingWorkbookFileForWorkbookStore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store = StoreWorkbook
	cfg.WorkbookFile = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workbook_file")
}

func TestValidate_BadShareWith(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShareWith = "not-an-email"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestValidate_NegativeResultsWanted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResultsWanted = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		SheetName:     "Custom_Sheet",
		ResultsWanted: 10,
	}

	merged := cfg.MergeWithDefaults(DefaultConfig())

	// Explicit values survive the merge.
	assert.Equal(t, "Custom_Sheet", merged.SheetName)
	assert.Equal(t, 10, merged.ResultsWanted)

	// Everything else picks up the default.
	assert.Equal(t, "Surya_Prakash_Baid.pdf", merged.ResumeFile)
	assert.Equal(t, StoreGoogle, merged.Store)
	assert.Equal(t, "credentials.json", merged.CredentialsFile)
	assert.Equal(t, []string{"linkedin", "indeed"}, merged.Boards)
	assert.Equal(t, 72, merged.HoursOld)
	assert.Equal(t, "India", merged.Country)
	assert.Equal(t, 3, merged.ConnectAttempts)

	// Bools are never merged.
	assert.False(t, merged.UseBrowser)
	assert.False(t, merged.NoFormatting)
}

func TestMergeWithDefaults_DoesNotShareBoardSlice(t *testing.T) {
	defaults := DefaultConfig()
	empty := Config{}
	merged := empty.MergeWithDefaults(defaults)

	merged.Boards[0] = "changed"
	assert.Equal(t, "linkedin", defaults.Boards[0])
}

func TestDurationAccessors(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2*time.Second, cfg.ScrapeDelay())
	assert.Equal(t, 72*time.Hour, cfg.MaxListingAge())
	assert.Equal(t, 5*time.Second, cfg.ConnectDelay())
}
