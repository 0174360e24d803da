// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Store backends for the job table.
const (
	StoreGoogle   = "google"
	StoreWorkbook = "workbook"
)

// Config represents the pipeline configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags. Components receive the merged config by value and
// never mutate it.
type Config struct {
	// Inputs.
	ResumeFile string `json:"resume_file,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Location   string `json:"location,omitempty"`

	// Store selection. CredentialsFile backs the google store, WorkbookFile
	// the workbook store. ShareWith grants that account access to a
	// spreadsheet the google store creates.
	SheetName       string `json:"sheet_name,omitempty" validate:"required"`
	Store           string `json:"store,omitempty" validate:"required,oneof=google workbook"`
	CredentialsFile string `json:"credentials_file,omitempty"`
	WorkbookFile    string `json:"workbook_file,omitempty"`
	ShareWith       string `json:"share_with,omitempty" validate:"omitempty,email"`

	// Scraping.
	Boards             []string `json:"boards,omitempty" validate:"required,min=1,dive,oneof=linkedin indeed"`
	ResultsWanted      int      `json:"results_wanted,omitempty" validate:"min=1,max=25"`
	HoursOld           int      `json:"hours_old,omitempty" validate:"min=1"`
	Country            string   `json:"country,omitempty"`
	ScrapeDelaySeconds int      `json:"scrape_delay_seconds,omitempty" validate:"min=0"`
	UseBrowser         bool     `json:"use_browser,omitempty"`

	// SeniorityKeywords overrides the built-in senior-title word list when set.
	SeniorityKeywords []string `json:"seniority_keywords,omitempty"`

	// Writer retry policy and cosmetics.
	ConnectAttempts     int  `json:"connect_attempts,omitempty" validate:"min=1,max=10"`
	ConnectDelaySeconds int  `json:"connect_delay_seconds,omitempty" validate:"min=0"`
	NoFormatting        bool `json:"no_formatting,omitempty"`

	// Behavior.
	APIKey  string `json:"api_key,omitempty"`
	Verbose bool   `json:"verbose,omitempty"`
}

// DefaultConfig returns the stock configuration for a daily India-focused
// fresher job hunt.
func DefaultConfig() Config {
	return Config{
		ResumeFile:          "Surya_Prakash_Baid.pdf",
		Skills:              "Generative AI, Data Science, Python, Computer Vision, Deep Learning",
		Location:            "India (Remote or On-site)",
		SheetName:           "Daily_Job_Hunt",
		Store:               StoreGoogle,
		CredentialsFile:     "credentials.json",
		WorkbookFile:        "Daily_Job_Hunt.xlsx",
		Boards:              []string{"linkedin", "indeed"},
		ResultsWanted:       5,
		HoursOld:            72,
		Country:             "India",
		ScrapeDelaySeconds:  2,
		ConnectAttempts:     3,
		ConnectDelaySeconds: 5,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration using the validator, plus the
// cross-field rules tags cannot express. Call it after defaults are merged;
// required fields are expected to be filled by then.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: field %q fails %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Store == StoreGoogle && c.CredentialsFile == "" {
		return fmt.Errorf("config error: 'credentials_file' is required for the google store")
	}
	if c.Store == StoreWorkbook && c.WorkbookFile == "" {
		return fmt.Errorf("config error: 'workbook_file' is required for the workbook store")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ResumeFile == "" {
		result.ResumeFile = defaults.ResumeFile
	}
	if result.Skills == "" {
		result.Skills = defaults.Skills
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.SheetName == "" {
		result.SheetName = defaults.SheetName
	}
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.CredentialsFile == "" {
		result.CredentialsFile = defaults.CredentialsFile
	}
	if result.WorkbookFile == "" {
		result.WorkbookFile = defaults.WorkbookFile
	}
	if result.ShareWith == "" {
		result.ShareWith = defaults.ShareWith
	}
	if result.Country == "" {
		result.Country = defaults.Country
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Slice fields: use default if empty
	if len(result.Boards) == 0 {
		result.Boards = append([]string(nil), defaults.Boards...)
	}
	if len(result.SeniorityKeywords) == 0 {
		result.SeniorityKeywords = append([]string(nil), defaults.SeniorityKeywords...)
	}

	// Int fields: use default if zero
	if result.ResultsWanted == 0 {
		result.ResultsWanted = defaults.ResultsWanted
	}
	if result.HoursOld == 0 {
		result.HoursOld = defaults.HoursOld
	}
	if result.ScrapeDelaySeconds == 0 {
		result.ScrapeDelaySeconds = defaults.ScrapeDelaySeconds
	}
	if result.ConnectAttempts == 0 {
		result.ConnectAttempts = defaults.ConnectAttempts
	}
	if result.ConnectDelaySeconds == 0 {
		result.ConnectDelaySeconds = defaults.ConnectDelaySeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ScrapeDelay is the politeness pause between successive scrape queries.
func (c *Config) ScrapeDelay() time.Duration {
	return time.Duration(c.ScrapeDelaySeconds) * time.Second
}

// MaxListingAge is the recency window for scraped postings.
func (c *Config) MaxListingAge() time.Duration {
	return time.Duration(c.HoursOld) * time.Hour
}

// ConnectDelay is the pause between spreadsheet connect attempts.
func (c *Config) ConnectDelay() time.Duration {
	return time.Duration(c.ConnectDelaySeconds) * time.Second
}
