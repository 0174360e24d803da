package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/surya/job-search-agent/internal/config"
	"github.com/surya/job-search-agent/internal/fetch"
	"github.com/surya/job-search-agent/internal/filter"
	"github.com/surya/job-search-agent/internal/llm"
	"github.com/surya/job-search-agent/internal/pipeline"
	"github.com/surya/job-search-agent/internal/queries"
	"github.com/surya/job-search-agent/internal/resume"
	"github.com/surya/job-search-agent/internal/scrape"
	"github.com/surya/job-search-agent/internal/sheets"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full job search pipeline end-to-end",
	Long: `Orchestrates the entire job search process: query generation -> scraping -> seniority filtering -> spreadsheet append.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath   string
	runResume       string
	runSheet        string
	runStore        string
	runCredentials  string
	runWorkbook     string
	runShareWith    string
	runAPIKey       string
	runUseBrowser   bool
	runNoFormatting bool
	runVerbose      bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume PDF used to seed query generation")
	runCommand.Flags().StringVarP(&runSheet, "sheet", "s", "", "Spreadsheet name to append listings to")
	runCommand.Flags().StringVar(&runStore, "store", "", "Spreadsheet backend: google or workbook")
	runCommand.Flags().StringVar(&runCredentials, "credentials", "", "Path to Google service account credentials JSON (google store)")
	runCommand.Flags().StringVar(&runWorkbook, "workbook", "", "Path to local .xlsx workbook (workbook store)")
	runCommand.Flags().StringVar(&runShareWith, "share-with", "", "Email granted write access to a newly created Google spreadsheet")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for board pages (requires Chrome)")
	runCommand.Flags().BoolVar(&runNoFormatting, "no-formatting", false, "Skip header bold/freeze and checkbox formatting")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.ResumeFile = runResume
	}
	if cmd.Flags().Changed("sheet") {
		cfg.SheetName = runSheet
	}
	if cmd.Flags().Changed("store") {
		cfg.Store = runStore
	}
	if cmd.Flags().Changed("credentials") {
		cfg.CredentialsFile = runCredentials
	}
	if cmd.Flags().Changed("workbook") {
		cfg.WorkbookFile = runWorkbook
	}
	if cmd.Flags().Changed("share-with") {
		cfg.ShareWith = runShareWith
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("no-formatting") {
		cfg.NoFormatting = runNoFormatting
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	// Step 4: API Key handling. A missing key is not fatal: query generation
	// degrades to the fallback list and the rest of the run proceeds.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	// Step 5: Validate the merged config
	if err := cfg.Validate(); err != nil {
		return err
	}

	return runPipeline(ctx, cfg)
}

func runPipeline(ctx context.Context, cfg config.Config) error {
	var client llm.Client
	gemini, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		fmt.Printf("Warning: Gemini client unavailable (%v), continuing with the fallback query list\n", err)
	} else {
		client = gemini
		defer func() { _ = gemini.Close() }()
	}

	generator := queries.New(client, resume.New(resume.DefaultTimeout), queries.Options{
		ResumePath: cfg.ResumeFile,
		Skills:     cfg.Skills,
		Location:   cfg.Location,
	})

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowser = cfg.UseBrowser

	var boards []scrape.Board
	for _, name := range cfg.Boards {
		switch name {
		case "linkedin":
			boards = append(boards, scrape.NewLinkedIn(fetchOpts))
		case "indeed":
			boards = append(boards, scrape.NewIndeed(fetchOpts))
		}
	}

	collector := scrape.NewCollector(boards, scrape.Config{
		Limit:   cfg.ResultsWanted,
		MaxAge:  cfg.MaxListingAge(),
		Country: cfg.Country,
		Delay:   cfg.ScrapeDelay(),
	})

	store, formatter, closeStore := buildStore(cfg)
	defer closeStore()

	writer := sheets.NewWriter(store, formatter, sheets.Config{
		ConnectAttempts: cfg.ConnectAttempts,
		ConnectDelay:    cfg.ConnectDelay(),
	})

	_, err = pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Queries:   generator,
		Collector: collector,
		Filter:    filter.New(cfg.SeniorityKeywords),
		Writer:    writer,
		Verbose:   cfg.Verbose,
	})
	return err
}

// buildStore picks the spreadsheet backend and its formatter. The returned
// func releases the store once the run is done.
func buildStore(cfg config.Config) (sheets.Store, sheets.Formatter, func()) {
	var store sheets.Store
	var formatter sheets.Formatter
	closeStore := func() {}

	switch cfg.Store {
	case config.StoreWorkbook:
		wb := sheets.NewWorkbookStore(cfg.WorkbookFile)
		store, formatter = wb, wb
		closeStore = func() { _ = wb.Close() }
	default:
		gs := sheets.NewGoogleStore(sheets.GoogleConfig{
			CredentialsFile: cfg.CredentialsFile,
			SpreadsheetName: cfg.SheetName,
			ShareWith:       cfg.ShareWith,
		})
		store, formatter = gs, gs
	}

	if cfg.NoFormatting {
		formatter = sheets.NoopFormatter{}
	}
	return store, formatter, closeStore
}
