// Package main provides the entry point for the Job Search Agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_agent",
	Short: "Automated job search pipeline",
	Long:  "Job Search Agent turns a resume into job-board search queries, scrapes fresh listings from LinkedIn and Indeed, filters out senior roles, and appends the rest to a tracking spreadsheet.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
