// Package main provides the entry point for the ATS screener CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS resume screening engine",
	Long:  "ATS Screener scores resumes against job profiles the way applicant tracking systems do, ranks candidate pools, and serves the analysis over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
