package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-screener/internal/profile"
)

var extractCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract ranked keywords from a job description",
	Long: `Read a job description from a file or posting URL and print its keywords
ranked by frequency, the same list custom-profile scoring uses.`,
	RunE: runExtract,
}

var (
	extractJob        string
	extractJobURL     string
	extractUseBrowser bool
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	extractCmd.Flags().StringVar(&extractJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	extractCmd.Flags().BoolVar(&extractUseBrowser, "use-browser", false, "Use headless browser for script-rendered postings (requires Chrome)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print fetch details")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractJob == "" && extractJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if extractJob != "" && extractJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	jobDescription, err := resolveJobDescription(context.Background(), extractJob, extractJobURL, extractUseBrowser, extractVerbose)
	if err != nil {
		return err
	}

	keywords := profile.ExtractKeywords(jobDescription)
	if len(keywords) == 0 {
		fmt.Fprintln(os.Stderr, "No keywords found")
		return nil
	}
	fmt.Println(strings.Join(keywords, "\n"))
	return nil
}
