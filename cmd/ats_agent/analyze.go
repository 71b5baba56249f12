package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-screener/internal/ai"
	"github.com/jonathan/ats-screener/internal/analysis"
	"github.com/jonathan/ats-screener/internal/config"
	"github.com/jonathan/ats-screener/internal/profile"
	"github.com/jonathan/ats-screener/internal/report"
	"github.com/jonathan/ats-screener/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Score one resume against a job profile",
	Long: `Analyze a single resume (PDF, DOCX or plain text) against a job profile or
a custom job description, and report the ATS score breakdown with
recommendations.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeProfile    string
	analyzeJob        string
	analyzeJobURL     string
	analyzeRole       string
	analyzeStrategy   string
	analyzeFormat     string
	analyzeOutput     string
	analyzeAI         bool
	analyzeAPIKey     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "Job profile id (see 'profiles' command)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Candidate's target role (used in AI prompts)")
	analyzeCmd.Flags().StringVar(&analyzeStrategy, "strategy", "", "Scoring strategy: weighted or legacy")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Output format: text, json or csv")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeAI, "ai", false, "Include AI-generated recommendations (requires API key)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for script-rendered postings (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(analyzeConfigPath, config.Config{
		ProfileID:  analyzeProfile,
		Job:        analyzeJob,
		JobURL:     analyzeJobURL,
		Strategy:   analyzeStrategy,
		Format:     analyzeFormat,
		APIKey:     analyzeAPIKey,
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
	})
	if err != nil {
		return err
	}

	resume, err := loadResume(args[0])
	if err != nil {
		return err
	}
	resume.CandidateRole = analyzeRole

	jobDescription, err := resolveJobDescription(ctx, cfg.Job, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return err
	}

	analyzer, err := analyzerFor(cfg.Strategy)
	if err != nil {
		return err
	}

	req := analysis.Request{
		ResumeText:           resume.Text,
		CandidateName:        resume.CandidateName,
		CandidateRole:        resume.CandidateRole,
		ProfileID:            cfg.ProfileID,
		CustomJobDescription: jobDescription,
	}

	if analyzeAI {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("--ai requires an API key (--api-key or GEMINI_API_KEY)")
		}

		client, err := ai.NewGeminiClient(ctx, apiKey, ai.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create AI client: %w", err)
		}
		defer client.Close()

		jobProfile := profile.Resolve(cfg.ProfileID, jobDescription)
		recs, err := ai.NewRecommender(client).Recommend(ctx, resume, jobProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: AI recommendations unavailable: %v\n", err)
		} else {
			req.External = recs
		}
	}

	result := analyzer.Analyze(req)

	out, closeOut, err := outputWriter(analyzeOutput)
	if err != nil {
		return err
	}
	defer closeOut()

	switch cfg.Format {
	case "json":
		return report.WriteJSON(out, result)
	case "csv":
		return report.WriteCSV(out, []types.AnalysisResult{result})
	default:
		report.WriteAnalysisText(out, result)
		return nil
	}
}
