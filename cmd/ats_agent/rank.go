package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-screener/internal/ai"
	"github.com/jonathan/ats-screener/internal/config"
	"github.com/jonathan/ats-screener/internal/pipeline"
	"github.com/jonathan/ats-screener/internal/report"
	"github.com/jonathan/ats-screener/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank <resume-file>...",
	Short: "Rank a batch of resumes against a job profile",
	Long: `Analyze every given resume in parallel, rank the pool by adjusted score and
report the ranking with pool-level insights.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRank,
}

var (
	rankConfigPath  string
	rankProfile     string
	rankJob         string
	rankJobURL      string
	rankStrategy    string
	rankConcurrency int
	rankMinScore    int
	rankFormat      string
	rankOutput      string
	rankAI          bool
	rankAPIKey      string
	rankUseBrowser  bool
	rankVerbose     bool
)

func init() {
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rankCmd.Flags().StringVarP(&rankProfile, "profile", "p", "", "Job profile id (see 'profiles' command)")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	rankCmd.Flags().StringVar(&rankJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	rankCmd.Flags().StringVar(&rankStrategy, "strategy", "", "Scoring strategy: weighted or legacy")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", 0, "Parallel analyses (0 uses the default)")
	rankCmd.Flags().IntVar(&rankMinScore, "min-score", 0, "Only report candidates at or above this overall score")
	rankCmd.Flags().StringVarP(&rankFormat, "format", "f", "", "Output format: text, json or csv")
	rankCmd.Flags().StringVarP(&rankOutput, "output", "o", "", "Write the report to a file instead of stdout")
	rankCmd.Flags().BoolVar(&rankAI, "ai", false, "Include AI-generated recommendations (requires API key)")
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	rankCmd.Flags().BoolVar(&rankUseBrowser, "use-browser", false, "Use headless browser for script-rendered postings (requires Chrome)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print per-candidate progress")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(rankConfigPath, config.Config{
		ProfileID:   rankProfile,
		Job:         rankJob,
		JobURL:      rankJobURL,
		Strategy:    rankStrategy,
		Concurrency: rankConcurrency,
		MinScore:    rankMinScore,
		Format:      rankFormat,
		APIKey:      rankAPIKey,
		UseBrowser:  rankUseBrowser,
		Verbose:     rankVerbose,
	})
	if err != nil {
		return err
	}

	resumes := make([]pipeline.Resume, 0, len(args))
	for _, path := range args {
		resume, err := loadResume(path)
		if err != nil {
			return err
		}
		resumes = append(resumes, resume)
	}

	jobDescription, err := resolveJobDescription(ctx, cfg.Job, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return err
	}

	analyzer, err := analyzerFor(cfg.Strategy)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		ProfileID:            cfg.ProfileID,
		CustomJobDescription: jobDescription,
		Concurrency:          cfg.Concurrency,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Stage, event.CandidateName)
		}
	}

	if rankAI {
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
		opts.Recommender = ai.NewRecommender(client)
	}

	result, err := pipeline.Screen(ctx, analyzer, resumes, opts)
	if err != nil {
		return err
	}

	if cfg.MinScore > 0 {
		filtered := make([]types.AnalysisResult, 0, len(result.Ranked))
		for _, r := range result.Ranked {
			if r.ATSScore.Overall >= cfg.MinScore {
				filtered = append(filtered, r)
			}
		}
		result.Ranked = filtered
	}

	out, closeOut, err := outputWriter(rankOutput)
	if err != nil {
		return err
	}
	defer closeOut()

	switch cfg.Format {
	case "json":
		return report.WriteJSON(out, result)
	case "csv":
		return report.WriteCSV(out, result.Ranked)
	default:
		report.WriteRankingText(out, result)
		return nil
	}
}
