package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/ats-screener/internal/analysis"
	"github.com/jonathan/ats-screener/internal/config"
	"github.com/jonathan/ats-screener/internal/fetch"
	"github.com/jonathan/ats-screener/internal/fileextract"
	"github.com/jonathan/ats-screener/internal/pipeline"
)

// mergedConfig loads the optional config file, overlays CLI flag values on
// top of it, and validates the result. Flags win over file values.
func mergedConfig(configPath string, flags config.Config) (config.Config, error) {
	cfg := flags
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = flags.MergeWithDefaults(*loaded)
		// Bool flags cannot express "unset", so an explicit CLI true wins and
		// a file true survives a CLI false.
		cfg.UseBrowser = flags.UseBrowser || loaded.UseBrowser
		cfg.Verbose = flags.Verbose || loaded.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadResume reads a resume file (PDF, DOCX or plain text) and derives the
// candidate name from the filename.
func loadResume(path string) (pipeline.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Resume{}, fmt.Errorf("failed to read resume %s: %w", path, err)
	}

	filename := filepath.Base(path)
	text, err := fileextract.Text(filename, fileextract.DetectMime(filename), data)
	if err != nil {
		return pipeline.Resume{}, fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	return pipeline.Resume{Text: text, CandidateName: name}, nil
}

// resolveJobDescription reads the job description from a file or fetches it
// from a posting URL. Both empty means profile-only scoring.
func resolveJobDescription(ctx context.Context, jobPath, jobURL string, useBrowser, verbose bool) (string, error) {
	if jobPath != "" {
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", jobPath, err)
		}
		return string(data), nil
	}
	if jobURL == "" {
		return "", nil
	}

	result, err := fetch.JobDescription(ctx, jobURL, &fetch.Options{
		AllowBrowser: useBrowser,
		Verbose:      verbose,
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Fetched job posting from %s (%s)\n", jobURL, result.Platform)
	}
	return result.Text, nil
}

// analyzerFor builds an analyzer for the chosen scoring strategy.
func analyzerFor(strategy string) (*analysis.Analyzer, error) {
	switch strategy {
	case "", "weighted":
		return analysis.New(), nil
	case "legacy":
		return analysis.New(analysis.WithStrategy(analysis.LegacyStrategy{})), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want weighted or legacy)", strategy)
	}
}

// outputWriter opens the output file, or stdout when path is empty. The
// returned close func is a no-op for stdout.
func outputWriter(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
