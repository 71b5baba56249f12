package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-screener/internal/ai"
	"github.com/jonathan/ats-screener/internal/pipeline"
	"github.com/jonathan/ats-screener/internal/server"
)

var (
	servePort     int
	serveStrategy string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing and ranking resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveStrategy, "strategy", "weighted", "Scoring strategy (weighted or legacy)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// AI recommendations are optional; the server runs rule-based only
	// without a key.
	var recommender pipeline.RecommendationSource
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), apiKey, ai.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create AI client: %w", err)
		}
		defer client.Close()
		recommender = ai.NewRecommender(client)
	} else {
		log.Println("GEMINI_API_KEY not set; AI recommendations disabled")
	}

	srv, err := server.New(server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		Strategy:    serveStrategy,
		Recommender: recommender,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
