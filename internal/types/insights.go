// Package types provides type definitions for structured data used throughout the ats-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreDistribution buckets a candidate pool by overall score. The buckets are
// mutually exclusive and collectively exhaustive: excellent >= 85, good 70-84,
// fair 50-69, poor < 50.
type ScoreDistribution struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
	Poor      int `json:"poor"`
}

// Total returns the number of candidates across all buckets.
func (d ScoreDistribution) Total() int {
	return d.Excellent + d.Good + d.Fair + d.Poor
}

// RankingInsights holds pool-level statistics derived from a ranked batch.
// Ephemeral: recomputed per batch, never persisted incrementally.
type RankingInsights struct {
	TopPerformers     []string          `json:"topPerformers"`
	CommonIssues      []string          `json:"commonIssues"`
	ImprovementAreas  []string          `json:"improvementAreas"`
	AverageScore      int               `json:"averageScore"`
	ScoreDistribution ScoreDistribution `json:"scoreDistribution"`
}
