// Package ranking orders batches of analysis results and derives pool-level
// insights from the ranked batch.
package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-screener/internal/types"
)

// Ranking score adjustments applied on top of the overall ATS score.
const (
	highDensityBonus      = 10
	goodDensityBonus      = 5
	highCompletenessBonus = 8
	goodCompletenessBonus = 4
	coreSectionsBonus     = 5
	criticalPenalty       = 3
	roleAlignmentBonus    = 3

	highDensityThreshold      = 0.7
	goodDensityThreshold      = 0.5
	highCompletenessThreshold = 90
	goodCompletenessThreshold = 80
)

// roleAlignmentWords maps profile ids to words that signal the candidate's
// stated role or name lines up with the target job.
var roleAlignmentWords = map[string][]string{
	"software-engineer":    {"developer", "engineer", "programming", "coding"},
	"data-analyst":         {"analyst", "data", "analysis", "sql"},
	"marketing-manager":    {"marketing", "campaign", "digital", "seo"},
	"product-manager":      {"product", "strategy", "roadmap", "stakeholder"},
	"sales-representative": {"sales", "client", "relationship", "crm"},
	"student":              {"student", "graduate", "internship", "project"},
}

// Score computes the ranking score for a single candidate: the overall ATS
// score adjusted by density and completeness bonuses, a bonus for having all
// core sections, a penalty per critical recommendation, and an optional
// role-alignment bonus when a profile id is given. Clamped to [0, 100].
//
// The ranking score exists only to order a batch; it is never stored on the
// result and is distinct from atsScore.overall.
func Score(result types.AnalysisResult, profileID string) int {
	score := result.ATSScore.Overall

	switch {
	case result.KeywordAnalysis.Density > highDensityThreshold:
		score += highDensityBonus
	case result.KeywordAnalysis.Density > goodDensityThreshold:
		score += goodDensityBonus
	}

	switch {
	case result.SectionAnalysis.CompletenessScore > highCompletenessThreshold:
		score += highCompletenessBonus
	case result.SectionAnalysis.CompletenessScore > goodCompletenessThreshold:
		score += goodCompletenessBonus
	}

	if result.SectionAnalysis.HasCoreSections() {
		score += coreSectionsBonus
	}

	score -= criticalPenalty * result.CriticalCount()

	if profileID != "" && alignsWithRole(result, profileID) {
		score += roleAlignmentBonus
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// alignsWithRole reports whether the candidate's role and name text contains
// any alignment word for the profile.
func alignsWithRole(result types.AnalysisResult, profileID string) bool {
	words, ok := roleAlignmentWords[profileID]
	if !ok {
		return false
	}
	candidateText := strings.ToLower(result.CandidateRole + " " + result.CandidateName)
	for _, word := range words {
		if strings.Contains(candidateText, word) {
			return true
		}
	}
	return false
}

// Rank orders a batch of results by descending ranking score and assigns
// dense 1-based ranks. The sort is stable, so tied candidates keep their input
// order. The input slice is not mutated; callers receive a new annotated
// slice.
func Rank(results []types.AnalysisResult, profileID string) []types.AnalysisResult {
	type scored struct {
		result types.AnalysisResult
		score  int
	}

	entries := make([]scored, len(results))
	for i, r := range results {
		entries[i] = scored{result: r, score: Score(r, profileID)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	ranked := make([]types.AnalysisResult, len(entries))
	for i, e := range entries {
		e.result.Rank = i + 1
		ranked[i] = e.result
	}
	return ranked
}
