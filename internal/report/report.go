// Package report renders screening results for humans and spreadsheets. The
// JSON shape is the engine's own contract and passes through unchanged; text
// and CSV are derived views.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/ats-screener/internal/pipeline"
	"github.com/jonathan/ats-screener/internal/types"
)

// WriteJSON writes any value as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteCSV writes one row per result with the score breakdown and keyword
// counts. Ranked input keeps its order; unranked results get an empty rank
// cell.
func WriteCSV(w io.Writer, results []types.AnalysisResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"rank", "candidate", "role", "overall",
		"keyword_match", "section_completeness", "formatting", "readability",
		"matched_keywords", "missing_keywords", "critical_recommendations",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range results {
		rank := ""
		if r.Rank > 0 {
			rank = strconv.Itoa(r.Rank)
		}
		row := []string{
			rank,
			r.CandidateName,
			r.CandidateRole,
			strconv.Itoa(r.ATSScore.Overall),
			strconv.Itoa(r.ATSScore.KeywordMatch),
			strconv.Itoa(r.ATSScore.SectionCompleteness),
			strconv.Itoa(r.ATSScore.Formatting),
			strconv.Itoa(r.ATSScore.Readability),
			strings.Join(r.KeywordAnalysis.Matched, "; "),
			strings.Join(r.KeywordAnalysis.Missing, "; "),
			strconv.Itoa(r.CriticalCount()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteAnalysisText renders one analysis as a readable breakdown.
func WriteAnalysisText(w io.Writer, r types.AnalysisResult) {
	name := r.CandidateName
	if name == "" {
		name = r.CandidateID
	}
	fmt.Fprintf(w, "Candidate: %s\n", name)
	if r.CandidateRole != "" {
		fmt.Fprintf(w, "Role: %s\n", r.CandidateRole)
	}
	fmt.Fprintf(w, "Overall Score: %d/100\n\n", r.ATSScore.Overall)

	fmt.Fprintf(w, "  Keyword Match:        %d\n", r.ATSScore.KeywordMatch)
	fmt.Fprintf(w, "  Section Completeness: %d\n", r.ATSScore.SectionCompleteness)
	fmt.Fprintf(w, "  Formatting:           %d\n", r.ATSScore.Formatting)
	fmt.Fprintf(w, "  Readability:          %d\n", r.ATSScore.Readability)

	if len(r.KeywordAnalysis.Matched) > 0 {
		fmt.Fprintf(w, "\nMatched keywords: %s\n", strings.Join(r.KeywordAnalysis.Matched, ", "))
	}
	if len(r.KeywordAnalysis.Missing) > 0 {
		fmt.Fprintf(w, "Missing keywords: %s\n", strings.Join(r.KeywordAnalysis.Missing, ", "))
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintf(w, "\nRecommendations:\n")
		for _, rec := range r.Recommendations {
			tag := string(rec.Type)
			if rec.AIGenerated {
				tag += ", ai"
			}
			fmt.Fprintf(w, "  [%s] %s: %s\n", tag, rec.Title, rec.Description)
		}
	}
}

// WriteRankingText renders a whole batch run: the ranked table followed by
// the pool insights.
func WriteRankingText(w io.Writer, result *pipeline.Result) {
	fmt.Fprintf(w, "Screened %d resumes\n\n", result.TotalResumes)

	fmt.Fprintf(w, "%-5s %-25s %-8s %s\n", "RANK", "CANDIDATE", "SCORE", "CRITICAL")
	for _, r := range result.Ranked {
		name := r.CandidateName
		if name == "" {
			name = r.CandidateID
		}
		fmt.Fprintf(w, "%-5d %-25s %-8d %d\n", r.Rank, name, r.ATSScore.Overall, r.CriticalCount())
	}

	insights := result.Insights
	fmt.Fprintf(w, "\nAverage score: %d\n", insights.AverageScore)
	fmt.Fprintf(w, "Distribution: %d excellent, %d good, %d fair, %d poor\n",
		insights.ScoreDistribution.Excellent,
		insights.ScoreDistribution.Good,
		insights.ScoreDistribution.Fair,
		insights.ScoreDistribution.Poor,
	)
	if len(insights.TopPerformers) > 0 {
		fmt.Fprintf(w, "Top performers: %s\n", strings.Join(insights.TopPerformers, ", "))
	}
	for _, issue := range insights.CommonIssues {
		fmt.Fprintf(w, "Issue: %s\n", issue)
	}
	for _, area := range insights.ImprovementAreas {
		fmt.Fprintf(w, "Improve: %s\n", area)
	}
}
