package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/ats-screener/internal/types"
)

// Insight thresholds.
const (
	topPerformerScore = 85
	maxTopPerformers  = 3
	maxCommonIssues   = 5
	// commonIssueRatio is the share of candidates an issue must appear in
	// before it counts as common.
	commonIssueRatio = 0.3
)

// Aggregate computes pool-level statistics from a ranked batch: top
// performers, recurring issues, score distribution, average score, and
// improvement-area hints. An empty batch yields empty collections and a zero
// average instead of an error.
func Aggregate(rankedResults []types.AnalysisResult) types.RankingInsights {
	insights := types.RankingInsights{
		TopPerformers:    []string{},
		CommonIssues:     []string{},
		ImprovementAreas: []string{},
	}
	if len(rankedResults) == 0 {
		return insights
	}

	for _, r := range rankedResults {
		if r.ATSScore.Overall >= topPerformerScore && len(insights.TopPerformers) < maxTopPerformers {
			insights.TopPerformers = append(insights.TopPerformers, r.CandidateName)
		}
	}

	insights.CommonIssues = commonIssues(rankedResults)

	total := 0
	for _, r := range rankedResults {
		total += r.ATSScore.Overall
		switch {
		case r.ATSScore.Overall >= 85:
			insights.ScoreDistribution.Excellent++
		case r.ATSScore.Overall >= 70:
			insights.ScoreDistribution.Good++
		case r.ATSScore.Overall >= 50:
			insights.ScoreDistribution.Fair++
		default:
			insights.ScoreDistribution.Poor++
		}
	}
	insights.AverageScore = int(math.Round(float64(total) / float64(len(rankedResults))))

	insights.ImprovementAreas = improvementAreas(insights, len(rankedResults))
	return insights
}

// commonIssues tallies (category, title) recommendation pairs across the
// batch, keeps the five most frequent, and reports the titles of those
// appearing in more than 30% of candidates.
func commonIssues(rankedResults []types.AnalysisResult) []string {
	type issue struct {
		title string
		count int
		seen  int // first-seen ordinal, for deterministic tie order
	}

	counts := make(map[string]*issue)
	ordinal := 0
	for _, r := range rankedResults {
		for _, rec := range r.Recommendations {
			key := string(rec.Category) + ":" + rec.Title
			if _, ok := counts[key]; !ok {
				counts[key] = &issue{title: rec.Title, seen: ordinal}
				ordinal++
			}
			counts[key].count++
		}
	}

	issues := make([]*issue, 0, len(counts))
	for _, is := range counts {
		issues = append(issues, is)
	}
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].count != issues[j].count {
			return issues[i].count > issues[j].count
		}
		return issues[i].seen < issues[j].seen
	})
	if len(issues) > maxCommonIssues {
		issues = issues[:maxCommonIssues]
	}

	threshold := float64(len(rankedResults)) * commonIssueRatio
	common := []string{}
	for _, is := range issues {
		if float64(is.count) > threshold {
			common = append(common, is.title)
		}
	}
	return common
}

// improvementAreas derives free-text hints from the distribution and the
// common issue list.
func improvementAreas(insights types.RankingInsights, batchSize int) []string {
	areas := []string{}

	if insights.ScoreDistribution.Poor > 0 {
		areas = append(areas, "Focus on improving keyword matching and section completeness")
	}
	if float64(insights.ScoreDistribution.Fair) > float64(batchSize)*0.5 {
		areas = append(areas, "Consider adding more industry-specific keywords")
	}
	for _, issue := range insights.CommonIssues {
		if strings.Contains(strings.ToLower(issue), "formatting") {
			areas = append(areas, "Improve resume formatting and structure")
			break
		}
	}
	return areas
}
