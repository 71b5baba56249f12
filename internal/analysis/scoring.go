package analysis

import (
	"math"

	"github.com/jonathan/ats-screener/internal/types"
)

// ScoringStrategy fixes the two formulas the engine has shipped with two
// versions of: how per-section scores fold into a completeness score, and how
// the four component scores compose into the overall score. Both variants are
// kept as named strategies so the choice is explicit and tested instead of
// silently merged.
type ScoringStrategy interface {
	// Name identifies the strategy in logs and persisted results.
	Name() string
	// CompletenessScore folds per-section presence flags and capped 0-100
	// scores into a single 0-100 completeness score.
	CompletenessScore(present map[string]bool, scores map[string]int) int
	// Compose combines the four component scores into the overall score.
	Compose(keywordMatch, sectionCompleteness, formatting, readability int) types.ATSScore
}

// WeightedStrategy is the canonical (v2) scoring: section-importance weights
// for completeness and 0.35/0.25/0.25/0.15 composition weights.
type WeightedStrategy struct{}

// sectionWeights sum to 1.0. Experience carries the most weight.
var sectionWeights = map[string]float64{
	types.SectionSummary:        0.15,
	types.SectionSkills:         0.20,
	types.SectionExperience:     0.25,
	types.SectionEducation:      0.15,
	types.SectionProjects:       0.15,
	types.SectionCertifications: 0.10,
}

// Name implements ScoringStrategy.
func (WeightedStrategy) Name() string { return "weighted-v2" }

// CompletenessScore implements ScoringStrategy using per-section weights.
func (WeightedStrategy) CompletenessScore(_ map[string]bool, scores map[string]int) int {
	weighted := 0.0
	for section, score := range scores {
		weighted += float64(score) * sectionWeights[section]
	}
	return clampScore(int(math.Round(weighted)))
}

// Compose implements ScoringStrategy with the v2 weights
// 0.35 keywords / 0.25 sections / 0.25 formatting / 0.15 readability.
func (WeightedStrategy) Compose(keywordMatch, sectionCompleteness, formatting, readability int) types.ATSScore {
	overall := math.Round(
		float64(keywordMatch)*0.35 +
			float64(sectionCompleteness)*0.25 +
			float64(formatting)*0.25 +
			float64(readability)*0.15)
	return types.ATSScore{
		Overall:             clampScore(int(overall)),
		KeywordMatch:        clampScore(keywordMatch),
		SectionCompleteness: clampScore(sectionCompleteness),
		Formatting:          clampScore(formatting),
		Readability:         clampScore(readability),
	}
}

// LegacyStrategy is the v1 scoring kept for comparing against stored results:
// boolean-count completeness and 0.4/0.3/0.2/0.1 composition weights.
type LegacyStrategy struct{}

// Name implements ScoringStrategy.
func (LegacyStrategy) Name() string { return "legacy-v1" }

// CompletenessScore implements ScoringStrategy as the fraction of sections present.
func (LegacyStrategy) CompletenessScore(present map[string]bool, _ map[string]int) int {
	count := 0
	for _, p := range present {
		if p {
			count++
		}
	}
	return clampScore(int(math.Round(float64(count) / float64(len(types.CanonicalSections)) * 100)))
}

// Compose implements ScoringStrategy with the v1 weights
// 0.4 keywords / 0.3 sections / 0.2 formatting / 0.1 readability.
func (LegacyStrategy) Compose(keywordMatch, sectionCompleteness, formatting, readability int) types.ATSScore {
	overall := math.Round(
		float64(keywordMatch)*0.4 +
			float64(sectionCompleteness)*0.3 +
			float64(formatting)*0.2 +
			float64(readability)*0.1)
	return types.ATSScore{
		Overall:             clampScore(int(overall)),
		KeywordMatch:        clampScore(keywordMatch),
		SectionCompleteness: clampScore(sectionCompleteness),
		Formatting:          clampScore(formatting),
		Readability:         clampScore(readability),
	}
}

// clampScore bounds a score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
