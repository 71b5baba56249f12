package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-screener/internal/types"
)

func TestWeightedStrategy_Compose(t *testing.T) {
	score := WeightedStrategy{}.Compose(80, 60, 100, 40)

	// 80*0.35 + 60*0.25 + 100*0.25 + 40*0.15 = 28 + 15 + 25 + 6 = 74
	assert.Equal(t, 74, score.Overall)
	assert.Equal(t, 80, score.KeywordMatch)
	assert.Equal(t, 60, score.SectionCompleteness)
	assert.Equal(t, 100, score.Formatting)
	assert.Equal(t, 40, score.Readability)
}

func TestLegacyStrategy_Compose(t *testing.T) {
	score := LegacyStrategy{}.Compose(80, 60, 100, 40)

	// 80*0.4 + 60*0.3 + 100*0.2 + 40*0.1 = 32 + 18 + 20 + 4 = 74
	assert.Equal(t, 74, score.Overall)
}

func TestStrategies_Diverge(t *testing.T) {
	// Same inputs, different weights: the two strategies must be allowed to
	// disagree, which is why the choice is explicit.
	weighted := WeightedStrategy{}.Compose(100, 0, 0, 0)
	legacy := LegacyStrategy{}.Compose(100, 0, 0, 0)

	assert.Equal(t, 35, weighted.Overall)
	assert.Equal(t, 40, legacy.Overall)
	assert.NotEqual(t, weighted.Overall, legacy.Overall)
}

func TestWeightedStrategy_Completeness(t *testing.T) {
	scores := map[string]int{
		types.SectionSummary:        100,
		types.SectionSkills:         100,
		types.SectionExperience:     100,
		types.SectionEducation:      100,
		types.SectionProjects:       100,
		types.SectionCertifications: 100,
	}
	assert.Equal(t, 100, WeightedStrategy{}.CompletenessScore(nil, scores))

	partial := map[string]int{
		types.SectionExperience: 100,
		types.SectionSkills:     50,
	}
	// 100*0.25 + 50*0.20 = 35
	assert.Equal(t, 35, WeightedStrategy{}.CompletenessScore(nil, partial))
}

func TestLegacyStrategy_Completeness(t *testing.T) {
	present := map[string]bool{
		types.SectionSummary:    true,
		types.SectionSkills:     true,
		types.SectionExperience: true,
	}
	// 3 of 6 sections -> 50.
	assert.Equal(t, 50, LegacyStrategy{}.CompletenessScore(present, nil))

	assert.Equal(t, 0, LegacyStrategy{}.CompletenessScore(map[string]bool{}, nil))
}

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, "weighted-v2", WeightedStrategy{}.Name())
	assert.Equal(t, "legacy-v1", LegacyStrategy{}.Name())
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 100, clampScore(130))
	assert.Equal(t, 42, clampScore(42))
}
