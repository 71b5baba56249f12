package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/types"
)

func resultWithOverall(id, name string, overall int) types.AnalysisResult {
	return types.AnalysisResult{
		CandidateID:   id,
		CandidateName: name,
		ATSScore:      types.ATSScore{Overall: overall},
	}
}

func TestScore_BaseIsOverall(t *testing.T) {
	r := resultWithOverall("c1", "Pat", 60)
	assert.Equal(t, 60, Score(r, ""))
}

func TestScore_DensityBonuses(t *testing.T) {
	r := resultWithOverall("c1", "Pat", 60)

	r.KeywordAnalysis.Density = 0.75
	assert.Equal(t, 70, Score(r, ""))

	r.KeywordAnalysis.Density = 0.6
	assert.Equal(t, 65, Score(r, ""))

	r.KeywordAnalysis.Density = 0.3
	assert.Equal(t, 60, Score(r, ""))
}

func TestScore_CompletenessBonuses(t *testing.T) {
	r := resultWithOverall("c1", "Pat", 60)

	r.SectionAnalysis.CompletenessScore = 95
	assert.Equal(t, 68, Score(r, ""))

	r.SectionAnalysis.CompletenessScore = 85
	assert.Equal(t, 64, Score(r, ""))
}

func TestScore_CoreSectionsBonus(t *testing.T) {
	r := resultWithOverall("c1", "Pat", 60)
	r.SectionAnalysis = types.SectionAnalysis{
		Summary: true, Skills: true, Experience: true, Education: true,
	}
	assert.Equal(t, 65, Score(r, ""))

	r.SectionAnalysis.Education = false
	assert.Equal(t, 60, Score(r, ""))
}

func TestScore_CriticalPenalty(t *testing.T) {
	r := resultWithOverall("c1", "Pat", 60)
	r.Recommendations = []types.Recommendation{
		{Type: types.TypeCritical},
		{Type: types.TypeCritical},
		{Type: types.TypeImportant},
	}
	assert.Equal(t, 54, Score(r, ""))
}

func TestScore_RoleAlignment(t *testing.T) {
	r := resultWithOverall("c1", "Pat", 60)
	r.CandidateRole = "Senior Backend Developer"

	assert.Equal(t, 63, Score(r, "software-engineer"))
	// No profile id: no alignment bonus.
	assert.Equal(t, 60, Score(r, ""))
	// Unknown profile id: no alignment word list.
	assert.Equal(t, 60, Score(r, "astronaut"))
}

func TestScore_Clamped(t *testing.T) {
	high := resultWithOverall("c1", "Pat", 100)
	high.KeywordAnalysis.Density = 0.9
	high.SectionAnalysis = types.SectionAnalysis{
		Summary: true, Skills: true, Experience: true, Education: true,
		CompletenessScore: 95,
	}
	assert.Equal(t, 100, Score(high, ""))

	low := resultWithOverall("c2", "Sam", 5)
	for i := 0; i < 10; i++ {
		low.Recommendations = append(low.Recommendations, types.Recommendation{Type: types.TypeCritical})
	}
	assert.Equal(t, 0, Score(low, ""))
}

func TestRank_DenseStableOrder(t *testing.T) {
	batch := []types.AnalysisResult{
		resultWithOverall("c1", "First Ninety", 90),
		resultWithOverall("c2", "Second Ninety", 90),
		resultWithOverall("c3", "Low", 40),
	}

	ranked := Rank(batch, "")

	require.Len(t, ranked, 3)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank)
	// Stable: the tied candidates keep input order.
	assert.Equal(t, "First Ninety", ranked[0].CandidateName)
	assert.Equal(t, "Second Ninety", ranked[1].CandidateName)
	assert.Equal(t, "Low", ranked[2].CandidateName)
}

func TestRank_SortsByRankingScoreNotOverall(t *testing.T) {
	// Lower overall but dense keywords and complete sections beats a slightly
	// higher overall with critical issues.
	strong := resultWithOverall("c1", "Strong", 70)
	strong.KeywordAnalysis.Density = 0.8
	strong.SectionAnalysis = types.SectionAnalysis{
		Summary: true, Skills: true, Experience: true, Education: true,
		CompletenessScore: 92,
	}

	weak := resultWithOverall("c2", "Weak", 75)
	weak.Recommendations = []types.Recommendation{
		{Type: types.TypeCritical}, {Type: types.TypeCritical},
	}

	ranked := Rank([]types.AnalysisResult{weak, strong}, "")

	assert.Equal(t, "Strong", ranked[0].CandidateName)
	assert.Equal(t, "Weak", ranked[1].CandidateName)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	batch := []types.AnalysisResult{
		resultWithOverall("c1", "A", 50),
		resultWithOverall("c2", "B", 80),
	}

	_ = Rank(batch, "")

	assert.Zero(t, batch[0].Rank)
	assert.Zero(t, batch[1].Rank)
	assert.Equal(t, "A", batch[0].CandidateName)
}

func TestRank_EmptyBatch(t *testing.T) {
	ranked := Rank(nil, "")
	assert.Empty(t, ranked)
}
