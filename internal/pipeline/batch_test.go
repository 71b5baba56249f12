package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/analysis"
	"github.com/jonathan/ats-screener/internal/types"
)

func testAnalyzer() *analysis.Analyzer {
	var n atomic.Int64
	return analysis.New(
		analysis.WithIDGenerator(func() string {
			return "cand-" + string(rune('a'+n.Add(1)-1))
		}),
		analysis.WithClock(func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }),
	)
}

func sampleResumes() []Resume {
	return []Resume{
		{Text: "Experienced engineer skilled in JavaScript and React. \n• Built APIs\n• Led team", CandidateName: "Ada", CandidateRole: "Engineer"},
		{Text: "Summary\nPython developer with Docker and AWS.\nSkills\nGit, REST, Testing", CandidateName: "Ben", CandidateRole: "Developer"},
		{Text: "", CandidateName: "Cal", CandidateRole: ""},
	}
}

func TestScreen_RanksWholeBatch(t *testing.T) {
	result, err := Screen(context.Background(), testAnalyzer(), sampleResumes(), Options{
		ProfileID: "software-engineer",
	})
	require.NoError(t, err)

	require.Len(t, result.Ranked, 3)
	assert.Equal(t, 3, result.TotalResumes)

	// Dense 1..N ranks, non-increasing ranking order by construction.
	for i, r := range result.Ranked {
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, len(result.Ranked), result.Insights.ScoreDistribution.Total())
}

func TestScreen_EmptyBatch(t *testing.T) {
	_, err := Screen(context.Background(), testAnalyzer(), nil, Options{})
	assert.Error(t, err)
}

func TestScreen_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Screen(ctx, testAnalyzer(), sampleResumes(), Options{ProfileID: "software-engineer"})
	assert.Error(t, err)
}

func TestScreen_ProgressEvents(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[string]bool)

	_, err := Screen(context.Background(), testAnalyzer(), sampleResumes(), Options{
		ProfileID: "software-engineer",
		OnProgress: func(event ProgressEvent) {
			mu.Lock()
			seen[event.CandidateName] = true
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	assert.True(t, seen["Ada"])
	assert.True(t, seen["Ben"])
	assert.True(t, seen["Cal"])
}

type stubRecommender struct {
	recs []types.Recommendation
	err  error
}

func (s *stubRecommender) Recommend(_ context.Context, _ Resume, _ types.JobProfile) ([]types.Recommendation, error) {
	return s.recs, s.err
}

func TestScreen_ExternalRecommendationsFlowThrough(t *testing.T) {
	rec := types.Recommendation{
		Type: types.TypeSuggestion, Category: types.CategoryContent,
		Title: "Quantify Achievements", Description: "Add metrics", Impact: types.ImpactMedium,
		Source: types.SourceAI, AIGenerated: true, Confidence: 0.9,
	}

	result, err := Screen(context.Background(), testAnalyzer(), sampleResumes(), Options{
		ProfileID:   "software-engineer",
		Recommender: &stubRecommender{recs: []types.Recommendation{rec}},
	})
	require.NoError(t, err)

	for _, r := range result.Ranked {
		last := r.Recommendations[len(r.Recommendations)-1]
		assert.Equal(t, "Quantify Achievements", last.Title)
		assert.True(t, last.AIGenerated)
	}
}

func TestScreen_RecommenderFailureTolerated(t *testing.T) {
	result, err := Screen(context.Background(), testAnalyzer(), sampleResumes(), Options{
		ProfileID:   "software-engineer",
		Recommender: &stubRecommender{err: errors.New("quota exhausted")},
	})
	require.NoError(t, err)

	for _, r := range result.Ranked {
		for _, rec := range r.Recommendations {
			assert.False(t, rec.AIGenerated)
		}
	}
}

func TestScreen_InputOrderBreaksTies(t *testing.T) {
	same := Resume{Text: "identical resume text", CandidateName: "", CandidateRole: ""}
	a, b := same, same
	a.CandidateName = "First"
	b.CandidateName = "Second"

	result, err := Screen(context.Background(), testAnalyzer(), []Resume{a, b}, Options{
		ProfileID:   "software-engineer",
		Concurrency: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "First", result.Ranked[0].CandidateName)
	assert.Equal(t, "Second", result.Ranked[1].CandidateName)
}
