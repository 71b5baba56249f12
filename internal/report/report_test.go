package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/pipeline"
	"github.com/jonathan/ats-screener/internal/types"
)

func sampleResult() types.AnalysisResult {
	return types.AnalysisResult{
		CandidateID:   "cand-1",
		CandidateName: "Ada Lovelace",
		CandidateRole: "Backend Engineer",
		ATSScore: types.ATSScore{
			Overall:             82,
			KeywordMatch:        75,
			SectionCompleteness: 90,
			Formatting:          85,
			Readability:         80,
		},
		KeywordAnalysis: types.KeywordAnalysis{
			Matched: []string{"go", "sql"},
			Missing: []string{"kubernetes"},
		},
		Recommendations: []types.Recommendation{
			{
				Type:        types.TypeCritical,
				Category:    types.CategoryKeywords,
				Title:       "Add Missing Keywords",
				Description: "Include kubernetes experience if applicable.",
				Impact:      types.ImpactHigh,
			},
		},
		Rank:         1,
		AnalysisDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Version:      types.AnalysisVersion,
	}
}

func TestWriteCSV_RowPerResult(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []types.AnalysisResult{sampleResult()})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "rank", records[0][0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Ada Lovelace", records[1][1])
	assert.Equal(t, "82", records[1][3])
	assert.Equal(t, "go; sql", records[1][8])
	assert.Equal(t, "kubernetes", records[1][9])
	assert.Equal(t, "1", records[1][10])
}

func TestWriteCSV_UnrankedResultHasEmptyRankCell(t *testing.T) {
	result := sampleResult()
	result.Rank = 0

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []types.AnalysisResult{result}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", records[1][0])
}

func TestWriteAnalysisText_IncludesBreakdownAndRecommendations(t *testing.T) {
	var buf bytes.Buffer
	WriteAnalysisText(&buf, sampleResult())

	out := buf.String()
	assert.Contains(t, out, "Candidate: Ada Lovelace")
	assert.Contains(t, out, "Overall Score: 82/100")
	assert.Contains(t, out, "Missing keywords: kubernetes")
	assert.Contains(t, out, "[critical] Add Missing Keywords")
}

func TestWriteAnalysisText_FallsBackToCandidateID(t *testing.T) {
	result := sampleResult()
	result.CandidateName = ""

	var buf bytes.Buffer
	WriteAnalysisText(&buf, result)
	assert.Contains(t, buf.String(), "Candidate: cand-1")
}

func TestWriteRankingText_TableAndInsights(t *testing.T) {
	result := &pipeline.Result{
		Ranked:       []types.AnalysisResult{sampleResult()},
		TotalResumes: 1,
		Insights: types.RankingInsights{
			TopPerformers:     []string{"Ada Lovelace"},
			CommonIssues:      []string{"Low keyword coverage across the pool"},
			AverageScore:      82,
			ScoreDistribution: types.ScoreDistribution{Excellent: 1},
		},
	}

	var buf bytes.Buffer
	WriteRankingText(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "Screened 1 resumes")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Average score: 82")
	assert.Contains(t, out, "1 excellent")
	assert.Contains(t, out, "Issue: Low keyword coverage")
}

func TestWriteJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  "))
	assert.Contains(t, buf.String(), `"candidateId": "cand-1"`)
}
