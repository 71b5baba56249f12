package schemas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/types"
)

func TestValidateRecommendationBatch_Accepts(t *testing.T) {
	doc := `{
		"recommendations": [
			{
				"type": "important",
				"category": "keywords",
				"title": "Add Cloud Keywords",
				"description": "Mention AWS and Docker explicitly",
				"impact": "high",
				"confidence": 0.9
			}
		]
	}`
	assert.NoError(t, ValidateRecommendationBatch(doc))
}

func TestValidateRecommendationBatch_EmptyListAccepted(t *testing.T) {
	assert.NoError(t, ValidateRecommendationBatch(`{"recommendations": []}`))
}

func TestValidateRecommendationBatch_RejectsBadSeverity(t *testing.T) {
	doc := `{
		"recommendations": [
			{"type": "urgent", "category": "keywords", "title": "T", "description": "D", "impact": "high"}
		]
	}`
	err := ValidateRecommendationBatch(doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateRecommendationBatch_RejectsMissingFields(t *testing.T) {
	doc := `{"recommendations": [{"type": "critical"}]}`
	assert.Error(t, ValidateRecommendationBatch(doc))
}

func TestValidateRecommendationBatch_RejectsConfidenceOutOfRange(t *testing.T) {
	doc := `{
		"recommendations": [
			{"type": "critical", "category": "keywords", "title": "T", "description": "D", "impact": "high", "confidence": 1.5}
		]
	}`
	assert.Error(t, ValidateRecommendationBatch(doc))
}

func TestValidateRecommendationBatch_MalformedJSON(t *testing.T) {
	err := ValidateRecommendationBatch(`{"recommendations": [`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateAnalysisResult_RoundTrip(t *testing.T) {
	result := types.AnalysisResult{
		CandidateID:   "cand-1",
		CandidateName: "Ada",
		ATSScore: types.ATSScore{
			Overall: 74, KeywordMatch: 80, Formatting: 90, SectionCompleteness: 60, Readability: 70,
		},
		KeywordAnalysis: types.KeywordAnalysis{
			Matched: []string{"javascript"}, Missing: []string{"react"}, Density: 0.5, RelevanceScore: 60,
		},
		SectionAnalysis: types.SectionAnalysis{Skills: true, CompletenessScore: 20},
		Recommendations: []types.Recommendation{
			{Type: types.TypeImportant, Category: types.CategoryKeywords, Title: "T", Description: "D", Impact: types.ImpactHigh},
		},
		AnalysisDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Version:      types.AnalysisVersion,
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NoError(t, ValidateAnalysisResult(string(data)))
}

func TestValidateAnalysisResult_RejectsMissingScore(t *testing.T) {
	doc := `{"candidateId": "c", "analysisDate": "2025-06-01", "version": 2}`
	assert.Error(t, ValidateAnalysisResult(doc))
}
