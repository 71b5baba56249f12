package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/types"
)

func allGood() (types.KeywordAnalysis, types.SectionAnalysis) {
	ka := types.KeywordAnalysis{RelevanceScore: 95, Density: 0.9}
	sa := types.SectionAnalysis{
		Summary: true, Skills: true, Experience: true,
		Education: true, Projects: true, Certifications: true,
		CompletenessScore: 95,
	}
	return ka, sa
}

func TestGenerateRecommendations_NoIssues(t *testing.T) {
	ka, sa := allGood()
	recs := GenerateRecommendations(ka, sa, 90, 90)
	assert.Empty(t, recs)
}

func TestGenerateRecommendations_BothKeywordRulesFire(t *testing.T) {
	ka, sa := allGood()
	ka.RelevanceScore = 40
	ka.Missing = []string{"Go", "SQL", "AWS", "Docker", "Git", "React"}

	recs := GenerateRecommendations(ka, sa, 90, 90)

	require.Len(t, recs, 2)
	assert.Equal(t, "Add Missing Keywords", recs[0].Title)
	assert.Equal(t, types.TypeCritical, recs[0].Type)
	assert.Equal(t, types.ImpactHigh, recs[0].Impact)
	// Only the first five missing keywords are named.
	assert.Contains(t, recs[0].Description, "Go, SQL, AWS, Docker, Git")
	assert.NotContains(t, recs[0].Description, "React")

	assert.Equal(t, "Optimize Keyword Density", recs[1].Title)
	assert.Equal(t, types.TypeImportant, recs[1].Type)
}

func TestGenerateRecommendations_OnlyDensityRule(t *testing.T) {
	ka, sa := allGood()
	ka.RelevanceScore = 70

	recs := GenerateRecommendations(ka, sa, 90, 90)

	require.Len(t, recs, 1)
	assert.Equal(t, "Optimize Keyword Density", recs[0].Title)
}

func TestGenerateRecommendations_SectionRules(t *testing.T) {
	ka, sa := allGood()
	sa.Summary = false
	sa.Skills = false
	sa.Projects = false

	recs := GenerateRecommendations(ka, sa, 90, 90)

	require.Len(t, recs, 3)
	assert.Equal(t, "Add Professional Summary", recs[0].Title)
	assert.Equal(t, types.TypeCritical, recs[0].Type)
	assert.Equal(t, "Add Skills Section", recs[1].Title)
	assert.Equal(t, types.TypeImportant, recs[1].Type)
	assert.Equal(t, "Include Projects", recs[2].Title)
	assert.Equal(t, types.TypeSuggestion, recs[2].Type)
}

func TestGenerateRecommendations_FormattingAndReadability(t *testing.T) {
	ka, sa := allGood()
	recs := GenerateRecommendations(ka, sa, 50, 60)

	require.Len(t, recs, 2)
	assert.Equal(t, "Improve Formatting", recs[0].Title)
	assert.Equal(t, types.CategoryFormatting, recs[0].Category)
	assert.Equal(t, "Enhance Readability", recs[1].Title)
	assert.Equal(t, types.CategoryContent, recs[1].Category)
	assert.Equal(t, types.ImpactLow, recs[1].Impact)
}

func TestGenerateRecommendations_FixedOrder(t *testing.T) {
	// Everything wrong at once: output order is the rule evaluation order.
	ka := types.KeywordAnalysis{RelevanceScore: 10, Missing: []string{"Go"}}
	sa := types.SectionAnalysis{}

	recs := GenerateRecommendations(ka, sa, 10, 10)

	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	assert.Equal(t, []string{
		"Add Missing Keywords",
		"Optimize Keyword Density",
		"Add Professional Summary",
		"Add Skills Section",
		"Include Projects",
		"Improve Formatting",
		"Enhance Readability",
	}, titles)
}

func TestGenerateRecommendations_AllTaggedAsRules(t *testing.T) {
	ka := types.KeywordAnalysis{RelevanceScore: 10}
	recs := GenerateRecommendations(ka, types.SectionAnalysis{}, 10, 10)

	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Equal(t, types.SourceRules, r.Source)
		assert.False(t, r.AIGenerated)
		assert.NoError(t, r.Validate())
	}
}
