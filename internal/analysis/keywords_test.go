package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchKeywords_BasicMatching(t *testing.T) {
	resume := "Experienced engineer skilled in JavaScript and React. \n• Built APIs\n• Led team"
	keywords := []string{"JavaScript", "React", "Node.js", "Python"}

	ka := MatchKeywords(resume, keywords)

	assert.Equal(t, []string{"JavaScript", "React"}, ka.Matched)
	assert.Equal(t, []string{"Node.js", "Python"}, ka.Missing)
	assert.Greater(t, ka.Density, 0.0)
	assert.Greater(t, ka.RelevanceScore, 0)
}

func TestMatchKeywords_PartitionInvariant(t *testing.T) {
	resume := "Python developer with Docker, building REST services in Go."
	keywords := []string{"Python", "Docker", "REST", "Kubernetes", "GraphQL"}

	ka := MatchKeywords(resume, keywords)

	// matched + missing always partitions the keyword list.
	assert.Len(t, ka.Matched, len(keywords)-len(ka.Missing))
	seen := make(map[string]bool)
	for _, k := range append(append([]string{}, ka.Matched...), ka.Missing...) {
		assert.False(t, seen[k], "keyword %s appeared twice", k)
		seen[k] = true
	}
	for _, k := range keywords {
		assert.True(t, seen[k], "keyword %s lost from partition", k)
	}
}

func TestMatchKeywords_WordBoundaries(t *testing.T) {
	// "APIs" must not match the keyword "API"; "Java" must not match inside
	// "JavaScript".
	ka := MatchKeywords("Built APIs with JavaScript", []string{"API", "Java"})
	assert.Empty(t, ka.Matched)
	assert.Equal(t, []string{"API", "Java"}, ka.Missing)
}

func TestMatchKeywords_MorphologicalVariants(t *testing.T) {
	cases := []struct {
		name   string
		resume string
	}{
		{"original", "Experience with Machine Learning models"},
		{"spaces removed", "Experience with machinelearning models"},
		{"hyphenated", "Experience with machine-learning models"},
		{"underscored", "Experience with machine_learning models"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ka := MatchKeywords(tc.resume, []string{"Machine Learning"})
			assert.Equal(t, []string{"Machine Learning"}, ka.Matched, "variant %s should match", tc.name)
		})
	}
}

func TestMatchKeywords_CaseInsensitive(t *testing.T) {
	ka := MatchKeywords("worked with PYTHON and docker", []string{"Python", "Docker"})
	// Matched keeps the profile's display casing.
	assert.Equal(t, []string{"Python", "Docker"}, ka.Matched)
}

func TestMatchKeywords_FrequencyBonus(t *testing.T) {
	once := MatchKeywords("Go services", []string{"Go", "Rust"})
	many := MatchKeywords("Go Go Go Go Go services", []string{"Go", "Rust"})

	assert.Greater(t, many.Density, once.Density)
	// Bonus is capped at 0.2 over the base density.
	assert.LessOrEqual(t, many.Density, 1.0+maxFrequencyBonus)
	assert.LessOrEqual(t, many.RelevanceScore, 100)
}

func TestMatchKeywords_DensityUnclampedRelevanceClamped(t *testing.T) {
	resume := strings.Repeat("Python Docker AWS ", 20)
	ka := MatchKeywords(resume, []string{"Python", "Docker", "AWS"})

	assert.Greater(t, ka.Density, 1.0)
	assert.Equal(t, 100, ka.RelevanceScore)
}

func TestMatchKeywords_EmptyResume(t *testing.T) {
	keywords := []string{"JavaScript", "React", "Node.js"}
	ka := MatchKeywords("", keywords)

	assert.Empty(t, ka.Matched)
	assert.Equal(t, keywords, ka.Missing)
	assert.Equal(t, 0.0, ka.Density)
	assert.Equal(t, 0, ka.RelevanceScore)
}

func TestMatchKeywords_EmptyKeywordList(t *testing.T) {
	ka := MatchKeywords("a perfectly fine resume", nil)

	assert.Empty(t, ka.Matched)
	assert.Empty(t, ka.Missing)
	assert.Equal(t, 0.0, ka.Density)
	assert.Equal(t, 0, ka.RelevanceScore)
}

func TestMatchKeywords_SpecialCharacterKeywords(t *testing.T) {
	ka := MatchKeywords("Deployed Node.js services with CI/CD pipelines", []string{"Node.js", "CI/CD", "C++"})
	assert.Equal(t, []string{"Node.js", "CI/CD"}, ka.Matched)
	assert.Equal(t, []string{"C++"}, ka.Missing)
}

func TestTopMissing_CapsAtN(t *testing.T) {
	ka := MatchKeywords("", []string{"A1", "B2", "C3", "D4", "E5", "F6", "G7"})
	require.Len(t, ka.Missing, 7)

	joined := TopMissing(ka, 5)
	assert.Equal(t, "A1, B2, C3, D4, E5", joined)
}

func TestKeywordVariants_SingleWordCollapses(t *testing.T) {
	variants := keywordVariants("Python")
	assert.Equal(t, []string{"python"}, variants)

	variants = keywordVariants("Machine Learning")
	assert.Equal(t, []string{"machine learning", "machinelearning", "machine-learning", "machine_learning"}, variants)
}
