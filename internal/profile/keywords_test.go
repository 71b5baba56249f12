package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords_JobDescription(t *testing.T) {
	jd := "We need a Python developer with AWS and Docker experience for agile team"
	keywords := ExtractKeywords(jd)

	for _, want := range []string{"python", "aws", "docker", "agile", "developer", "team"} {
		assert.Contains(t, keywords, want)
	}
	assert.NotContains(t, keywords, "for")
	assert.NotContains(t, keywords, "and")
	assert.NotContains(t, keywords, "we") // length <= 2
}

func TestExtractKeywords_FrequencyOrdering(t *testing.T) {
	jd := "kubernetes kubernetes kubernetes terraform terraform ansible"
	keywords := ExtractKeywords(jd)

	require.Len(t, keywords, 3)
	assert.Equal(t, []string{"kubernetes", "terraform", "ansible"}, keywords)
}

func TestExtractKeywords_TiesKeepFirstSeenOrder(t *testing.T) {
	jd := "zebra apple zebra apple mango mango"
	keywords := ExtractKeywords(jd)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, keywords)
}

func TestExtractKeywords_CapAtFifteen(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString(strings.Repeat("keyword"+string(rune('a'+i))+" ", 30-i))
	}
	keywords := ExtractKeywords(sb.String())

	assert.Len(t, keywords, MaxExtractedKeywords)
	assert.Equal(t, "keyworda", keywords[0])
}

func TestExtractKeywords_PunctuationStripped(t *testing.T) {
	keywords := ExtractKeywords("C++, C#, and (Go)! experience required; golang/python")

	assert.Contains(t, keywords, "experience")
	assert.Contains(t, keywords, "required")
	assert.Contains(t, keywords, "golang")
	assert.Contains(t, keywords, "python")
}

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
	assert.Empty(t, ExtractKeywords("a an to of"))
}
