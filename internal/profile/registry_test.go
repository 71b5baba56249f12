package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/types"
)

func TestLookup_KnownProfiles(t *testing.T) {
	ids := []string{
		"software-engineer", "data-analyst", "marketing-manager",
		"product-manager", "sales-representative", "student",
	}
	for _, id := range ids {
		p, ok := Lookup(id)
		require.True(t, ok, "profile %s should exist", id)
		assert.Equal(t, id, p.ID)
		assert.NotEmpty(t, p.Keywords)
		assert.NotEmpty(t, p.RequiredSections)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("astronaut")
	assert.False(t, ok)
}

func TestResolve_UnknownIDFallsBack(t *testing.T) {
	p := Resolve("astronaut", "")
	assert.Equal(t, DefaultProfileID, p.ID)
}

func TestResolve_CustomDescriptionWins(t *testing.T) {
	p := Resolve("software-engineer", "Looking for a pastry chef with chocolate chocolate chocolate experience")
	assert.Equal(t, CustomProfileID, p.ID)
	assert.Contains(t, p.Keywords, "chocolate")
}

func TestResolve_KnownID(t *testing.T) {
	p := Resolve("data-analyst", "")
	assert.Equal(t, "data-analyst", p.ID)
	assert.Contains(t, p.Keywords, "SQL")
	assert.True(t, p.RequiresSection(types.SectionProjects))
}

func TestSynthesize_CoreSections(t *testing.T) {
	p := Synthesize("any job description text here")
	assert.Equal(t, []string{
		types.SectionSummary, types.SectionSkills,
		types.SectionExperience, types.SectionEducation,
	}, p.RequiredSections)
}

func TestIDs_CoversCatalog(t *testing.T) {
	assert.Len(t, IDs(), 6)
}
