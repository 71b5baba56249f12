// Package types provides type definitions for structured data used throughout the ats-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Canonical resume section names. These are the only section identifiers the
// engine understands; profile RequiredSections draw from this set.
const (
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// CanonicalSections lists all section names in their display order.
var CanonicalSections = []string{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionCertifications,
}

// JobProfile is an immutable scoring baseline: a named or ad-hoc bundle of
// target keywords and required sections. Keywords keep their display casing
// but are matched case-insensitively.
type JobProfile struct {
	ID               string   `json:"id"`
	Keywords         []string `json:"keywords"`
	RequiredSections []string `json:"requiredSections"`
}

// RequiresSection reports whether the named section is required by the profile.
func (p JobProfile) RequiresSection(name string) bool {
	for _, s := range p.RequiredSections {
		if s == name {
			return true
		}
	}
	return false
}
