// Package types provides type definitions for structured data used throughout the ats-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ATSScore holds the composed score plus the four component scores, each 0-100.
type ATSScore struct {
	Overall             int `json:"overall"`
	KeywordMatch        int `json:"keywordMatch"`
	Formatting          int `json:"formatting"`
	SectionCompleteness int `json:"sectionCompleteness"`
	Readability         int `json:"readability"`
}

// KeywordAnalysis represents the matched/missing keyword breakdown for one resume.
// Matched and Missing preserve the profile's keyword order. Density is the
// base match ratio plus the frequency bonus, stored unclamped.
type KeywordAnalysis struct {
	Matched        []string `json:"matched"`
	Missing        []string `json:"missing"`
	Density        float64  `json:"density"`
	RelevanceScore int      `json:"relevanceScore"`
}

// SectionAnalysis reports which canonical resume sections were detected.
// The booleans and CompletenessScore are computed independently: presence comes
// from header patterns alone, completeness from weighted per-section scores.
type SectionAnalysis struct {
	Summary           bool `json:"summary"`
	Skills            bool `json:"skills"`
	Experience        bool `json:"experience"`
	Education         bool `json:"education"`
	Projects          bool `json:"projects"`
	Certifications    bool `json:"certifications"`
	CompletenessScore int  `json:"completenessScore"`
}

// HasCoreSections reports whether the four sections recruiters screen for first
// are all present.
func (s SectionAnalysis) HasCoreSections() bool {
	return s.Summary && s.Skills && s.Experience && s.Education
}
