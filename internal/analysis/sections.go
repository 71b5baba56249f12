package analysis

import (
	"strings"

	"github.com/jonathan/ats-screener/internal/types"
)

// Per-section score contributions. A header hit is worth far more than a
// content indicator because headers are what ATS parsers key on.
const (
	headerScore     = 50
	indicatorScore  = 10
	maxSectionScore = 100
)

// headerPatterns maps each canonical section to the header phrases that mark
// it as present. Matched case-insensitively anywhere in the text.
var headerPatterns = map[string][]string{
	types.SectionSummary: {
		"summary", "objective", "profile", "overview", "introduction",
		"executive summary", "professional summary",
	},
	types.SectionSkills: {
		"skills", "technical skills", "competencies", "expertise",
		"technologies", "tools", "languages",
	},
	types.SectionExperience: {
		"experience", "employment", "work history", "professional experience",
		"career history", "employment history",
	},
	types.SectionEducation: {
		"education", "academic", "degree", "university", "college",
		"qualifications", "certifications",
	},
	types.SectionProjects: {
		"projects", "portfolio", "achievements", "key projects",
		"notable projects", "work samples",
	},
	types.SectionCertifications: {
		"certifications", "certificates", "licenses", "accreditations",
		"professional certifications",
	},
}

// contentIndicators are phrases that suggest a section has real content behind
// its header, each worth a small score bump.
var contentIndicators = map[string][]string{
	types.SectionSummary:        {"overview", "background", "professional", "career"},
	types.SectionSkills:         {"proficient", "experienced", "knowledge", "familiar"},
	types.SectionExperience:     {"responsibilities", "achieved", "managed", "led"},
	types.SectionEducation:      {"bachelor", "master", "phd", "gpa", "graduated"},
	types.SectionProjects:       {"developed", "created", "built", "implemented"},
	types.SectionCertifications: {"certified", "licensed", "accredited", "authorized"},
}

// ScoreSections evaluates all six canonical sections against the resume text,
// returning presence flags (header match only) and a capped 0-100 numeric
// score per section (header bonus plus content-indicator bumps). The two
// outputs are independent: a section can be present with a low score and the
// completeness formula may credit indicator-only sections below the header
// threshold.
func ScoreSections(resumeText string) (present map[string]bool, scores map[string]int) {
	text := strings.ToLower(resumeText)

	present = make(map[string]bool, len(types.CanonicalSections))
	scores = make(map[string]int, len(types.CanonicalSections))

	for _, section := range types.CanonicalSections {
		score := 0
		for _, pattern := range headerPatterns[section] {
			if strings.Contains(text, pattern) {
				present[section] = true
				score += headerScore
				break
			}
		}
		for _, indicator := range contentIndicators[section] {
			if strings.Contains(text, indicator) {
				score += indicatorScore
			}
		}
		if score > maxSectionScore {
			score = maxSectionScore
		}
		scores[section] = score
	}
	return present, scores
}

// DetectSections runs section detection and folds the per-section scores into
// a completeness score using the given strategy. All six canonical sections
// are always evaluated; requiredSections is part of the profile contract but
// does not restrict detection, since a section the profile doesn't require is
// still worth crediting.
func DetectSections(resumeText string, requiredSections []string, strategy ScoringStrategy) types.SectionAnalysis {
	_ = requiredSections
	present, scores := ScoreSections(resumeText)

	return types.SectionAnalysis{
		Summary:           present[types.SectionSummary],
		Skills:            present[types.SectionSkills],
		Experience:        present[types.SectionExperience],
		Education:         present[types.SectionEducation],
		Projects:          present[types.SectionProjects],
		Certifications:    present[types.SectionCertifications],
		CompletenessScore: strategy.CompletenessScore(present, scores),
	}
}
