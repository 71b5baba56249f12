package analysis

import (
	"fmt"

	"github.com/jonathan/ats-screener/internal/types"
)

// Rule thresholds for recommendation generation.
const (
	criticalRelevance  = 60
	importantRelevance = 80
	weakFormatting     = 70
	weakReadability    = 70
	missingKeywordsMax = 5
)

// GenerateRecommendations runs the fixed rule table over the analysis
// components. Rules are evaluated in a fixed order and the output order is the
// evaluation order; every applicable rule fires on every call, with no
// suppression or deduplication. All produced recommendations carry the rules
// provenance tag.
func GenerateRecommendations(
	keywordAnalysis types.KeywordAnalysis,
	sectionAnalysis types.SectionAnalysis,
	formattingScore, readabilityScore int,
) []types.Recommendation {
	recs := make([]types.Recommendation, 0)

	if keywordAnalysis.RelevanceScore < criticalRelevance {
		recs = append(recs, types.Recommendation{
			Type:        types.TypeCritical,
			Category:    types.CategoryKeywords,
			Title:       "Add Missing Keywords",
			Description: fmt.Sprintf("Include %s to improve keyword matching", TopMissing(keywordAnalysis, missingKeywordsMax)),
			Impact:      types.ImpactHigh,
			Source:      types.SourceRules,
		})
	}

	// Independent of the rule above; both fire below 60.
	if keywordAnalysis.RelevanceScore < importantRelevance {
		recs = append(recs, types.Recommendation{
			Type:        types.TypeImportant,
			Category:    types.CategoryKeywords,
			Title:       "Optimize Keyword Density",
			Description: "Naturally incorporate more relevant keywords throughout your resume",
			Impact:      types.ImpactMedium,
			Source:      types.SourceRules,
		})
	}

	if !sectionAnalysis.Summary {
		recs = append(recs, types.Recommendation{
			Type:        types.TypeCritical,
			Category:    types.CategorySections,
			Title:       "Add Professional Summary",
			Description: "Include a compelling summary section at the top of your resume",
			Impact:      types.ImpactHigh,
			Source:      types.SourceRules,
		})
	}

	if !sectionAnalysis.Skills {
		recs = append(recs, types.Recommendation{
			Type:        types.TypeImportant,
			Category:    types.CategorySections,
			Title:       "Add Skills Section",
			Description: "Create a dedicated skills section highlighting your technical and soft skills",
			Impact:      types.ImpactHigh,
			Source:      types.SourceRules,
		})
	}

	if !sectionAnalysis.Projects {
		recs = append(recs, types.Recommendation{
			Type:        types.TypeSuggestion,
			Category:    types.CategorySections,
			Title:       "Include Projects",
			Description: "Add a projects section to showcase your practical experience",
			Impact:      types.ImpactMedium,
			Source:      types.SourceRules,
		})
	}

	if formattingScore < weakFormatting {
		recs = append(recs, types.Recommendation{
			Type:        types.TypeImportant,
			Category:    types.CategoryFormatting,
			Title:       "Improve Formatting",
			Description: "Use consistent formatting, bullet points, and clear section headers",
			Impact:      types.ImpactMedium,
			Source:      types.SourceRules,
		})
	}

	if readabilityScore < weakReadability {
		recs = append(recs, types.Recommendation{
			Type:        types.TypeSuggestion,
			Category:    types.CategoryContent,
			Title:       "Enhance Readability",
			Description: "Use shorter sentences and bullet points for better readability",
			Impact:      types.ImpactLow,
			Source:      types.SourceRules,
		})
	}

	return recs
}
