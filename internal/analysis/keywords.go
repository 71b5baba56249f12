// Package analysis implements the deterministic ATS scoring engine: keyword
// matching, section detection, formatting and readability heuristics, score
// composition, and recommendation generation.
package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/ats-screener/internal/types"
)

// maxFrequencyBonus caps the density bonus earned from repeated keyword hits.
const maxFrequencyBonus = 0.2

var spaceRun = regexp.MustCompile(`\s+`)

// keywordVariants returns the morphological forms a keyword is matched under:
// the original, spaces removed, spaces as hyphens, and spaces as underscores.
// Duplicate forms collapse so single-word keywords are not counted repeatedly.
func keywordVariants(keyword string) []string {
	lower := strings.ToLower(keyword)
	candidates := []string{
		lower,
		spaceRun.ReplaceAllString(lower, ""),
		spaceRun.ReplaceAllString(lower, "-"),
		spaceRun.ReplaceAllString(lower, "_"),
	}

	variants := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, v := range candidates {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants
}

// countOccurrences counts word-boundary, case-insensitive hits of a single
// variant in the resume text.
func countOccurrences(resumeLower, variant string) int {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(variant) + `\b`)
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(resumeLower, -1))
}

// MatchKeywords computes the matched/missing partition for a keyword list
// against resume text, along with an occurrence-weighted density and a
// relevance score.
//
// A keyword is matched when any variant occurs at least once. Matched and
// missing preserve profile order, and together always partition the input
// list. Density is matchedCount/totalKeywords plus a frequency bonus of
// min(totalOccurrences/totalKeywords * 0.2, 0.2), where occurrences are
// summed only over matched keywords. The relevance score is the density
// scaled to 0-100 and clamped; the density field itself stays unclamped.
//
// Degenerate inputs are normal states: an empty keyword list yields zero
// density and relevance, an empty resume leaves every keyword missing.
func MatchKeywords(resumeText string, keywords []string) types.KeywordAnalysis {
	resumeLower := strings.ToLower(resumeText)

	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0)
	totalOccurrences := 0

	for _, keyword := range keywords {
		count := 0
		for _, variant := range keywordVariants(keyword) {
			count += countOccurrences(resumeLower, variant)
		}
		if count > 0 {
			matched = append(matched, keyword)
			totalOccurrences += count
		} else {
			missing = append(missing, keyword)
		}
	}

	if len(keywords) == 0 {
		return types.KeywordAnalysis{Matched: matched, Missing: missing}
	}

	baseDensity := float64(len(matched)) / float64(len(keywords))
	frequencyBonus := math.Min(float64(totalOccurrences)/float64(len(keywords))*maxFrequencyBonus, maxFrequencyBonus)
	density := baseDensity + frequencyBonus

	relevance := int(math.Round(density * 100))
	if relevance > 100 {
		relevance = 100
	}

	return types.KeywordAnalysis{
		Matched:        matched,
		Missing:        missing,
		Density:        density,
		RelevanceScore: relevance,
	}
}

// TopMissing returns up to n missing keywords joined for display in
// recommendation text.
func TopMissing(ka types.KeywordAnalysis, n int) string {
	if len(ka.Missing) < n {
		n = len(ka.Missing)
	}
	return strings.Join(ka.Missing[:n], ", ")
}
