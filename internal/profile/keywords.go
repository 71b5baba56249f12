package profile

import (
	"sort"
	"strings"
	"unicode"
)

// MaxExtractedKeywords caps the keyword list synthesized from a job description.
const MaxExtractedKeywords = 15

// stopWords are never treated as keywords regardless of frequency.
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "a": true, "an": true,
}

// ExtractKeywords derives a keyword list from a free-text job description by
// frequency counting: lowercase, punctuation stripped to spaces, tokens of
// length <= 2 and stop words dropped, top 15 by count. Ties keep first-seen
// order from the counting pass, so extraction is fully deterministic.
//
// Extraction is frequency-based, not semantic.
func ExtractKeywords(jobDescription string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, jobDescription)

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= 2 || stopWords[token] {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	// Stable sort over first-seen order: equal counts keep insertion order.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > MaxExtractedKeywords {
		order = order[:MaxExtractedKeywords]
	}
	return order
}
