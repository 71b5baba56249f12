package analysis

import "strings"

// Readability thresholds. Sentences longer than maxAvgWords read as dense
// prose; shorter than minAvgWords as fragmentary.
const (
	maxAvgWords      = 25.0
	minAvgWords      = 8.0
	bulletBonusCount = 5
)

// ScoreReadability scores the resume from sentence-length statistics and
// bullet usage. Text is split into sentences on . ! ? runs and into words on
// whitespace. A resume with no sentences is treated as average zero, which
// lands on the too-short penalty path rather than dividing by zero. More than
// five bullet characters earns a small bonus. Result is clamped to [0, 100].
func ScoreReadability(resumeText string) int {
	sentences := 0
	for _, s := range strings.FieldsFunc(resumeText, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	words := len(strings.Fields(resumeText))

	avgWordsPerSentence := 0.0
	if sentences > 0 {
		avgWordsPerSentence = float64(words) / float64(sentences)
	}

	score := 100
	if avgWordsPerSentence > maxAvgWords {
		score -= 20
	}
	if avgWordsPerSentence < minAvgWords {
		score -= 15
	}

	bullets := strings.Count(resumeText, "•") +
		strings.Count(resumeText, "-") +
		strings.Count(resumeText, "*")
	if bullets > bulletBonusCount {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
