package analysis

import "strings"

// Formatting deduction thresholds.
const (
	minResumeChars = 500
	maxResumeChars = 5000
	minResumeLines = 10
)

// ScoreFormatting applies structural quality heuristics to the raw resume
// text. Starts at 100 and only deducts: short or bloated length, no
// capitalization, no digits (dates, metrics), no line breaks, too few lines.
// Floored at zero, so the result is always in [0, 100].
func ScoreFormatting(resumeText string) int {
	score := 100

	if len(resumeText) < minResumeChars {
		score -= 20
	}
	if len(resumeText) > maxResumeChars {
		score -= 10
	}
	if !strings.ContainsFunc(resumeText, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		score -= 15
	}
	if !strings.ContainsFunc(resumeText, func(r rune) bool { return r >= '0' && r <= '9' }) {
		score -= 10
	}
	if !strings.Contains(resumeText, "\n") {
		score -= 20
	}
	if len(strings.Split(resumeText, "\n")) < minResumeLines {
		score -= 15
	}

	if score < 0 {
		score = 0
	}
	return score
}
