package ai

import (
	"regexp"
	"strings"
)

// rolePatterns match common job titles inside a description, most specific
// first.
var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(senior|junior|lead|principal|staff)\s+(software\s+)?(engineer|developer|programmer)`),
	regexp.MustCompile(`(?i)data\s+(scientist|analyst|engineer)`),
	regexp.MustCompile(`(?i)(product|project|program)\s+manager`),
	regexp.MustCompile(`(?i)(marketing|sales|business)\s+(manager|director|specialist)`),
	regexp.MustCompile(`(?i)(ui|ux|frontend|backend|fullstack|devops)\s+(developer|engineer)`),
	regexp.MustCompile(`(?i)(cloud|aws|azure|gcp)\s+(architect|engineer|specialist)`),
	regexp.MustCompile(`(?i)(machine\s+learning|ai|artificial\s+intelligence)\s+(engineer|scientist)`),
	regexp.MustCompile(`(?i)(cybersecurity|security)\s+(analyst|engineer|specialist)`),
	regexp.MustCompile(`(?i)(qa|quality\s+assurance|test)\s+(engineer|analyst)`),
	regexp.MustCompile(`(?i)(system|network|infrastructure)\s+(administrator|engineer)`),
}

var roleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "scientist", "architect",
	"specialist", "coordinator", "consultant", "director", "lead",
}

// jobRole extracts a human-readable role title from a job description.
func jobRole(jobDescription string) string {
	for _, pattern := range rolePatterns {
		if match := pattern.FindString(jobDescription); match != "" {
			return match
		}
	}
	lower := strings.ToLower(jobDescription)
	for _, keyword := range roleKeywords {
		if strings.Contains(lower, keyword) {
			return strings.ToUpper(keyword[:1]) + keyword[1:]
		}
	}
	return "Professional"
}

var industryPatterns = []struct {
	pattern  *regexp.Regexp
	industry string
}{
	{regexp.MustCompile(`(?i)fintech|financial|banking|insurance`), "Finance"},
	{regexp.MustCompile(`(?i)healthcare|medical|pharmaceutical|biotech`), "Healthcare"},
	{regexp.MustCompile(`(?i)e-commerce|retail|shopping|marketplace`), "E-commerce"},
	{regexp.MustCompile(`(?i)education|edtech|learning|academic`), "Education"},
	{regexp.MustCompile(`(?i)automotive|transportation|logistics`), "Transportation"},
	{regexp.MustCompile(`(?i)real\s+estate|property|construction`), "Real Estate"},
	{regexp.MustCompile(`(?i)entertainment|media|gaming|streaming`), "Entertainment"},
	{regexp.MustCompile(`(?i)government|public\s+sector|civic`), "Government"},
	{regexp.MustCompile(`(?i)non-profit|charity|social\s+impact`), "Non-profit"},
	{regexp.MustCompile(`(?i)consulting|advisory|professional\s+services`), "Consulting"},
}

// jobIndustry guesses the industry named in a job description, defaulting to
// Technology.
func jobIndustry(jobDescription string) string {
	for _, entry := range industryPatterns {
		if entry.pattern.MatchString(jobDescription) {
			return entry.industry
		}
	}
	return "Technology"
}
