// Package profile provides the job profile registry and ad-hoc profile
// synthesis from free-text job descriptions.
package profile

import (
	"github.com/jonathan/ats-screener/internal/types"
)

// DefaultProfileID is the permissive fallback used when an unknown profile id
// is requested without a custom job description. Documented behavior, not an
// error path.
const DefaultProfileID = "software-engineer"

// CustomProfileID marks profiles synthesized from a job description.
const CustomProfileID = "custom"

// templates is the static catalog of job profiles, defined at process start.
var templates = map[string]types.JobProfile{
	"software-engineer": {
		ID: "software-engineer",
		Keywords: []string{
			"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java",
			"Git", "AWS", "Docker", "API", "REST", "GraphQL", "MongoDB",
			"PostgreSQL", "Agile", "Scrum", "CI/CD", "Testing",
		},
		RequiredSections: []string{
			types.SectionSummary, types.SectionSkills,
			types.SectionExperience, types.SectionEducation,
		},
	},
	"data-analyst": {
		ID: "data-analyst",
		Keywords: []string{
			"SQL", "Python", "R", "Excel", "Tableau", "Power BI", "Statistics",
			"Machine Learning", "Data Visualization", "ETL", "Analytics",
			"Pandas", "NumPy", "Jupyter", "A/B Testing",
		},
		RequiredSections: []string{
			types.SectionSummary, types.SectionSkills,
			types.SectionExperience, types.SectionEducation, types.SectionProjects,
		},
	},
	"marketing-manager": {
		ID: "marketing-manager",
		Keywords: []string{
			"Digital Marketing", "SEO", "SEM", "Google Analytics",
			"Social Media", "Content Marketing", "Campaign Management",
			"Lead Generation", "CRM", "Email Marketing", "Brand Management",
		},
		RequiredSections: []string{
			types.SectionSummary, types.SectionSkills,
			types.SectionExperience, types.SectionEducation,
		},
	},
	"product-manager": {
		ID: "product-manager",
		Keywords: []string{
			"Product Strategy", "Roadmap", "Stakeholder Management",
			"User Research", "Analytics", "Agile", "Scrum", "A/B Testing",
			"KPIs", "Market Research", "Product Launch", "UX/UI",
		},
		RequiredSections: []string{
			types.SectionSummary, types.SectionSkills,
			types.SectionExperience, types.SectionEducation, types.SectionProjects,
		},
	},
	"sales-representative": {
		ID: "sales-representative",
		Keywords: []string{
			"Sales", "Lead Generation", "CRM", "Salesforce", "Cold Calling",
			"Negotiation", "Client Relationships", "Pipeline Management",
			"Quota Achievement", "B2B", "B2C",
		},
		RequiredSections: []string{
			types.SectionSummary, types.SectionSkills,
			types.SectionExperience, types.SectionEducation,
		},
	},
	"student": {
		ID: "student",
		Keywords: []string{
			"Education", "GPA", "Projects", "Internship", "Leadership",
			"Teamwork", "Communication", "Problem Solving", "Research",
			"Volunteer", "Extracurricular", "Coursework",
		},
		RequiredSections: []string{
			types.SectionEducation, types.SectionSkills, types.SectionProjects,
		},
	},
}

// IDs returns the known profile ids in no particular order.
func IDs() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	return ids
}

// Lookup returns the template for the given id, if one exists.
func Lookup(id string) (types.JobProfile, bool) {
	p, ok := templates[id]
	return p, ok
}

// Resolve picks the scoring baseline for an analysis request. A non-empty
// custom job description wins and produces a synthesized profile; otherwise
// the id is looked up in the registry, falling back to the default profile
// for unknown ids rather than failing.
func Resolve(id, customJobDescription string) types.JobProfile {
	if customJobDescription != "" {
		return Synthesize(customJobDescription)
	}
	if p, ok := templates[id]; ok {
		return p
	}
	return templates[DefaultProfileID]
}

// Synthesize builds an ad-hoc profile from a job description. The keyword list
// comes from frequency extraction; required sections default to the core four
// since a free-text description carries no section expectations.
func Synthesize(jobDescription string) types.JobProfile {
	return types.JobProfile{
		ID:       CustomProfileID,
		Keywords: ExtractKeywords(jobDescription),
		RequiredSections: []string{
			types.SectionSummary, types.SectionSkills,
			types.SectionExperience, types.SectionEducation,
		},
	}
}
