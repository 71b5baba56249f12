package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/ats-screener/internal/pipeline"
	"github.com/jonathan/ats-screener/internal/schemas"
	"github.com/jonathan/ats-screener/internal/types"
)

// maxRecommendations caps how many AI recommendations attach to one result.
const maxRecommendations = 10

// Recommender turns Gemini output into validated recommendations. It
// implements pipeline.RecommendationSource.
type Recommender struct {
	client Client
}

// NewRecommender wraps a generation client.
func NewRecommender(client Client) *Recommender {
	return &Recommender{client: client}
}

// batchResponse mirrors the JSON contract the model is asked for.
type batchResponse struct {
	Recommendations []struct {
		Type        string  `json:"type"`
		Category    string  `json:"category"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Impact      string  `json:"impact"`
		Confidence  float64 `json:"confidence"`
	} `json:"recommendations"`
}

// Recommend generates role-tailored recommendations for one resume. The raw
// model output is schema-checked before any entry is converted; entries that
// still fail field validation are dropped rather than surfaced.
func (r *Recommender) Recommend(ctx context.Context, resume pipeline.Resume, jobProfile types.JobProfile) ([]types.Recommendation, error) {
	raw, err := r.client.GenerateJSON(ctx, buildPrompt(resume, jobProfile))
	if err != nil {
		return nil, fmt.Errorf("recommendation generation failed: %w", err)
	}

	if err := schemas.ValidateRecommendationBatch(raw); err != nil {
		return nil, fmt.Errorf("model output rejected: %w", err)
	}

	var batch batchResponse
	if err := json.Unmarshal([]byte(raw), &batch); err != nil {
		return nil, fmt.Errorf("failed to decode model output: %w", err)
	}

	recs := make([]types.Recommendation, 0, len(batch.Recommendations))
	for _, entry := range batch.Recommendations {
		if len(recs) == maxRecommendations {
			break
		}
		rec := types.Recommendation{
			Type:        types.RecommendationType(entry.Type),
			Category:    normalizeCategory(entry.Category),
			Title:       entry.Title,
			Description: entry.Description,
			Impact:      types.Impact(entry.Impact),
			Source:      types.SourceAI,
			AIGenerated: true,
			Confidence:  entry.Confidence,
		}
		if rec.Validate() != nil {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// normalizeCategory maps model-invented categories (ai_enhanced,
// role_specific, ...) onto the content bucket.
func normalizeCategory(category string) types.RecommendationCategory {
	switch c := types.RecommendationCategory(category); c {
	case types.CategoryKeywords, types.CategoryFormatting, types.CategorySections, types.CategoryContent:
		return c
	default:
		return types.CategoryContent
	}
}

func buildPrompt(resume pipeline.Resume, jobProfile types.JobProfile) string {
	description := strings.Join(jobProfile.Keywords, ", ")
	role := resume.CandidateRole
	if role == "" {
		role = jobRole(description)
	}
	industry := jobIndustry(description)

	var sb strings.Builder
	sb.WriteString("You are an expert resume analyzer and career coach specializing in ")
	sb.WriteString(industry)
	sb.WriteString(" roles. Analyze the following resume for a ")
	sb.WriteString(role)
	sb.WriteString(" position and provide specific, actionable recommendations tailored to this role.\n\n")

	sb.WriteString("RESUME:\n")
	sb.WriteString(resume.Text)
	sb.WriteString("\n\n")

	if resume.CandidateName != "" {
		sb.WriteString("CANDIDATE: ")
		sb.WriteString(resume.CandidateName)
		sb.WriteString("\n")
	}
	sb.WriteString("TARGET ROLE: ")
	sb.WriteString(role)
	sb.WriteString("\nINDUSTRY: ")
	sb.WriteString(industry)
	sb.WriteString("\n\nJOB REQUIREMENTS IDENTIFIED:\n")
	sb.WriteString(description)
	sb.WriteString("\n\n")

	sb.WriteString("Provide 6-10 specific, actionable recommendations. ")
	sb.WriteString("Return ONLY valid JSON matching this exact structure, no markdown:\n")
	sb.WriteString(`{
  "recommendations": [
    {
      "type": "critical|important|suggestion",
      "category": "keywords|formatting|sections|content",
      "title": "Role-specific title",
      "description": "Detailed description with specific actions for this role",
      "impact": "high|medium|low",
      "confidence": 0.95
    }
  ]
}`)
	return sb.String()
}
