// Package types provides type definitions for structured data used throughout the ats-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// RecommendationType indicates the severity of a recommendation.
type RecommendationType string

// Recommendation severity levels
const (
	TypeCritical   RecommendationType = "critical"
	TypeImportant  RecommendationType = "important"
	TypeSuggestion RecommendationType = "suggestion"
)

// RecommendationCategory indicates which aspect of the resume a recommendation targets.
type RecommendationCategory string

// Recommendation categories
const (
	CategoryKeywords   RecommendationCategory = "keywords"
	CategoryFormatting RecommendationCategory = "formatting"
	CategorySections   RecommendationCategory = "sections"
	CategoryContent    RecommendationCategory = "content"
)

// Impact indicates the expected improvement from following a recommendation.
type Impact string

// Impact levels
const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// RecommendationSource distinguishes rule-based recommendations from externally
// sourced ones (e.g. an AI collaborator).
type RecommendationSource string

// Recommendation provenance values
const (
	SourceRules RecommendationSource = "rules"
	SourceAI    RecommendationSource = "ai"
)

// Recommendation is an immutable improvement suggestion. Duplicates are
// permitted within one result; the engine never deduplicates.
//
// Externally sourced recommendations carry the same five required fields plus
// provenance: Source "ai", AIGenerated true, and an optional Confidence in
// (0, 1]. They must pass Validate before being appended to a result.
type Recommendation struct {
	Type        RecommendationType     `json:"type"`
	Category    RecommendationCategory `json:"category"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Impact      Impact                 `json:"impact"`

	Source      RecommendationSource `json:"source,omitempty"`
	AIGenerated bool                 `json:"aiGenerated,omitempty"`
	Confidence  float64              `json:"confidence,omitempty"`
}

// Validate checks the five required fields against their allowed values.
func (r Recommendation) Validate() error {
	switch r.Type {
	case TypeCritical, TypeImportant, TypeSuggestion:
	default:
		return fmt.Errorf("invalid recommendation type: %q", r.Type)
	}
	switch r.Category {
	case CategoryKeywords, CategoryFormatting, CategorySections, CategoryContent:
	default:
		return fmt.Errorf("invalid recommendation category: %q", r.Category)
	}
	switch r.Impact {
	case ImpactHigh, ImpactMedium, ImpactLow:
	default:
		return fmt.Errorf("invalid recommendation impact: %q", r.Impact)
	}
	if r.Title == "" {
		return fmt.Errorf("recommendation title is required")
	}
	if r.Description == "" {
		return fmt.Errorf("recommendation description is required")
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence out of range: %v", r.Confidence)
	}
	return nil
}

// IsCritical reports whether the recommendation has critical severity.
func (r Recommendation) IsCritical() bool {
	return r.Type == TypeCritical
}
