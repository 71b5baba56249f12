// Package types provides type definitions for structured data used throughout the ats-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// AnalysisVersion tags results with the scoring algorithm generation.
// Informational only; bumped when the weighting scheme changes.
const AnalysisVersion = 2

// AnalysisResult is the full output of analyzing one resume against one job
// profile. Downstream consumers (storage, export, UI) destructure these fields
// directly, so the JSON shape is a stable contract.
type AnalysisResult struct {
	CandidateID     string           `json:"candidateId"`
	CandidateName   string           `json:"candidateName"`
	CandidateRole   string           `json:"candidateRole"`
	ATSScore        ATSScore         `json:"atsScore"`
	KeywordAnalysis KeywordAnalysis  `json:"keywordAnalysis"`
	SectionAnalysis SectionAnalysis  `json:"sectionAnalysis"`
	Recommendations []Recommendation `json:"recommendations"`

	// Rank is set only after the result passes through the ranker.
	// 1-based and dense; zero means unranked.
	Rank int `json:"rank,omitempty"`

	AnalysisDate time.Time `json:"analysisDate"`
	Version      int       `json:"version"`
}

// CriticalCount returns the number of critical recommendations attached to the result.
func (r AnalysisResult) CriticalCount() int {
	n := 0
	for _, rec := range r.Recommendations {
		if rec.IsCritical() {
			n++
		}
	}
	return n
}
