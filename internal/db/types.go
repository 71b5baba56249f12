package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns saved analyses.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Analysis is one persisted screening result. Result holds the serialized
// AnalysisResult exactly as the engine produced it.
type Analysis struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	CandidateName string    `json:"candidate_name"`
	ProfileID     string    `json:"profile_id"`
	OverallScore  int       `json:"overall_score"`
	Result        []byte    `json:"result"`
	CreatedAt     time.Time `json:"created_at"`
}

// AnalysisSummary is a lightweight view for listing a user's analyses.
type AnalysisSummary struct {
	ID            uuid.UUID `json:"id"`
	CandidateName string    `json:"candidate_name"`
	ProfileID     string    `json:"profile_id"`
	OverallScore  int       `json:"overall_score"`
	CreatedAt     time.Time `json:"created_at"`
}

// RankingSnapshot records one whole-batch ranking run: the ranked results and
// the derived insights, both as serialized JSON.
type RankingSnapshot struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ProfileID    string    `json:"profile_id"`
	TotalResumes int       `json:"total_resumes"`
	Results      []byte    `json:"results"`
	Insights     []byte    `json:"insights"`
	CreatedAt    time.Time `json:"created_at"`
}
