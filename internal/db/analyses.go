package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-screener/internal/types"
)

// SaveAnalysis persists one screening result for a user and returns the row ID.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, profileID string, result types.AnalysisResult) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, candidate_name, profile_id, overall_score, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, result.CandidateName, profileID, result.ATSScore.Overall, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves one analysis owned by the user. Returns nil when no
// row exists; ownership is part of the lookup so users cannot read each
// other's analyses.
func (db *DB) GetAnalysis(ctx context.Context, userID, analysisID uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, candidate_name, profile_id, overall_score, result, created_at
		 FROM analyses WHERE id = $1 AND user_id = $2`,
		analysisID, userID,
	).Scan(&a.ID, &a.UserID, &a.CandidateName, &a.ProfileID, &a.OverallScore, &a.Result, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// AnalysisFilters holds optional filters for listing analyses.
type AnalysisFilters struct {
	ProfileID string
	MinScore  int
	Limit     int
}

// ListAnalyses retrieves a user's saved analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, filters AnalysisFilters) ([]AnalysisSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, candidate_name, profile_id, overall_score, created_at
		FROM analyses WHERE user_id = $1`
	args := []any{userID}
	argNum := 2

	if filters.ProfileID != "" {
		query += fmt.Sprintf(" AND profile_id = $%d", argNum)
		args = append(args, filters.ProfileID)
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND overall_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		if err := rows.Scan(&a.ID, &a.CandidateName, &a.ProfileID, &a.OverallScore, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// DeleteAnalysis removes one analysis owned by the user.
func (db *DB) DeleteAnalysis(ctx context.Context, userID, analysisID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM analyses WHERE id = $1 AND user_id = $2`,
		analysisID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", analysisID)
	}
	return nil
}
