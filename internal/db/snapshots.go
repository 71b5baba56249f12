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

// SaveRankingSnapshot persists one batch ranking run for a user and returns
// the row ID.
func (db *DB) SaveRankingSnapshot(ctx context.Context, userID uuid.UUID, profileID string, ranked []types.AnalysisResult, insights types.RankingInsights) (uuid.UUID, error) {
	resultsJSON, err := json.Marshal(ranked)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal ranked results: %w", err)
	}
	insightsJSON, err := json.Marshal(insights)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal insights: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO ranking_snapshots (user_id, profile_id, total_resumes, results, insights)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, profileID, len(ranked), resultsJSON, insightsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save ranking snapshot: %w", err)
	}
	return id, nil
}

// GetRankingSnapshot retrieves one snapshot owned by the user. Returns nil
// when no row exists.
func (db *DB) GetRankingSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) (*RankingSnapshot, error) {
	var s RankingSnapshot
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, profile_id, total_resumes, results, insights, created_at
		 FROM ranking_snapshots WHERE id = $1 AND user_id = $2`,
		snapshotID, userID,
	).Scan(&s.ID, &s.UserID, &s.ProfileID, &s.TotalResumes, &s.Results, &s.Insights, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ranking snapshot: %w", err)
	}
	return &s, nil
}

// ListRankingSnapshots retrieves a user's snapshots, newest first, without
// the serialized payloads.
func (db *DB) ListRankingSnapshots(ctx context.Context, userID uuid.UUID, limit int) ([]RankingSnapshot, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, profile_id, total_resumes, created_at
		 FROM ranking_snapshots WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranking snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []RankingSnapshot
	for rows.Next() {
		var s RankingSnapshot
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProfileID, &s.TotalResumes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ranking snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

// DeleteRankingSnapshot removes one snapshot owned by the user.
func (db *DB) DeleteRankingSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM ranking_snapshots WHERE id = $1 AND user_id = $2`,
		snapshotID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete ranking snapshot: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("ranking snapshot not found: %s", snapshotID)
	}
	return nil
}
