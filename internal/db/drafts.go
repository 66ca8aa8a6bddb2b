package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// InsertDraft persists one compiler draft keyed by run identifier. A
// duplicate run identifier surfaces as ErrConflict.
func (db *DB) InsertDraft(ctx context.Context, runID string, userID int64, draftJSON []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO evidence_compiler_drafts (run_id, user_id, draft_json)
		 VALUES ($1, $2, $3)`,
		runID, userID, draftJSON,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("run %s already has a draft: %w", runID, ErrConflict)
		}
		return fmt.Errorf("failed to insert draft: %w", err)
	}
	return nil
}

// GetDraftByRunID retrieves a draft by run identifier. Returns (nil, nil)
// when no draft exists for the run.
func (db *DB) GetDraftByRunID(ctx context.Context, runID string) (*CompilerDraft, error) {
	var draft CompilerDraft
	err := db.pool.QueryRow(ctx,
		`SELECT id, run_id, user_id, draft_json, created_at
		 FROM evidence_compiler_drafts WHERE run_id = $1`,
		runID,
	).Scan(&draft.ID, &draft.RunID, &draft.UserID, &draft.DraftJSON, &draft.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return &draft, nil
}
