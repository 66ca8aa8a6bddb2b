package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// NewEvidence holds the fields for an evidence insert.
type NewEvidence struct {
	UserID           int64
	Type             string
	Title            string
	Description      string
	CredibilityScore int
	SkillTags        []string
	ShareToken       string
}

// InsertEvidence creates an evidence record and returns it. A duplicate
// share token surfaces as ErrConflict.
func (db *DB) InsertEvidence(ctx context.Context, input NewEvidence) (*Evidence, error) {
	tagsJSON, err := json.Marshal(input.SkillTags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skill tags: %w", err)
	}

	var ev Evidence
	err = db.pool.QueryRow(ctx,
		`INSERT INTO evidence (user_id, type, title, description, credibility_score, skill_tags, is_shareable, share_token)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, FALSE, $7)
		 RETURNING id, user_id, type, title, COALESCE(description, ''), submission_date, is_shareable, share_token, credibility_score, created_at`,
		input.UserID, input.Type, input.Title, input.Description, input.CredibilityScore, tagsJSON, input.ShareToken,
	).Scan(&ev.ID, &ev.UserID, &ev.Type, &ev.Title, &ev.Description, &ev.SubmissionDate,
		&ev.IsShareable, &ev.ShareToken, &ev.CredibilityScore, &ev.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("share token already exists: %w", ErrConflict)
		}
		return nil, fmt.Errorf("failed to insert evidence: %w", err)
	}
	ev.SkillTags = input.SkillTags
	return &ev, nil
}

// ListEvidenceByUser retrieves a user's evidence, oldest first.
func (db *DB) ListEvidenceByUser(ctx context.Context, userID int64) ([]Evidence, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, type, title, COALESCE(description, ''), submission_date,
		        is_shareable, COALESCE(share_token, ''), credibility_score, skill_tags, created_at
		 FROM evidence WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}
	defer rows.Close()

	var items []Evidence
	for rows.Next() {
		ev, err := scanEvidence(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *ev)
	}
	return items, nil
}

// SetEvidenceShareable toggles an evidence record's shareability.
// Returns (nil, nil) when the record does not exist.
func (db *DB) SetEvidenceShareable(ctx context.Context, evidenceID int64, shareable bool) (*Evidence, error) {
	rows, err := db.pool.Query(ctx,
		`UPDATE evidence SET is_shareable = $2 WHERE id = $1
		 RETURNING id, user_id, type, title, COALESCE(description, ''), submission_date,
		           is_shareable, COALESCE(share_token, ''), credibility_score, skill_tags, created_at`,
		evidenceID, shareable,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update evidence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}
	return scanEvidence(rows)
}

// GetShareableEvidenceByToken retrieves evidence by share token, only if
// it is currently shareable. Returns (nil, nil) otherwise.
func (db *DB) GetShareableEvidenceByToken(ctx context.Context, token string) (*Evidence, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, type, title, COALESCE(description, ''), submission_date,
		        is_shareable, COALESCE(share_token, ''), credibility_score, skill_tags, created_at
		 FROM evidence WHERE share_token = $1 AND is_shareable = TRUE`,
		token,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get shared evidence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}
	return scanEvidence(rows)
}

// scanEvidence reads one evidence row, decoding the skill-tag JSON blob.
func scanEvidence(rows pgx.Rows) (*Evidence, error) {
	var ev Evidence
	var tagsJSON []byte
	if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Type, &ev.Title, &ev.Description, &ev.SubmissionDate,
		&ev.IsShareable, &ev.ShareToken, &ev.CredibilityScore, &tagsJSON, &ev.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan evidence: %w", err)
	}
	ev.SkillTags = []string{}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &ev.SkillTags); err != nil {
			return nil, fmt.Errorf("failed to decode skill tags: %w", err)
		}
	}
	return &ev, nil
}
