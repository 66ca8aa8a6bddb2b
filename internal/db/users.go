package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetUserByEmail retrieves a user by email. Returns (nil, nil) when no
// such user exists.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	var phase *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, career_phase, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &phase, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if phase != nil {
		user.CareerPhase = *phase
	}
	return &user, nil
}

// UpsertUserPhase creates the user if absent and records their career
// phase, returning the stored user.
func (db *DB) UpsertUserPhase(ctx context.Context, email, phase string) (*User, error) {
	var user User
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (email, career_phase) VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET career_phase = $2
		 RETURNING id, email, career_phase, created_at`,
		email, phase,
	).Scan(&user.ID, &user.Email, &user.CareerPhase, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user phase: %w", err)
	}
	return &user, nil
}

// GetGitHubIntegration retrieves the stored credential for a user.
// Returns (nil, nil) when the account is not linked.
func (db *DB) GetGitHubIntegration(ctx context.Context, userID int64) (*GitHubIntegration, error) {
	var gh GitHubIntegration
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, access_token, created_at, updated_at
		 FROM github_integrations WHERE user_id = $1`,
		userID,
	).Scan(&gh.ID, &gh.UserID, &gh.AccessToken, &gh.CreatedAt, &gh.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get github integration: %w", err)
	}
	return &gh, nil
}

// UpsertGitHubIntegration stores or refreshes a user's access token.
func (db *DB) UpsertGitHubIntegration(ctx context.Context, userID int64, accessToken string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO github_integrations (user_id, access_token)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET access_token = $2, updated_at = NOW()`,
		userID, accessToken,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert github integration: %w", err)
	}
	return nil
}
