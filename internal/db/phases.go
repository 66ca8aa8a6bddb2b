package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetPhaseBySlug retrieves a career phase by slug. Returns (nil, nil)
// when the slug is unknown.
func (db *DB) GetPhaseBySlug(ctx context.Context, slug string) (*CareerPhase, error) {
	var phase CareerPhase
	var description *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, slug, name, description FROM career_phases WHERE slug = $1`,
		slug,
	).Scan(&phase.ID, &phase.Slug, &phase.Name, &description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get phase: %w", err)
	}
	if description != nil {
		phase.Description = *description
	}
	return &phase, nil
}

// UpsertPhase inserts or refreshes a career-phase reference row. Used by
// seeding.
func (db *DB) UpsertPhase(ctx context.Context, slug, name, description string) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO career_phases (slug, name, description) VALUES ($1, $2, $3)
		 ON CONFLICT (slug) DO UPDATE SET name = $2, description = $3
		 RETURNING id`,
		slug, name, description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert phase %s: %w", slug, err)
	}
	return id, nil
}

// InsertObjective adds a phase objective. Used by seeding.
func (db *DB) InsertObjective(ctx context.Context, phaseID int64, text string, priority int, category string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO objectives (phase_id, objective_text, priority, category)
		 VALUES ($1, $2, $3, $4)`,
		phaseID, text, priority, category,
	)
	if err != nil {
		return fmt.Errorf("failed to insert objective: %w", err)
	}
	return nil
}

// ListObjectivesByPhase retrieves a phase's objectives ordered by
// priority, capped at limit.
func (db *DB) ListObjectivesByPhase(ctx context.Context, phaseID int64, limit int) ([]Objective, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, phase_id, objective_text, priority, COALESCE(category, '')
		 FROM objectives WHERE phase_id = $1 ORDER BY priority LIMIT $2`,
		phaseID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	defer rows.Close()

	var objectives []Objective
	for rows.Next() {
		var o Objective
		if err := rows.Scan(&o.ID, &o.PhaseID, &o.ObjectiveText, &o.Priority, &o.Category); err != nil {
			return nil, fmt.Errorf("failed to scan objective: %w", err)
		}
		objectives = append(objectives, o)
	}
	return objectives, nil
}
