package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ListProblemTemplates retrieves up to limit templates for a role type.
// Difficulty filtering is the caller's job: the selection rule falls back
// to any-difficulty candidates when the exact difficulty has none.
func (db *DB) ListProblemTemplates(ctx context.Context, roleType string, limit int) ([]ProblemTemplateRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, role_type, difficulty, template_text, rubric_json
		 FROM interview_prep_problems WHERE role_type = $1 ORDER BY id LIMIT $2`,
		roleType, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list problem templates: %w", err)
	}
	defer rows.Close()

	var templates []ProblemTemplateRow
	for rows.Next() {
		var t ProblemTemplateRow
		if err := rows.Scan(&t.ID, &t.RoleType, &t.Difficulty, &t.TemplateText, &t.RubricJSON); err != nil {
			return nil, fmt.Errorf("failed to scan problem template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// InsertProblemTemplate adds a problem template. Used by seeding.
func (db *DB) InsertProblemTemplate(ctx context.Context, roleType, difficulty, templateText string, rubricJSON []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO interview_prep_problems (role_type, difficulty, template_text, rubric_json)
		 VALUES ($1, $2, $3, $4)`,
		roleType, difficulty, templateText, rubricJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert problem template: %w", err)
	}
	return nil
}

// NewSession holds the fields for an interview-session insert.
type NewSession struct {
	UserID            int64
	RoleType          string
	Company           string
	Difficulty        string
	ProblemTemplateID int64
	ProblemStatement  string
	RubricJSON        []byte
}

// InsertSession creates a session in awaiting_submission and returns its
// ID.
func (db *DB) InsertSession(ctx context.Context, input NewSession) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interview_prep_sessions
		   (user_id, role_type, company, difficulty, problem_template_id, problem_statement, rubric_json, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)
		 RETURNING id`,
		input.UserID, input.RoleType, input.Company, input.Difficulty,
		input.ProblemTemplateID, input.ProblemStatement, input.RubricJSON, SessionAwaitingSubmission,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert session: %w", err)
	}
	return id, nil
}

// GetSession retrieves a session by ID. Returns (nil, nil) when absent.
func (db *DB) GetSession(ctx context.Context, sessionID int64) (*InterviewSession, error) {
	var s InterviewSession
	var company, solution, feedback *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, role_type, company, difficulty, problem_template_id,
		        problem_statement, rubric_json, solution_text, scores_json, feedback_text, status, created_at
		 FROM interview_prep_sessions WHERE id = $1`,
		sessionID,
	).Scan(&s.ID, &s.UserID, &s.RoleType, &company, &s.Difficulty, &s.ProblemTemplateID,
		&s.ProblemStatement, &s.RubricJSON, &solution, &s.ScoresJSON, &feedback, &s.Status, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if company != nil {
		s.Company = *company
	}
	if solution != nil {
		s.SolutionText = *solution
	}
	if feedback != nil {
		s.FeedbackText = *feedback
	}
	return &s, nil
}

// ScoreSession records a solution, its scores, and feedback, moving the
// session to scored. The update is conditional on the session still
// awaiting submission; it reports false when the session was already
// scored, leaving the first submission untouched.
func (db *DB) ScoreSession(ctx context.Context, sessionID int64, solution string, scoresJSON []byte, feedback string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE interview_prep_sessions
		 SET status = $2, solution_text = $3, scores_json = $4, feedback_text = $5
		 WHERE id = $1 AND status = $6`,
		sessionID, SessionScored, solution, scoresJSON, feedback, SessionAwaitingSubmission,
	)
	if err != nil {
		return false, fmt.Errorf("failed to score session: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
