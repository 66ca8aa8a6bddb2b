package db

import (
	"context"
	"fmt"
)

// InsertCVGeneration stores the audit copy of one CV-generation request.
func (db *DB) InsertCVGeneration(ctx context.Context, userID int64, targetRole, targetCompany string, structureJSON []byte) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cv_generations (user_id, target_role, target_company, structure_json)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 RETURNING id`,
		userID, targetRole, targetCompany, structureJSON,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cv generation: %w", err)
	}
	return id, nil
}
