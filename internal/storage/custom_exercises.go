package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
)

// InsertCustomExercise persists a user-defined catalog entry.
func (db *DB) InsertCustomExercise(ctx context.Context, ex *models.CustomExercise) error {
	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO custom_exercises (id, name, body_part, target, equipment, notes, date_added)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ex.ID.String(), ex.Name, ex.BodyPart, ex.Target, ex.Equipment, ex.Notes,
		ex.DateAdded.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("inserting custom exercise: %w", err)
	}
	return nil
}

// QueryCustomExercises lists custom exercises, most recently added first.
func (db *DB) QueryCustomExercises(ctx context.Context) ([]models.CustomExercise, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, name, body_part, target, equipment, notes, date_added
		 FROM custom_exercises ORDER BY date_added DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying custom exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.CustomExercise
	for rows.Next() {
		var id, added string
		var ex models.CustomExercise
		if err := rows.Scan(&id, &ex.Name, &ex.BodyPart, &ex.Target, &ex.Equipment, &ex.Notes, &added); err != nil {
			return nil, fmt.Errorf("scanning custom exercise: %w", err)
		}
		ex.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parsing custom exercise id: %w", err)
		}
		ex.DateAdded, err = time.Parse(time.RFC3339Nano, added)
		if err != nil {
			return nil, fmt.Errorf("parsing date_added: %w", err)
		}
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}

// DeleteCustomExercise removes a custom exercise by id.
func (db *DB) DeleteCustomExercise(ctx context.Context, id uuid.UUID) error {
	res, err := db.sql.ExecContext(ctx,
		`DELETE FROM custom_exercises WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("deleting custom exercise: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
