package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
)

// SortOrder controls list direction for history queries.
type SortOrder string

const (
	Newest SortOrder = "newest"
	Oldest SortOrder = "oldest"
)

// InsertSession writes a full session tree (session, exercises, sets) in
// one transaction. Either everything lands or nothing does.
func (db *DB) InsertSession(ctx context.Context, s *models.WorkoutSession) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workout_sessions (id, title, date, is_template, is_completed)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID.String(), s.Title, s.Date.UTC().Format(timeLayout), s.IsTemplate, s.IsCompleted)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	for pos, ex := range s.Exercises {
		var supersetID *string
		if ex.SupersetID != nil {
			v := ex.SupersetID.String()
			supersetID = &v
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO exercise_logs (id, session_id, position, name, superset_id)
			 VALUES (?, ?, ?, ?, ?)`,
			ex.ID.String(), s.ID.String(), pos, ex.Name, supersetID)
		if err != nil {
			return fmt.Errorf("inserting exercise %q: %w", ex.Name, err)
		}

		for _, set := range ex.Sets {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO set_logs (id, exercise_id, set_number, reps, weight)
				 VALUES (?, ?, ?, ?, ?)`,
				set.ID.String(), ex.ID.String(), set.SetNumber, set.Reps, set.Weight)
			if err != nil {
				return fmt.Errorf("inserting set %d of %q: %w", set.SetNumber, ex.Name, err)
			}
		}
	}

	return tx.Commit()
}

// UpdateSessionCompleted supports the in-place completion strategy: it
// rewrites the session's flags and date and the logged values of its
// existing sets, all in one transaction.
func (db *DB) UpdateSessionCompleted(ctx context.Context, s *models.WorkoutSession) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE workout_sessions SET date = ?, is_template = ?, is_completed = ? WHERE id = ?`,
		s.Date.UTC().Format(timeLayout), s.IsTemplate, s.IsCompleted, s.ID.String())
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			_, err = tx.ExecContext(ctx,
				`UPDATE set_logs SET reps = ?, weight = ? WHERE id = ?`,
				set.Reps, set.Weight, set.ID.String())
			if err != nil {
				return fmt.Errorf("updating set %s: %w", set.ID, err)
			}
		}
	}

	return tx.Commit()
}

// GetSession loads a full session: exercises in planning order, sets in
// set-number order.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*models.WorkoutSession, error) {
	row := db.sql.QueryRowContext(ctx,
		`SELECT id, title, date, is_template, is_completed FROM workout_sessions WHERE id = ?`,
		id.String())

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}

	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, name, superset_id FROM exercise_logs
		 WHERE session_id = ? ORDER BY position ASC`,
		id.String())
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var exID, name string
		var supersetID *string
		if err := rows.Scan(&exID, &name, &supersetID); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		parsedEx, err := uuid.Parse(exID)
		if err != nil {
			return nil, fmt.Errorf("parsing exercise id: %w", err)
		}
		ex := models.ExerciseLog{ID: parsedEx, Name: name}
		if supersetID != nil {
			sid, err := uuid.Parse(*supersetID)
			if err != nil {
				return nil, fmt.Errorf("parsing superset id: %w", err)
			}
			ex.SupersetID = &sid
		}
		s.Exercises = append(s.Exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range s.Exercises {
		sets, err := db.setsForExercise(ctx, s.Exercises[i].ID)
		if err != nil {
			return nil, err
		}
		s.Exercises[i].Sets = sets
	}

	return s, nil
}

func (db *DB) setsForExercise(ctx context.Context, exerciseID uuid.UUID) ([]models.SetLog, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, set_number, reps, weight FROM set_logs
		 WHERE exercise_id = ? ORDER BY set_number ASC`,
		exerciseID.String())
	if err != nil {
		return nil, fmt.Errorf("querying sets: %w", err)
	}
	defer rows.Close()

	var sets []models.SetLog
	for rows.Next() {
		var id string
		var set models.SetLog
		if err := rows.Scan(&id, &set.SetNumber, &set.Reps, &set.Weight); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		set.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parsing set id: %w", err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// QueryTemplates lists template sessions, newest first, without their
// exercise trees. Detail views load the full session by id.
func (db *DB) QueryTemplates(ctx context.Context) ([]models.WorkoutSession, error) {
	return db.querySessions(ctx,
		`SELECT id, title, date, is_template, is_completed FROM workout_sessions
		 WHERE is_template = 1 ORDER BY date DESC`)
}

// QueryHistory lists completed non-template sessions in the requested
// order. Templates never appear here regardless of their completed flag.
func (db *DB) QueryHistory(ctx context.Context, order SortOrder) ([]models.WorkoutSession, error) {
	dir := "DESC"
	if order == Oldest {
		dir = "ASC"
	}
	return db.querySessions(ctx,
		`SELECT id, title, date, is_template, is_completed FROM workout_sessions
		 WHERE is_completed = 1 AND is_template = 0 ORDER BY date `+dir)
}

func (db *DB) querySessions(ctx context.Context, query string) ([]models.WorkoutSession, error) {
	rows, err := db.sql.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.WorkoutSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a session and, via cascade, its exercises and sets.
func (db *DB) DeleteSession(ctx context.Context, id uuid.UUID) error {
	res, err := db.sql.ExecContext(ctx,
		`DELETE FROM workout_sessions WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (*models.WorkoutSession, error) {
	var id, date string
	var s models.WorkoutSession
	if err := r.Scan(&id, &s.Title, &date, &s.IsTemplate, &s.IsCompleted); err != nil {
		return nil, err
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parsing session id: %w", err)
	}
	s.ID = parsedID
	parsed, err := time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return nil, fmt.Errorf("parsing session date: %w", err)
	}
	s.Date = parsed
	return &s, nil
}
