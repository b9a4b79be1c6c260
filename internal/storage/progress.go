package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProgressPoint is one logged set of a matching exercise, in session order.
type ProgressPoint struct {
	SessionID    uuid.UUID `json:"session_id"`
	SessionTitle string    `json:"session_title"`
	Date         time.Time `json:"date"`
	Exercise     string    `json:"exercise"`
	SetNumber    int       `json:"set_number"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
}

// ExerciseProgress returns every logged set whose exercise name matches the
// filter (case-insensitive substring), across completed non-template
// sessions, oldest first.
func (d *DB) ExerciseProgress(ctx context.Context, nameFilter string) ([]ProgressPoint, error) {
	rows, err := d.sql.QueryContext(ctx, `
		SELECT ws.id, ws.title, ws.date, el.name, sl.set_number, sl.reps, sl.weight
		FROM set_logs sl
		JOIN exercise_logs el ON el.id = sl.exercise_id
		JOIN workout_sessions ws ON ws.id = el.session_id
		WHERE ws.is_completed = 1 AND ws.is_template = 0
		  AND LOWER(el.name) LIKE '%' || LOWER(?) || '%'
		ORDER BY ws.date ASC, el.position ASC, sl.set_number ASC`,
		nameFilter)
	if err != nil {
		return nil, fmt.Errorf("querying exercise progress: %w", err)
	}
	defer rows.Close()

	var points []ProgressPoint
	for rows.Next() {
		var p ProgressPoint
		var id, date string
		if err := rows.Scan(&id, &p.SessionTitle, &date, &p.Exercise, &p.SetNumber, &p.Reps, &p.Weight); err != nil {
			return nil, fmt.Errorf("scanning progress point: %w", err)
		}
		if p.SessionID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing session id: %w", err)
		}
		if p.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("parsing session date: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
