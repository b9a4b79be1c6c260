package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutSession is one workout: either a reusable template authored in the
// planner or a completed log with actual values. The two flags partition the
// persisted records: template views filter IsTemplate, history views filter
// IsCompleted && !IsTemplate.
type WorkoutSession struct {
	ID          uuid.UUID     `json:"id"`
	Date        time.Time     `json:"date"`
	Title       string        `json:"title"`
	Exercises   []ExerciseLog `json:"exercises"`
	IsTemplate  bool          `json:"is_template"`
	IsCompleted bool          `json:"is_completed"`
}

// ExerciseLog is one exercise within a session. Name is denormalized free
// text, not a reference into the catalog. A nil SupersetID means the
// exercise is standalone; exercises sharing a non-nil SupersetID form one
// superset group.
type ExerciseLog struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Sets       []SetLog   `json:"sets"`
	SupersetID *uuid.UUID `json:"superset_id,omitempty"`
}

// SetLog is one set. ID is the durable identity and the only safe key for
// addressing a set from the UI; SetNumber is the 1-based display position
// and may be re-sorted or re-created.
type SetLog struct {
	ID        uuid.UUID `json:"id"`
	SetNumber int       `json:"set_number"`
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
}

// NewWorkoutSession creates a session with a fresh id, stamped now.
func NewWorkoutSession(title string, exercises []ExerciseLog) *WorkoutSession {
	return &WorkoutSession{
		ID:        uuid.New(),
		Date:      time.Now().UTC(),
		Title:     title,
		Exercises: exercises,
	}
}

// NewExerciseLog creates an exercise log with a fresh id.
func NewExerciseLog(name string, sets []SetLog, supersetID *uuid.UUID) ExerciseLog {
	return ExerciseLog{
		ID:         uuid.New(),
		Name:       name,
		Sets:       sets,
		SupersetID: supersetID,
	}
}

// NewSetLog creates a set with a fresh id.
func NewSetLog(setNumber, reps int, weight float64) SetLog {
	return SetLog{
		ID:        uuid.New(),
		SetNumber: setNumber,
		Reps:      reps,
		Weight:    weight,
	}
}

// InHistory reports whether the session belongs in the history view.
func (s *WorkoutSession) InHistory() bool {
	return s.IsCompleted && !s.IsTemplate
}
