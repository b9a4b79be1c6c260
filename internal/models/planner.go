package models

import "github.com/google/uuid"

// ExerciseItem is a draft row in the workout planner. Items are transient
// (they only become ExerciseLog/SetLog records at save time) and their ids
// are stable only within one planning session.
type ExerciseItem struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Sets            int        `json:"sets"`
	TargetReps      int        `json:"target_reps"`
	RestPeriod      string     `json:"rest_period"`
	IsSuperset      bool       `json:"is_superset"`
	SupersetGroupID *uuid.UUID `json:"superset_group_id,omitempty"`
}

// Planner defaults applied when an exercise is added from the catalog.
const (
	DefaultSets       = 3
	DefaultTargetReps = 12
	DefaultRest       = "60s"
	SupersetRest      = "90s"
)

// NewExerciseItem creates a planner row with the standard defaults.
func NewExerciseItem(name string) ExerciseItem {
	return ExerciseItem{
		ID:         uuid.New(),
		Name:       name,
		Sets:       DefaultSets,
		TargetReps: DefaultTargetReps,
		RestPeriod: DefaultRest,
	}
}
