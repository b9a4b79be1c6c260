package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomExercise is a user-defined catalog entry, persisted independently of
// workout sessions. Planner rows copy its name; nothing references it by id.
type CustomExercise struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	BodyPart  string    `json:"body_part"`
	Target    string    `json:"target"`
	Equipment *string   `json:"equipment,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	DateAdded time.Time `json:"date_added"`
}

// NewCustomExercise creates a custom exercise stamped now.
func NewCustomExercise(name, bodyPart, target string, equipment, notes *string) *CustomExercise {
	return &CustomExercise{
		ID:        uuid.New(),
		Name:      name,
		BodyPart:  bodyPart,
		Target:    target,
		Equipment: equipment,
		Notes:     notes,
		DateAdded: time.Now().UTC(),
	}
}
