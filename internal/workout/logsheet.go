package workout

import (
	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
)

// Field selects which half of a log entry a read or write targets.
type Field int

const (
	FieldReps Field = iota
	FieldWeight
)

// LogEntry is the staged input for one set. Reps is a float because the
// input surface treats both fields uniformly; it is truncated on commit.
type LogEntry struct {
	Reps   float64 `json:"reps"`
	Weight float64 `json:"weight"`
}

// LogSheet stages user input for an in-progress session, keyed by the
// durable SetLog id. Display order can be re-sorted freely without staged
// values crossing between sets; nothing here ever addresses by index or
// set number.
type LogSheet struct {
	entries map[uuid.UUID]LogEntry
}

// NewLogSheet creates an empty sheet.
func NewLogSheet() *LogSheet {
	return &LogSheet{entries: make(map[uuid.UUID]LogEntry)}
}

// Get returns the staged value for a set's field, zero if nothing has been
// staged for that id.
func (s *LogSheet) Get(setID uuid.UUID, field Field) float64 {
	entry := s.entries[setID]
	if field == FieldReps {
		return entry.Reps
	}
	return entry.Weight
}

// Set upserts one field of one set's entry. No other set is touched.
func (s *LogSheet) Set(setID uuid.UUID, field Field, value float64) {
	entry := s.entries[setID]
	if field == FieldReps {
		entry.Reps = value
	} else {
		entry.Weight = value
	}
	s.entries[setID] = entry
}

// Seed ensures every set in the session has an entry. Idempotent: entries
// that already exist keep their staged values.
func (s *LogSheet) Seed(session *models.WorkoutSession) {
	for _, ex := range session.Exercises {
		for _, set := range ex.Sets {
			if _, ok := s.entries[set.ID]; !ok {
				s.entries[set.ID] = LogEntry{}
			}
		}
	}
}

// Entry returns the staged entry for a set id and whether one exists.
func (s *LogSheet) Entry(setID uuid.UUID) (LogEntry, bool) {
	entry, ok := s.entries[setID]
	return entry, ok
}

// Len reports how many sets have entries.
func (s *LogSheet) Len() int {
	return len(s.entries)
}
