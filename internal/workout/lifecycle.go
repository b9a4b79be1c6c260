package workout

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
)

// ErrEmptyTitle rejects saving a template without a name.
var ErrEmptyTitle = errors.New("workout title is required")

// CompletionStrategy decides what finishing an in-progress session does to
// the loaded record.
type CompletionStrategy int

const (
	// CreateCompletedCopy leaves the template untouched and persists a new
	// completed session built from the staged values. The default: templates
	// stay reusable.
	CreateCompletedCopy CompletionStrategy = iota

	// MutateInPlace stamps the loaded record completed and writes staged
	// values into its existing sets. The record stops being a template.
	MutateInPlace
)

func (c CompletionStrategy) String() string {
	switch c {
	case MutateInPlace:
		return "mutate_in_place"
	default:
		return "create_completed_copy"
	}
}

// ParseCompletionStrategy maps the wire form to a strategy, defaulting to
// CreateCompletedCopy for anything unrecognized.
func ParseCompletionStrategy(s string) CompletionStrategy {
	if s == "mutate_in_place" {
		return MutateInPlace
	}
	return CreateCompletedCopy
}

// BuildTemplate converts planner items into a persisted-shape template
// session. Each item becomes an ExerciseLog whose sets are numbered
// 1..item.Sets with reps set to the target (default 12 when non-positive)
// and weight zero. Superset group ids carry through unchanged. A blank or
// whitespace-only title returns ErrEmptyTitle and builds nothing.
func BuildTemplate(title string, items []models.ExerciseItem) (*models.WorkoutSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	exercises := make([]models.ExerciseLog, 0, len(items))
	for _, item := range items {
		reps := item.TargetReps
		if reps <= 0 {
			reps = models.DefaultTargetReps
		}

		sets := make([]models.SetLog, 0, item.Sets)
		for n := 1; n <= item.Sets; n++ {
			sets = append(sets, models.NewSetLog(n, reps, 0))
		}

		var supersetID *uuid.UUID
		if item.SupersetGroupID != nil {
			id := *item.SupersetGroupID
			supersetID = &id
		}
		exercises = append(exercises, models.NewExerciseLog(item.Name, sets, supersetID))
	}

	session := models.NewWorkoutSession(title, exercises)
	session.IsTemplate = true
	return session, nil
}

// ApplySuperset marks the selected items as one superset group with a fresh
// group id, the superset rest period, and the given set count. Items are
// updated in place; unselected items are untouched. Membership is fixed once
// applied.
func ApplySuperset(items []models.ExerciseItem, selected map[uuid.UUID]bool, sets int) {
	groupID := uuid.New()
	for i := range items {
		if !selected[items[i].ID] {
			continue
		}
		items[i].IsSuperset = true
		items[i].SupersetGroupID = &groupID
		items[i].RestPeriod = models.SupersetRest
		items[i].Sets = sets
	}
}

// ItemByID finds a planner item by id. A miss returns (nil, false): stale
// ids are a normal consequence of row deletion and never abort anything.
func ItemByID(items []models.ExerciseItem, id uuid.UUID) (*models.ExerciseItem, bool) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], true
		}
	}
	return nil, false
}

// RemoveItem deletes a planner item by id, preserving order.
func RemoveItem(items []models.ExerciseItem, id uuid.UUID) []models.ExerciseItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Finish commits an in-progress session using the staged sheet. Sets with a
// staged entry take its values (reps truncated to int); sets the user never
// touched keep their current values. The returned session is the record to
// persist; with CreateCompletedCopy it is a brand-new session with fresh
// ids and the input session is left untouched.
func Finish(session *models.WorkoutSession, sheet *LogSheet, strategy CompletionStrategy, now time.Time) *models.WorkoutSession {
	if strategy == MutateInPlace {
		session.Date = now
		session.IsCompleted = true
		session.IsTemplate = false
		for ei := range session.Exercises {
			for si := range session.Exercises[ei].Sets {
				set := &session.Exercises[ei].Sets[si]
				if entry, ok := sheet.Entry(set.ID); ok {
					set.Reps = int(entry.Reps)
					set.Weight = entry.Weight
				}
			}
		}
		return session
	}

	exercises := make([]models.ExerciseLog, 0, len(session.Exercises))
	for _, ex := range session.Exercises {
		sets := make([]models.SetLog, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			reps, weight := set.Reps, set.Weight
			if entry, ok := sheet.Entry(set.ID); ok {
				reps = int(entry.Reps)
				weight = entry.Weight
			}
			sets = append(sets, models.NewSetLog(set.SetNumber, reps, weight))
		}

		var supersetID *uuid.UUID
		if ex.SupersetID != nil {
			id := *ex.SupersetID
			supersetID = &id
		}
		exercises = append(exercises, models.NewExerciseLog(ex.Name, sets, supersetID))
	}

	completed := models.NewWorkoutSession(session.Title, exercises)
	completed.Date = now
	completed.IsCompleted = true
	return completed
}
