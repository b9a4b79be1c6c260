// Package workout holds the core planning and logging logic: superset
// grouping, the per-set logging sheet, and the session lifecycle.
package workout

import (
	"sort"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
)

// Two grouping policies exist on purpose and must not be merged:
// GroupContiguous is the planner preview (adjacency matters),
// GroupByKey is the canonical grouping every render path uses.

// GroupContiguous partitions planner items in original order. Consecutive
// superset items merge into one run; every non-superset item is a group of
// one. Non-contiguous members of the same superset stay in separate runs.
func GroupContiguous(items []models.ExerciseItem) [][]models.ExerciseItem {
	var groups [][]models.ExerciseItem
	var run []models.ExerciseItem

	for _, it := range items {
		if it.IsSuperset {
			run = append(run, it)
			continue
		}
		if len(run) > 0 {
			groups = append(groups, run)
			run = nil
		}
		groups = append(groups, []models.ExerciseItem{it})
	}
	if len(run) > 0 {
		groups = append(groups, run)
	}
	return groups
}

// GroupByKey groups exercises by superset id regardless of position.
// Standalone exercises (nil SupersetID) collect under uuid.Nil. Within a
// group, the original exercise order is preserved.
func GroupByKey(exercises []models.ExerciseLog) map[uuid.UUID][]models.ExerciseLog {
	groups := make(map[uuid.UUID][]models.ExerciseLog)
	for _, ex := range exercises {
		key := uuid.Nil
		if ex.SupersetID != nil {
			key = *ex.SupersetID
		}
		groups[key] = append(groups[key], ex)
	}
	return groups
}

// SortedGroupKeys returns the keys of a GroupByKey result in render order:
// the standalone group (uuid.Nil) first, then superset ids ascending by
// their string form.
func SortedGroupKeys(groups map[uuid.UUID][]models.ExerciseLog) []uuid.UUID {
	keys := make([]uuid.UUID, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == uuid.Nil {
			return true
		}
		if keys[j] == uuid.Nil {
			return false
		}
		return keys[i].String() < keys[j].String()
	})
	return keys
}

// Labels assigns display letters to the distinct superset ids present in
// exercises: ids sorted by string form map to A, B, C, ... cycling through
// the alphabet past 26 groups.
func Labels(exercises []models.ExerciseLog) map[uuid.UUID]string {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, ex := range exercises {
		if ex.SupersetID == nil || seen[*ex.SupersetID] {
			continue
		}
		seen[*ex.SupersetID] = true
		ids = append(ids, *ex.SupersetID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	labels := make(map[uuid.UUID]string, len(ids))
	for i, id := range ids {
		labels[id] = string(rune('A' + i%26))
	}
	return labels
}

// LabelFor looks up a superset label, falling back to "?" for an id that is
// not part of the session.
func LabelFor(labels map[uuid.UUID]string, id uuid.UUID) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return "?"
}

// RoundEntry is one exercise's set within a round.
type RoundEntry struct {
	ExerciseID   uuid.UUID     `json:"exercise_id"`
	ExerciseName string        `json:"exercise_name"`
	Set          models.SetLog `json:"set"`
}

// Round is one pass through a superset group: round N holds, per exercise,
// the set whose SetNumber is N.
type Round struct {
	Number  int          `json:"number"`
	Entries []RoundEntry `json:"entries"`
}

// Rounds walks a group round by round, from 1 to the largest set count in
// the group. An exercise with no set for a given round is omitted from that
// round.
func Rounds(group []models.ExerciseLog) []Round {
	maxSets := 0
	for _, ex := range group {
		if len(ex.Sets) > maxSets {
			maxSets = len(ex.Sets)
		}
	}

	rounds := make([]Round, 0, maxSets)
	for n := 1; n <= maxSets; n++ {
		round := Round{Number: n}
		for _, ex := range group {
			for _, set := range ex.Sets {
				if set.SetNumber == n {
					round.Entries = append(round.Entries, RoundEntry{
						ExerciseID:   ex.ID,
						ExerciseName: ex.Name,
						Set:          set,
					})
					break
				}
			}
		}
		rounds = append(rounds, round)
	}
	return rounds
}
