package workout

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
)

// TestBuildTemplateBlankTitle verifies an empty or whitespace-only title is
// rejected with a validation error and no session is built.
func TestBuildTemplateBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		session, err := BuildTemplate(title, []models.ExerciseItem{makeItem("Squat", false)})
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("title %q: err = %v, want ErrEmptyTitle", title, err)
		}
		if session != nil {
			t.Errorf("title %q: got a session, want nil", title)
		}
	}
}

// TestBuildTemplateSetsAndReps verifies sets are numbered 1..count with the
// item's target reps and zero weight.
func TestBuildTemplateSetsAndReps(t *testing.T) {
	item := models.NewExerciseItem("Bench")
	item.Sets = 4
	item.TargetReps = 8

	session, err := BuildTemplate("Push Day", []models.ExerciseItem{item})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.IsTemplate || session.IsCompleted {
		t.Errorf("flags = template:%v completed:%v, want template only", session.IsTemplate, session.IsCompleted)
	}
	if len(session.Exercises) != 1 {
		t.Fatalf("exercises = %d, want 1", len(session.Exercises))
	}

	sets := session.Exercises[0].Sets
	if len(sets) != 4 {
		t.Fatalf("sets = %d, want 4", len(sets))
	}
	for i, set := range sets {
		if set.SetNumber != i+1 {
			t.Errorf("set %d numbered %d, want %d", i, set.SetNumber, i+1)
		}
		if set.Reps != 8 {
			t.Errorf("set %d reps = %d, want 8", i, set.Reps)
		}
		if set.Weight != 0 {
			t.Errorf("set %d weight = %v, want 0", i, set.Weight)
		}
	}
}

// TestBuildTemplateDefaultReps verifies a non-positive target falls back to
// the default of 12.
func TestBuildTemplateDefaultReps(t *testing.T) {
	for _, target := range []int{0, -5} {
		item := models.NewExerciseItem("Row")
		item.TargetReps = target
		session, err := BuildTemplate("Pull", []models.ExerciseItem{item})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := session.Exercises[0].Sets[0].Reps; got != models.DefaultTargetReps {
			t.Errorf("target %d: reps = %d, want %d", target, got, models.DefaultTargetReps)
		}
	}
}

// TestBuildTemplateCarriesSupersetID verifies the planner group id survives
// conversion unchanged.
func TestBuildTemplateCarriesSupersetID(t *testing.T) {
	groupID := uuid.New()
	a := models.NewExerciseItem("Curl")
	b := models.NewExerciseItem("Pushdown")
	a.SupersetGroupID = &groupID
	b.SupersetGroupID = &groupID

	session, err := BuildTemplate("Arms", []models.ExerciseItem{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, ex := range session.Exercises {
		if ex.SupersetID == nil || *ex.SupersetID != groupID {
			t.Errorf("exercise %d superset id = %v, want %s", i, ex.SupersetID, groupID)
		}
	}
}

// TestApplySuperset verifies selected items get one shared fresh group id,
// the superset rest period, and the chosen set count.
func TestApplySuperset(t *testing.T) {
	items := []models.ExerciseItem{
		makeItem("Curl", false),
		makeItem("Squat", false),
		makeItem("Pushdown", false),
	}
	selected := map[uuid.UUID]bool{items[0].ID: true, items[2].ID: true}

	ApplySuperset(items, selected, 4)

	if items[0].SupersetGroupID == nil || items[2].SupersetGroupID == nil {
		t.Fatal("selected items missing group id")
	}
	if *items[0].SupersetGroupID != *items[2].SupersetGroupID {
		t.Error("selected items got different group ids")
	}
	if items[0].RestPeriod != models.SupersetRest || items[0].Sets != 4 {
		t.Errorf("item 0 rest=%q sets=%d, want %q and 4", items[0].RestPeriod, items[0].Sets, models.SupersetRest)
	}
	if items[1].IsSuperset || items[1].SupersetGroupID != nil {
		t.Error("unselected item was modified")
	}
}

// TestItemByIDMiss verifies a stale id is a plain miss, not a panic.
func TestItemByIDMiss(t *testing.T) {
	items := []models.ExerciseItem{makeItem("Squat", false)}
	if _, ok := ItemByID(items, uuid.New()); ok {
		t.Error("lookup of unknown id reported found")
	}
	got, ok := ItemByID(items, items[0].ID)
	if !ok || got.Name != "Squat" {
		t.Errorf("lookup = %v found=%v, want Squat", got, ok)
	}
}

// TestFinishCopyScenario runs the reference scenario: three planned sets,
// values logged against set #2's id, finish with the copy strategy.
func TestFinishCopyScenario(t *testing.T) {
	item := models.NewExerciseItem("Squat")
	item.Sets = 3
	item.TargetReps = 0 // template values don't matter here; sets start at 0 after zero-seed
	template, err := BuildTemplate("Leg Day", []models.ExerciseItem{item})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Zero out planned reps to mirror the scenario's starting state.
	for si := range template.Exercises[0].Sets {
		template.Exercises[0].Sets[si].Reps = 0
	}

	sheet := NewLogSheet()
	sheet.Seed(template)
	set2 := template.Exercises[0].Sets[1].ID
	sheet.Set(set2, FieldReps, 10)
	sheet.Set(set2, FieldWeight, 135)

	now := time.Now().UTC()
	completed := Finish(template, sheet, CreateCompletedCopy, now)

	if completed.ID == template.ID {
		t.Error("completed copy shares the template's id")
	}
	if !completed.IsCompleted || completed.IsTemplate {
		t.Errorf("flags = completed:%v template:%v, want completed only", completed.IsCompleted, completed.IsTemplate)
	}
	if !completed.Date.Equal(now) {
		t.Errorf("date = %v, want %v", completed.Date, now)
	}

	sets := completed.Exercises[0].Sets
	if sets[1].Reps != 10 || sets[1].Weight != 135 {
		t.Errorf("set 2 = %d reps %v lb, want 10 reps 135 lb", sets[1].Reps, sets[1].Weight)
	}
	for _, i := range []int{0, 2} {
		if sets[i].Reps != 0 || sets[i].Weight != 0 {
			t.Errorf("set %d = %d reps %v lb, want zeros", i+1, sets[i].Reps, sets[i].Weight)
		}
	}

	// Template untouched and still a template.
	if !template.IsTemplate || template.IsCompleted {
		t.Error("finishing with the copy strategy mutated the template's flags")
	}
	if template.Exercises[0].Sets[1].Reps != 0 {
		t.Error("finishing with the copy strategy wrote into the template's sets")
	}
}

// TestFinishCopyFreshIDs verifies the completed copy reuses no entity ids
// from the template.
func TestFinishCopyFreshIDs(t *testing.T) {
	template, err := BuildTemplate("Pull", []models.ExerciseItem{makeItem("Row", false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sheet := NewLogSheet()
	sheet.Seed(template)

	completed := Finish(template, sheet, CreateCompletedCopy, time.Now())

	old := make(map[uuid.UUID]bool)
	old[template.ID] = true
	for _, ex := range template.Exercises {
		old[ex.ID] = true
		for _, set := range ex.Sets {
			old[set.ID] = true
		}
	}
	if old[completed.ID] {
		t.Error("session id reused")
	}
	for _, ex := range completed.Exercises {
		if old[ex.ID] {
			t.Errorf("exercise id %s reused", ex.ID)
		}
		for _, set := range ex.Sets {
			if old[set.ID] {
				t.Errorf("set id %s reused", set.ID)
			}
		}
	}
}

// TestFinishMutateInPlace verifies the in-place strategy stamps the same
// record completed and writes staged values into the existing sets.
func TestFinishMutateInPlace(t *testing.T) {
	template, err := BuildTemplate("Legs", []models.ExerciseItem{makeItem("Squat", false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sheet := NewLogSheet()
	sheet.Seed(template)
	target := template.Exercises[0].Sets[0].ID
	sheet.Set(target, FieldReps, 5)
	sheet.Set(target, FieldWeight, 225)

	now := time.Now().UTC()
	finished := Finish(template, sheet, MutateInPlace, now)

	if finished != template {
		t.Fatal("in-place strategy returned a different record")
	}
	if !finished.IsCompleted || finished.IsTemplate {
		t.Errorf("flags = completed:%v template:%v, want a completed non-template", finished.IsCompleted, finished.IsTemplate)
	}
	if finished.Exercises[0].Sets[0].Reps != 5 || finished.Exercises[0].Sets[0].Weight != 225 {
		t.Errorf("set 1 = %d reps %v lb, want 5 reps 225 lb",
			finished.Exercises[0].Sets[0].Reps, finished.Exercises[0].Sets[0].Weight)
	}
}

// TestFinishUnstagedSetsKeepValues verifies sets the user never touched keep
// their current values rather than being zeroed.
func TestFinishUnstagedSetsKeepValues(t *testing.T) {
	item := models.NewExerciseItem("Press")
	item.TargetReps = 10
	template, err := BuildTemplate("Push", []models.ExerciseItem{item})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No seeding, no staging: every set keeps its planned values.
	completed := Finish(template, NewLogSheet(), CreateCompletedCopy, time.Now())
	for i, set := range completed.Exercises[0].Sets {
		if set.Reps != 10 {
			t.Errorf("set %d reps = %d, want planned 10", i+1, set.Reps)
		}
	}
}

// TestParseCompletionStrategy verifies the wire form round-trips and
// unknown values default to the copy strategy.
func TestParseCompletionStrategy(t *testing.T) {
	if ParseCompletionStrategy("mutate_in_place") != MutateInPlace {
		t.Error("mutate_in_place did not parse")
	}
	if ParseCompletionStrategy("") != CreateCompletedCopy {
		t.Error("empty strategy should default to copy")
	}
	if ParseCompletionStrategy("bogus") != CreateCompletedCopy {
		t.Error("unknown strategy should default to copy")
	}
}

// TestRestRemaining verifies the countdown math and clamping.
func TestRestRemaining(t *testing.T) {
	cases := []struct {
		duration, fraction, want float64
	}{
		{90, 0, 90},
		{90, 0.5, 45},
		{90, 1, 0},
		{90, 1.5, 0},
		{90, -0.2, 90},
	}
	for _, c := range cases {
		if got := RestRemaining(c.duration, c.fraction); got != c.want {
			t.Errorf("RestRemaining(%v, %v) = %v, want %v", c.duration, c.fraction, got, c.want)
		}
	}
}
