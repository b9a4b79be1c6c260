package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
	"github.com/meltforce/liftlog/internal/workout"
)

type saveTemplateRequest struct {
	Title string                `json:"title"`
	Items []models.ExerciseItem `json:"items"`
}

func (s *Server) handleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req saveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	session, err := workout.BuildTemplate(req.Title, req.Items)
	if errors.Is(err, workout.ErrEmptyTitle) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := s.db.InsertSession(r.Context(), session); err != nil {
		s.log.Error("template save failed", "title", session.Title, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "saving workout failed: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.db.QueryTemplates(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if templates == nil {
		templates = []models.WorkoutSession{}
	}
	writeJSON(w, http.StatusOK, templates)
}

// groupView is one rendered group: the standalone exercises (nil superset
// id, no label) or one superset with its letter label and round structure.
type groupView struct {
	SupersetID *uuid.UUID           `json:"superset_id,omitempty"`
	Label      string               `json:"label,omitempty"`
	Exercises  []models.ExerciseLog `json:"exercises"`
	Rounds     []workout.Round      `json:"rounds"`
}

type workoutDetail struct {
	*models.WorkoutSession
	Groups []groupView `json:"groups"`
}

func buildGroups(exercises []models.ExerciseLog) []groupView {
	grouped := workout.GroupByKey(exercises)
	labels := workout.Labels(exercises)

	views := make([]groupView, 0, len(grouped))
	for _, key := range workout.SortedGroupKeys(grouped) {
		view := groupView{
			Exercises: grouped[key],
			Rounds:    workout.Rounds(grouped[key]),
		}
		if key != uuid.Nil {
			id := key
			view.SupersetID = &id
			view.Label = workout.LabelFor(labels, key)
		}
		views = append(views, view)
	}
	return views
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	session, err := s.db.GetSession(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, workoutDetail{
		WorkoutSession: session,
		Groups:         buildGroups(session.Exercises),
	})
}

type finishRequest struct {
	Entries  map[string]workout.LogEntry `json:"entries"`
	Strategy string                      `json:"strategy"`
}

func (s *Server) handleFinishWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req finishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	session, err := s.db.GetSession(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	sheet := workout.NewLogSheet()
	sheet.Seed(session)
	for key, entry := range req.Entries {
		setID, err := uuid.Parse(key)
		if err != nil {
			// Unknown or malformed set ids are a no-op, never a failure.
			continue
		}
		sheet.Set(setID, workout.FieldReps, entry.Reps)
		sheet.Set(setID, workout.FieldWeight, entry.Weight)
	}

	strategy := workout.ParseCompletionStrategy(req.Strategy)
	completed := workout.Finish(session, sheet, strategy, time.Now().UTC())

	if strategy == workout.MutateInPlace {
		err = s.db.UpdateSessionCompleted(r.Context(), completed)
	} else {
		err = s.db.InsertSession(r.Context(), completed)
	}
	if err != nil {
		// The store tx rolled back; nothing was persisted and the client
		// still holds its staged values, so a retry is safe.
		s.log.Error("finish save failed", "workout", id, "strategy", strategy.String(), "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "saving workout failed: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, completed)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	err := s.db.DeleteSession(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	order := storage.Newest
	if r.URL.Query().Get("order") == string(storage.Oldest) {
		order = storage.Oldest
	}

	history, err := s.db.QueryHistory(r.Context(), order)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if history == nil {
		history = []models.WorkoutSession{}
	}
	writeJSON(w, http.StatusOK, history)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
