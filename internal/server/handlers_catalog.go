package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meltforce/liftlog/internal/catalog"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
)

func (s *Server) handleBodyParts(w http.ResponseWriter, r *http.Request) {
	parts, err := s.catalog.BodyParts(r.Context())
	if err != nil {
		s.log.Error("catalog bodyparts failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, parts)
}

func (s *Server) handleCatalogSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q parameter required"})
		return
	}

	results, err := s.search.Search(r.Context(), term)
	if errors.Is(err, catalog.ErrSuperseded) {
		// A newer search already owns the result slot; report the current
		// results rather than an error.
		writeJSON(w, http.StatusOK, s.search.Results())
		return
	}
	if err != nil {
		s.log.Error("catalog search failed", "term", term, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	if results == nil {
		results = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, results)
}

type customExerciseRequest struct {
	Name      string  `json:"name"`
	BodyPart  string  `json:"body_part"`
	Target    string  `json:"target"`
	Equipment *string `json:"equipment,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (s *Server) handleCreateCustomExercise(w http.ResponseWriter, r *http.Request) {
	var req customExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" || req.BodyPart == "" || req.Target == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name, body_part, and target are required"})
		return
	}

	ex := models.NewCustomExercise(req.Name, req.BodyPart, req.Target, req.Equipment, req.Notes)
	if err := s.db.InsertCustomExercise(r.Context(), ex); err != nil {
		s.log.Error("custom exercise save failed", "name", req.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}

func (s *Server) handleListCustomExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.db.QueryCustomExercises(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if exercises == nil {
		exercises = []models.CustomExercise{}
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleDeleteCustomExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	err := s.db.DeleteCustomExercise(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "custom exercise not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
