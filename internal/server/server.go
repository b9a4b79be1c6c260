// Package server exposes the REST surface the app's UI talks to: planner
// saves, session logging and finishing, history, custom exercises, and a
// proxy onto the remote exercise catalog.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/liftlog/internal/catalog"
	"github.com/meltforce/liftlog/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	catalog *catalog.Client
	search  *catalog.Searcher
	log     *slog.Logger
	router  chi.Router
}

// New creates a Server with all routes configured.
func New(db *storage.DB, cat *catalog.Client, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		catalog: cat,
		search:  catalog.NewSearcher(cat),
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Planner
		r.Post("/templates", s.handleSaveTemplate)
		r.Get("/templates", s.handleListTemplates)

		// Sessions
		r.Get("/workouts/{id}", s.handleGetWorkout)
		r.Post("/workouts/{id}/finish", s.handleFinishWorkout)
		r.Delete("/workouts/{id}", s.handleDeleteWorkout)
		r.Get("/history", s.handleHistory)

		// Catalog
		r.Get("/catalog/bodyparts", s.handleBodyParts)
		r.Get("/catalog/search", s.handleCatalogSearch)

		// Custom exercises
		r.Post("/exercises/custom", s.handleCreateCustomExercise)
		r.Get("/exercises/custom", s.handleListCustomExercises)
		r.Delete("/exercises/custom/{id}", s.handleDeleteCustomExercise)
	})
}
