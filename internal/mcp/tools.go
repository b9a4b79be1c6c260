package mcp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/liftlog/internal/storage"
	"github.com/meltforce/liftlog/internal/workout"
)

// --- Tool definitions ---

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List all saved workout templates. Templates are reusable session plans with exercises and target sets."),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Fetch one workout session by id, including every exercise, its sets, and superset group labels."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout session UUID")),
)

var toolWorkoutHistory = mcp.NewTool("workout_history",
	mcp.WithDescription("List completed workout sessions. Only finished, non-template sessions appear."),
	mcp.WithString("order", mcp.Description("Sort order by date. Defaults to 'newest'."), mcp.Enum("newest", "oldest")),
)

var toolSearchExercises = mcp.NewTool("search_exercises",
	mcp.WithDescription("Search the exercise catalog by name, falling back to body part and then target muscle."),
	mcp.WithString("query", mcp.Required(), mcp.Description("Search term (e.g. 'squat', 'glutes')")),
)

var toolExerciseProgress = mcp.NewTool("exercise_progress",
	mcp.WithDescription("Session-by-session logged sets for one exercise across workout history, oldest first. Use to track strength progression."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (partial match, e.g. 'bench press')")),
)

// --- Tool handlers ---

func (h *handlers) listTemplates(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templates, err := h.db.QueryTemplates(ctx)
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(templates)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid workout id: " + err.Error()), nil
	}

	session, err := h.db.GetSession(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultError("workout not found"), nil
	}
	if err != nil {
		h.log.Error("mcp get_workout", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	labels := workout.Labels(session.Exercises)
	groupLabels := make(map[string]string, len(labels))
	for gid, label := range labels {
		groupLabels[gid.String()] = label
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"session":      session,
		"group_labels": groupLabels,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) workoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	order := storage.Newest
	if req.GetString("order", "newest") == "oldest" {
		order = storage.Oldest
	}

	history, err := h.db.QueryHistory(ctx, order)
	if err != nil {
		h.log.Error("mcp workout_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(history)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) searchExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	exercises, err := h.cat.Search(ctx, term)
	if err != nil {
		h.log.Error("mcp search_exercises", "error", err)
		return mcp.NewToolResultError("catalog search failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) exerciseProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	points, err := h.db.ExerciseProgress(ctx, exercise)
	if err != nil {
		h.log.Error("mcp exercise_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(points)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
