package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/exercises"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests for one user: parses input, calls the service, formats the result.
type Handler struct {
	service progressService
	userID  string
}

func NewHandler(service progressService, userID string) *Handler {
	return &Handler{
		service: service,
		userID:  userID,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

// SchemaTool returns the MCP tool handler for get_progress_schema.
func (h *Handler) SchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// ListExercisesTool returns the MCP tool handler for list_exercises.
func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListExercises(ctx)
		if err != nil {
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// ExerciseProgressInput is the input for get_exercise_progress.
type ExerciseProgressInput struct {
	ExerciseID int `json:"exercise_id" jsonschema:"Exercise id as returned by list_exercises"`
}

// ExerciseProgressTool returns the MCP tool handler for get_exercise_progress.
func (h *Handler) ExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID <= 0 {
			return errorResult("Invalid exercise_id: use an id from list_exercises"), nil, nil
		}
		detail, err := h.service.ExerciseProgress(ctx, h.userID, in.ExerciseID)
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			return errorResult("Exercise not found"), nil, nil
		}
		if err != nil {
			return errorResult("Error fetching exercise progress: " + err.Error()), nil, nil
		}
		return jsonResult(detail), nil, nil
	}
}

// GoalsProgressTool returns the MCP tool handler for get_goals_progress.
func (h *Handler) GoalsProgressTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		progress, err := h.service.GoalsProgress(ctx, h.userID)
		if err != nil {
			return errorResult("Error fetching goals: " + err.Error()), nil, nil
		}
		return jsonResult(progress), nil, nil
	}
}

// BodyWeightInput is the input for get_body_weight.
type BodyWeightInput struct {
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
}

// BodyWeightTool returns the MCP tool handler for get_body_weight.
func (h *Handler) BodyWeightTool() func(context.Context, *mcp.CallToolRequest, BodyWeightInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in BodyWeightInput) (*mcp.CallToolResult, any, error) {
		var from, to *time.Time
		if in.FromDate != "" {
			d, err := time.Parse(time.DateOnly, in.FromDate)
			if err != nil {
				return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
			}
			from = &d
		}
		if in.ToDate != "" {
			d, err := time.Parse(time.DateOnly, in.ToDate)
			if err != nil {
				return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
			}
			to = &d
		}

		entries, err := h.service.BodyWeight(ctx, h.userID, from, to)
		if err != nil {
			return errorResult("Error fetching body weight: " + err.Error()), nil, nil
		}
		return jsonResult(entries), nil, nil
	}
}
