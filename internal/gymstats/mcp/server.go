package mcp

import (
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/auth"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// NewServer builds an MCP server whose tools read the progress of userID:
// schema, exercises, exercise progress, goals progress, body weight.
func NewServer(service progressService, userID string) *mcp.Server {
	h := NewHandler(service, userID)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gorillabuild-progress",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress_schema",
		Description: "Returns the DB schema of the training tables (workouts, sets, plans, goals, body weight): table names, columns, types, nullable, default.",
	}, h.SchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercise catalog (id, name). Use the id with get_exercise_progress.",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns the user's estimated one-rep-max history for an exercise (one point per finished workout), the strength to body-weight ratio series, body-weight entries and the active goal with progress. Arg: exercise_id.",
	}, h.ExerciseProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_goals_progress",
		Description: "Returns the user's active 1RM goals with the current best 1RM, the kilos remaining and progress in percent.",
	}, h.GoalsProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_body_weight",
		Description: "Returns the user's body-weight log, oldest first. Optional: from_date, to_date (YYYY-MM-DD).",
	}, h.BodyWeightTool())

	return s
}

// NewHTTPHandler serves MCP over streamable HTTP. Each request gets a server bound to the
// authenticated principal, so it must sit behind the auth middleware.
func NewHTTPHandler(service progressService) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			log.Warn("mcp request without principal")
			return nil
		}
		return NewServer(service, principal.UserID)
	}, &mcp.StreamableHTTPOptions{Stateless: true})
}
