package test

import (
	"context"
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/auth"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// devHeaderTransport authenticates MCP calls the same way the REST calls are.
type devHeaderTransport struct {
	userID string
}

func (t devHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(auth.DevUserIDHeader, t.userID)
	return http.DefaultTransport.RoundTrip(req)
}

func (s *IntegrationTestSuite) TestProgressMCP() {
	ctx := context.Background()
	userID := s.newUserID()
	benchID := s.exerciseID(ctx, userID, "Bench Press")
	s.finishedWorkout(ctx, userID, benchID, [][2]float64{{100, 5}})

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint:   serverEndpoint + "/mcp",
		HTTPClient: &http.Client{Transport: devHeaderTransport{userID: userID}},
	}, nil)
	s.Require().NoError(err)
	defer session.Close()

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	s.Require().NoError(err)
	s.Len(tools.Tools, 5)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_exercise_progress",
		Arguments: map[string]any{"exercise_id": benchID},
	})
	s.Require().NoError(err)
	s.Require().False(res.IsError)
	s.Require().Len(res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	s.Require().True(ok)
	s.Contains(text.Text, `"bestWeightKg": 100`)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{Name: "get_progress_schema"})
	s.Require().NoError(err)
	s.Require().False(res.IsError)
	text, ok = res.Content[0].(*mcp.TextContent)
	s.Require().True(ok)
	s.Contains(text.Text, "## workout")
}
