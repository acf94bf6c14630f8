package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/auth"
)

const testWebhookSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

// newUserID returns a fresh principal id. Ids are never reused between tests,
// since the server remembers which users it has already mirrored.
func (s *IntegrationTestSuite) newUserID() string {
	return "user_" + s.faker.UUID()
}

// call sends body (if not nil) as JSON on behalf of userID and decodes the answer into out
// (if not nil). It returns the status code.
func (s *IntegrationTestSuite) call(ctx context.Context, userID, method, path string, body, out any) int {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(auth.DevUserIDHeader, userID)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	if out != nil && len(respBytes) > 0 {
		s.Require().NoError(json.Unmarshal(respBytes, out), string(respBytes))
	}
	return resp.StatusCode
}

type exerciseResp struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (s *IntegrationTestSuite) exerciseID(ctx context.Context, userID, name string) int {
	var list []exerciseResp
	s.Require().Equal(http.StatusOK, s.call(ctx, userID, http.MethodGet, "/api/exercises", nil, &list))
	for _, e := range list {
		if e.Name == name {
			return e.ID
		}
	}
	s.FailNow("exercise not seeded: " + name)
	return 0
}

// setHandle gives the user a handle others can send friend requests to.
func (s *IntegrationTestSuite) setHandle(ctx context.Context, userID string) string {
	handle := s.faker.Regex(`[a-z]{6,12}`)
	status := s.call(ctx, userID, http.MethodPatch, "/api/users/me", map[string]string{"username": handle}, nil)
	s.Require().Equal(http.StatusOK, status)
	return handle
}
