package test

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	svix "github.com/svix/svix-webhooks/go"
)

func (s *IntegrationTestSuite) postClerkEvent(ctx context.Context, payload []byte, sign bool) int {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverEndpoint+"/api/webhooks/clerk", bytes.NewReader(payload))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	msgID := "msg_" + s.faker.LetterN(10)
	now := time.Now()
	req.Header.Set("svix-id", msgID)
	req.Header.Set("svix-timestamp", strconv.FormatInt(now.Unix(), 10))
	req.Header.Set("svix-signature", "v1,bm90LWEtc2lnbmF0dXJl")
	if sign {
		wh, err := svix.NewWebhook(testWebhookSecret)
		s.Require().NoError(err)
		signature, err := wh.Sign(msgID, now, payload)
		s.Require().NoError(err)
		req.Header.Set("svix-signature", signature)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func (s *IntegrationTestSuite) userExists(ctx context.Context, userID string) bool {
	var exists bool
	err := s.dbPool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM app_user WHERE id = $1)`, userID).Scan(&exists)
	s.Require().NoError(err)
	return exists
}

func (s *IntegrationTestSuite) TestClerkWebhook() {
	ctx := context.Background()
	userID := s.newUserID()
	created := []byte(`{"type":"user.created","data":{"id":"` + userID + `"}}`)

	s.Equal(http.StatusBadRequest, s.postClerkEvent(ctx, created, false))
	s.False(s.userExists(ctx, userID))

	s.Require().Equal(http.StatusOK, s.postClerkEvent(ctx, created, true))
	s.True(s.userExists(ctx, userID))
	// replays are harmless
	s.Require().Equal(http.StatusOK, s.postClerkEvent(ctx, created, true))

	// the user logs a workout, then goes away with everything they own
	benchID := s.exerciseID(ctx, userID, "Bench Press")
	s.finishedWorkout(ctx, userID, benchID, [][2]float64{{60, 10}})

	deleted := []byte(`{"type":"user.deleted","data":{"id":"` + userID + `"}}`)
	s.Require().Equal(http.StatusOK, s.postClerkEvent(ctx, deleted, true))
	s.False(s.userExists(ctx, userID))

	var workouts int
	s.Require().NoError(s.dbPool.QueryRow(ctx, `SELECT count(*) FROM workout WHERE user_id = $1`, userID).Scan(&workouts))
	s.Zero(workouts)

	// the known-users cache was dropped, so the next request mirrors the user again
	s.Equal(http.StatusOK, s.call(ctx, userID, http.MethodGet, "/api/workouts", nil, nil))
	s.True(s.userExists(ctx, userID))
}
