// Package webhooks receives identity provider events and mirrors them into the local user table.
package webhooks

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/metrics"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	log "github.com/sirupsen/logrus"
	svix "github.com/svix/svix-webhooks/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=webhooks_mocks_test.go -package=webhooks_test

const (
	EventUserCreated = "user.created"
	EventUserDeleted = "user.deleted"

	maxPayloadBytes = 1 << 20
)

var svixHeaders = []string{"svix-id", "svix-timestamp", "svix-signature"}

type userStore interface {
	Ensure(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string) (bool, error)
}

type profileEvicter interface {
	Evict(ctx context.Context, userID string) error
}

type userForgetter interface {
	Forget(userID string)
}

type clerkEvent struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type receivedResponse struct {
	Received bool `json:"received"`
}

type ClerkHandler struct {
	webhook        *svix.Webhook
	users          userStore
	profiles       profileEvicter
	knownUsers     userForgetter
	metricsManager *metrics.Manager
}

// NewClerkHandler verifies events with the signing secret. An empty or malformed secret
// leaves the handler answering 500 to every event.
func NewClerkHandler(
	secret string,
	users userStore,
	profiles profileEvicter,
	knownUsers userForgetter,
	metricsManager *metrics.Manager,
) *ClerkHandler {
	h := &ClerkHandler{
		users:          users,
		profiles:       profiles,
		knownUsers:     knownUsers,
		metricsManager: metricsManager,
	}
	if secret == "" {
		log.Errorln("clerk webhook secret not set, webhook events will be rejected")
		return h
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		log.Errorf("clerk webhook secret: %s", err)
		return h
	}
	h.webhook = wh
	return h
}

func (h *ClerkHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.webhooks.clerk")
	defer span.End()

	if h.webhook == nil {
		span.SetStatus(codes.Error, "no-secret")
		apierr.Write(w, apierr.Internal())
		return
	}

	for _, header := range svixHeaders {
		if r.Header.Get(header) == "" {
			log.Tracef("clerk webhook: missing header %s", header)
			apierr.Write(w, apierr.Validation("missing svix headers"))
			return
		}
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		apierr.Write(w, apierr.Validation("unreadable body"))
		return
	}

	if err := h.webhook.Verify(payload, r.Header); err != nil {
		log.Warnf("clerk webhook: verify [%s]: %s", r.Header.Get("svix-id"), err)
		span.SetStatus(codes.Error, "invalid-signature")
		apierr.Write(w, apierr.Validation("invalid signature"))
		return
	}

	var event clerkEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		apierr.Write(w, apierr.Validation("invalid event"))
		return
	}
	span.SetAttributes(attribute.String("event.type", event.Type), attribute.String("user.id", event.Data.ID))
	h.metricsManager.CounterWebhookEvents.WithLabelValues(event.Type).Inc()

	switch event.Type {
	case EventUserCreated:
		if event.Data.ID == "" {
			break
		}
		if err := h.users.Ensure(ctx, event.Data.ID); err != nil {
			log.Errorf("clerk webhook: create user [%s]: %s", event.Data.ID, err)
			apierr.Write(w, err)
			return
		}
		log.Debugf("clerk webhook: user [%s] created", event.Data.ID)
	case EventUserDeleted:
		if event.Data.ID == "" {
			break
		}
		if err := h.deleteUser(ctx, event.Data.ID); err != nil {
			log.Errorf("clerk webhook: delete user [%s]: %s", event.Data.ID, err)
			apierr.Write(w, err)
			return
		}
	default:
		log.Tracef("clerk webhook: ignoring event %s", event.Type)
	}

	pkg.WriteJSON(w, receivedResponse{Received: true}, http.StatusOK)
}

func (h *ClerkHandler) deleteUser(ctx context.Context, userID string) error {
	deleted, err := h.users.Delete(ctx, userID)
	if err != nil {
		return err
	}

	h.knownUsers.Forget(userID)
	if err := h.profiles.Evict(ctx, userID); err != nil {
		// the entry expires on its own
		log.Warnf("clerk webhook: evict profile [%s]: %s", userID, err)
	}

	log.Debugf("clerk webhook: user [%s] deleted: %t", userID, deleted)
	return nil
}
