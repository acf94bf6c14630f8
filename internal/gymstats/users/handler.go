package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/auth"
	"github.com/gorillabuild/gorillabuild/internal/identity"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	Ensure(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
}

type Handler struct {
	repo     usersRepo
	profiles identity.ProfileSource
}

func NewHandler(repo usersRepo, profiles identity.ProfileSource) *Handler {
	return &Handler{
		repo:     repo,
		profiles: profiles,
	}
}

type updateMeRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=32,handle"`
	Units    *string `json:"units" validate:"omitempty,oneof=kg"`
}

func (h *Handler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get_me")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	// the webhook may not have fired yet
	if err := h.repo.Ensure(ctx, principal.UserID); err != nil {
		log.Errorf("get me, ensure user [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	user, err := h.repo.Get(ctx, principal.UserID)
	if err != nil {
		log.Errorf("get me [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, h.merge(ctx, user), http.StatusOK)
}

func (h *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update_me")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req updateMeRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		log.Tracef("update me, bad request: %s", err)
		apierr.Write(w, err)
		return
	}

	user, err := h.repo.UpdateProfile(ctx, principal.UserID, ProfileUpdate{
		Username: req.Username,
		Units:    req.Units,
	})
	switch {
	case errors.Is(err, ErrHandleImmutable):
		apierr.Write(w, apierr.Validation(ErrHandleImmutable.Error()))
		return
	case errors.Is(err, ErrHandleTaken):
		apierr.Write(w, apierr.Conflict(ErrHandleTaken.Error()))
		return
	case errors.Is(err, ErrUserNotFound):
		apierr.Write(w, apierr.NotFound("user"))
		return
	case err != nil:
		log.Errorf("update me [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	log.Debugf("user [%s] profile updated", principal.UserID)
	pkg.WriteJSON(w, h.merge(ctx, user), http.StatusOK)
}

func (h *Handler) merge(ctx context.Context, user *User) identity.Merged {
	return identity.MergeProfile(
		identity.Local{
			ID:        user.ID,
			Username:  user.Username,
			Units:     user.Units,
			CreatedAt: user.CreatedAt,
		},
		identity.Lookup(ctx, h.profiles, user.ID),
	)
}
