package friends

import (
	"errors"
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/auth"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/exercises"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

type friendRequest struct {
	Handle string `json:"handle" validate:"required,min=1,max=32"`
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrFriendshipNotFound):
		apierr.Write(w, apierr.NotFound("friendship"))
	case errors.Is(err, exercises.ErrExerciseNotFound):
		apierr.Write(w, apierr.NotFound("exercise"))
	case errors.Is(err, ErrUserNotFound):
		apierr.Write(w, apierr.NotFound("user"))
	case errors.Is(err, ErrSelfFriendship):
		apierr.Write(w, apierr.Validation(ErrSelfFriendship.Error()))
	case errors.Is(err, ErrFriendshipExists):
		apierr.Write(w, apierr.Conflict(ErrFriendshipExists.Error()))
	default:
		log.Errorf("friends: %s", err)
		apierr.Write(w, err)
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.list")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	friends, err := h.service.Friends(ctx, principal.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}

	pkg.WriteJSON(w, friends, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.create")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req friendRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	friendship, err := h.service.Request(ctx, principal.UserID, req.Handle)
	if err != nil {
		writeErr(w, err)
		return
	}

	log.Debugf("user [%s] sent friend request %d", principal.UserID, friendship.ID)
	pkg.WriteJSON(w, friendship, http.StatusCreated)
}

func (h *Handler) HandleRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.requests")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	requests, err := h.service.IncomingRequests(ctx, principal.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}

	pkg.WriteJSON(w, requests, http.StatusOK)
}

func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.accept")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	friendshipID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	if err := h.service.Accept(ctx, principal.UserID, friendshipID); err != nil {
		writeErr(w, err)
		return
	}

	pkg.WriteJSON(w, pkg.OK{OK: true}, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.get")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	friendshipID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	friend, err := h.service.Friend(ctx, principal.UserID, friendshipID)
	if err != nil {
		writeErr(w, err)
		return
	}

	pkg.WriteJSON(w, friend, http.StatusOK)
}

func (h *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.exercises")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	friendshipID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	summary, err := h.service.ExerciseSummary(ctx, principal.UserID, friendshipID)
	if err != nil {
		writeErr(w, err)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.compare")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	friendshipID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}
	exerciseID, err := apierr.ParseID(r, "exerciseId")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	comparison, err := h.service.Compare(ctx, principal.UserID, friendshipID, exerciseID)
	if err != nil {
		writeErr(w, err)
		return
	}

	pkg.WriteJSON(w, comparison, http.StatusOK)
}
