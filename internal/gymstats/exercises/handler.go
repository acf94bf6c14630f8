package exercises

import (
	"errors"
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/auth"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	list, err := h.service.List(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		apierr.Write(w, err)
		return
	}

	span.SetAttributes(attribute.Int("exercises.count", len(list)))
	pkg.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	exerciseID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	detail, err := h.service.Detail(ctx, principal.UserID, exerciseID)
	if errors.Is(err, ErrExerciseNotFound) {
		apierr.Write(w, apierr.NotFound("exercise"))
		return
	}
	if err != nil {
		log.Errorf("exercise detail [%d] for [%s]: %s", exerciseID, principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}
