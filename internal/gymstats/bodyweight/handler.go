package bodyweight

import (
	"context"
	"net/http"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/auth"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=bodyweight_mocks_test.go -package=bodyweight_test

type bodyWeightRepo interface {
	List(ctx context.Context, userID string) ([]Entry, error)
	Add(ctx context.Context, userID string, day time.Time, weightKg float64) (*Entry, error)
}

type Handler struct {
	repo bodyWeightRepo
}

func NewHandler(repo bodyWeightRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

type addEntryRequest struct {
	Date     string  `json:"date" validate:"required,day"`
	WeightKg float64 `json:"weightKg" validate:"required,gt=0,lt=1000"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.list")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	entries, err := h.repo.List(ctx, principal.UserID)
	if err != nil {
		log.Errorf("list body weight [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.add")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req addEntryRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}
	day, err := apierr.ParseDay(req.Date)
	if err != nil {
		apierr.Write(w, apierr.Validation("invalid date"))
		return
	}

	entry, err := h.repo.Add(ctx, principal.UserID, day, req.WeightKg)
	if err != nil {
		log.Errorf("add body weight [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusCreated)
}
