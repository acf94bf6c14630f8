package plans

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/auth"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=plans_mocks_test.go -package=plans_test

type plansRepo interface {
	List(ctx context.Context, userID string) ([]Plan, error)
	Get(ctx context.Context, userID string, planID int) (*WithExercises, error)
	Create(ctx context.Context, userID, name string, exercises []ExerciseInput) (*WithExercises, error)
	Update(ctx context.Context, userID string, planID int, changes Changes) (*WithExercises, error)
	Delete(ctx context.Context, userID string, planID int) error
}

type Handler struct {
	repo plansRepo
}

func NewHandler(repo plansRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

type createPlanRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=100"`
	Exercises []ExerciseInput `json:"exercises" validate:"max=50,dive"`
}

type updatePlanRequest struct {
	Name      *string         `json:"name" validate:"omitempty,min=1,max=100"`
	Exercises []ExerciseInput `json:"exercises" validate:"omitempty,max=50,dive"`
}

func writeRepoErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		apierr.Write(w, apierr.NotFound("plan"))
	case errors.Is(err, ErrExerciseNotFound):
		apierr.Write(w, apierr.NotFound("exercise"))
	default:
		apierr.Write(w, err)
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	plans, err := h.repo.List(ctx, principal.UserID)
	if err != nil {
		log.Errorf("list plans [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, plans, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	planID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	plan, err := h.repo.Get(ctx, principal.UserID, planID)
	if err != nil {
		writeRepoErr(w, err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req createPlanRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	plan, err := h.repo.Create(ctx, principal.UserID, req.Name, req.Exercises)
	if err != nil {
		log.Debugf("create plan [%s]: %s", principal.UserID, err)
		writeRepoErr(w, err)
		return
	}

	log.Debugf("user [%s] created plan %d with %d exercises", principal.UserID, plan.ID, len(plan.Exercises))
	pkg.WriteJSON(w, plan, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	planID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req updatePlanRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	plan, err := h.repo.Update(ctx, principal.UserID, planID, Changes{
		Name:      req.Name,
		Exercises: req.Exercises,
	})
	if err != nil {
		log.Debugf("update plan [%d]: %s", planID, err)
		writeRepoErr(w, err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	planID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	if err := h.repo.Delete(ctx, principal.UserID, planID); err != nil {
		writeRepoErr(w, err)
		return
	}

	pkg.WriteJSON(w, pkg.OK{OK: true}, http.StatusOK)
}
