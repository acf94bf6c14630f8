package goals

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/auth"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

// ProgressReader reads active goals and the best 1RMs they are measured against.
type ProgressReader interface {
	ListActive(ctx context.Context, userID string) ([]Goal, error)
	BestOneRms(ctx context.Context, userID string, exerciseIDs []int) (map[int]float64, error)
}

type goalsRepo interface {
	ProgressReader
	Create(ctx context.Context, userID string, ng NewGoal) (*Goal, error)
	Update(ctx context.Context, userID string, goalID int, targetOneRm float64, targetDate time.Time) (*Goal, error)
	Deactivate(ctx context.Context, userID string, goalID int) error
}

type Handler struct {
	repo goalsRepo
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

type createGoalRequest struct {
	ExerciseID  int     `json:"exerciseId" validate:"required,gt=0"`
	TargetOneRm float64 `json:"targetOneRm" validate:"required,gt=0"`
	TargetDate  string  `json:"targetDate" validate:"required,day"`
}

type updateGoalRequest struct {
	TargetOneRm float64 `json:"targetOneRm" validate:"required,gt=0"`
	TargetDate  string  `json:"targetDate" validate:"required,day"`
}

// ActiveWithProgress lists the user's active goals, each with its progress.
func ActiveWithProgress(ctx context.Context, repo ProgressReader, userID string) ([]WithProgress, error) {
	active, err := repo.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	exerciseIDs := make([]int, 0, len(active))
	for _, g := range active {
		exerciseIDs = append(exerciseIDs, g.ExerciseID)
	}
	best, err := repo.BestOneRms(ctx, userID, exerciseIDs)
	if err != nil {
		return nil, err
	}

	result := make([]WithProgress, 0, len(active))
	for _, g := range active {
		var current *float64
		if v, ok := best[g.ExerciseID]; ok {
			current = &v
		}
		result = append(result, AttachProgress(g, current))
	}
	return result, nil
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	result, err := ActiveWithProgress(ctx, h.repo, principal.UserID)
	if err != nil {
		log.Errorf("list goals [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.create")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req createGoalRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}
	targetDate, err := apierr.ParseDay(req.TargetDate)
	if err != nil {
		apierr.Write(w, apierr.Validation("invalid targetDate"))
		return
	}

	goal, err := h.repo.Create(ctx, principal.UserID, NewGoal{
		ExerciseID:  req.ExerciseID,
		TargetOneRm: req.TargetOneRm,
		TargetDate:  targetDate,
	})
	switch {
	case errors.Is(err, ErrExerciseNotFound):
		apierr.Write(w, apierr.NotFound("exercise"))
		return
	case errors.Is(err, ErrActiveGoalRace):
		apierr.Write(w, apierr.Conflict(ErrActiveGoalRace.Error()))
		return
	case err != nil:
		log.Errorf("create goal [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	log.Debugf("user [%s] set goal %d for exercise %d", principal.UserID, goal.ID, goal.ExerciseID)
	pkg.WriteJSON(w, goal, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	goalID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req updateGoalRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}
	targetDate, err := apierr.ParseDay(req.TargetDate)
	if err != nil {
		apierr.Write(w, apierr.Validation("invalid targetDate"))
		return
	}

	goal, err := h.repo.Update(ctx, principal.UserID, goalID, req.TargetOneRm, targetDate)
	if errors.Is(err, ErrGoalNotFound) {
		apierr.Write(w, apierr.NotFound("goal"))
		return
	}
	if err != nil {
		log.Errorf("update goal [%d]: %s", goalID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	goalID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	err = h.repo.Deactivate(ctx, principal.UserID, goalID)
	if errors.Is(err, ErrGoalNotFound) {
		apierr.Write(w, apierr.NotFound("goal"))
		return
	}
	if err != nil {
		log.Errorf("deactivate goal [%d]: %s", goalID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, pkg.OK{OK: true}, http.StatusOK)
}
