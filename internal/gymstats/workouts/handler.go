package workouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/auth"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/metrics"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Active(ctx context.Context, userID string) (*Workout, error)
	Start(ctx context.Context, userID string, planID *int) (int, error)
	Finish(ctx context.Context, userID string, workoutID int) error
	AddExercise(ctx context.Context, userID string, workoutID, exerciseID int) (*WorkoutExercise, error)
	AddSet(ctx context.Context, userID string, workoutExerciseID int, weightKg float64, reps int) (*Set, error)
	UpdateSet(ctx context.Context, userID string, setID int, weightKg *float64, reps *int) (*Set, error)
	DeleteSet(ctx context.Context, userID string, setID int) error
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

type startWorkoutRequest struct {
	PlanID *int `json:"planId" validate:"omitempty,gt=0"`
}

type startWorkoutResponse struct {
	ID int `json:"id"`
}

type addExerciseRequest struct {
	ExerciseID int `json:"exerciseId" validate:"required,gt=0"`
}

type addSetRequest struct {
	WeightKg *float64 `json:"weightKg" validate:"required,gte=0,lte=1000"`
	Reps     *int     `json:"reps" validate:"required,gte=0,lte=1000"`
}

type updateSetRequest struct {
	WeightKg *float64 `json:"weightKg" validate:"omitempty,gte=0,lte=1000"`
	Reps     *int     `json:"reps" validate:"omitempty,gte=0,lte=1000"`
}

func (h *Handler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.active")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	workout, err := h.repo.Active(ctx, principal.UserID)
	if err != nil {
		log.Errorf("active workout [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	// a nil workout encodes as JSON null
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req startWorkoutRequest
	if r.ContentLength != 0 {
		if err := apierr.DecodeJSON(r, &req); err != nil {
			apierr.Write(w, err)
			return
		}
	}

	workoutID, err := h.repo.Start(ctx, principal.UserID, req.PlanID)
	switch {
	case errors.Is(err, ErrWorkoutActive):
		apierr.Write(w, apierr.Conflict(ErrWorkoutActive.Error()))
		return
	case errors.Is(err, ErrPlanNotFound):
		apierr.Write(w, apierr.NotFound("plan"))
		return
	case err != nil:
		log.Errorf("start workout [%s]: %s", principal.UserID, err)
		apierr.Write(w, err)
		return
	}

	h.metricsManager.CounterWorkoutsStarted.Inc()
	span.SetAttributes(attribute.Int("workout.id", workoutID))
	log.Debugf("user [%s] started workout %d", principal.UserID, workoutID)
	pkg.WriteJSON(w, startWorkoutResponse{ID: workoutID}, http.StatusCreated)
}

func (h *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finish")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	workoutID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	err = h.repo.Finish(ctx, principal.UserID, workoutID)
	if errors.Is(err, ErrWorkoutNotFound) {
		apierr.Write(w, apierr.NotFound("workout"))
		return
	}
	if err != nil {
		log.Errorf("finish workout [%d]: %s", workoutID, err)
		apierr.Write(w, err)
		return
	}

	h.metricsManager.CounterWorkoutsFinished.Inc()
	pkg.WriteJSON(w, pkg.OK{OK: true}, http.StatusOK)
}

func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add_exercise")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	workoutID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req addExerciseRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	we, err := h.repo.AddExercise(ctx, principal.UserID, workoutID, req.ExerciseID)
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		apierr.Write(w, apierr.NotFound("workout"))
		return
	case errors.Is(err, ErrExerciseNotFound):
		apierr.Write(w, apierr.NotFound("exercise"))
		return
	case err != nil:
		log.Errorf("add exercise to workout [%d]: %s", workoutID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, we, http.StatusCreated)
}

func (h *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add_set")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	workoutExerciseID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req addSetRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	set, err := h.repo.AddSet(ctx, principal.UserID, workoutExerciseID, *req.WeightKg, *req.Reps)
	if errors.Is(err, ErrWorkoutExerciseNotFound) {
		apierr.Write(w, apierr.NotFound("workout exercise"))
		return
	}
	if err != nil {
		log.Errorf("add set to workout exercise [%d]: %s", workoutExerciseID, err)
		apierr.Write(w, err)
		return
	}

	h.metricsManager.CounterSetsLogged.Inc()
	pkg.WriteJSON(w, set, http.StatusCreated)
}

func (h *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update_set")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	setID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	var req updateSetRequest
	if err := apierr.DecodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	set, err := h.repo.UpdateSet(ctx, principal.UserID, setID, req.WeightKg, req.Reps)
	if errors.Is(err, ErrSetNotFound) {
		apierr.Write(w, apierr.NotFound("set"))
		return
	}
	if err != nil {
		log.Errorf("update set [%d]: %s", setID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, set, http.StatusOK)
}

func (h *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete_set")
	defer span.End()

	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	setID, err := apierr.ParseID(r, "id")
	if err != nil {
		apierr.Write(w, err)
		return
	}

	err = h.repo.DeleteSet(ctx, principal.UserID, setID)
	if errors.Is(err, ErrSetNotFound) {
		apierr.Write(w, apierr.NotFound("set"))
		return
	}
	if err != nil {
		log.Errorf("delete set [%d]: %s", setID, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, pkg.OK{OK: true}, http.StatusOK)
}
