package exercises

import (
	"context"
	"fmt"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/bodyweight"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/goals"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	List(ctx context.Context) ([]Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	FinishedSets(ctx context.Context, userID string, exerciseID int) ([]stats.SetSample, error)
}

type bodyWeightLister interface {
	List(ctx context.Context, userID string) ([]bodyweight.Entry, error)
}

type activeGoalFinder interface {
	ActiveForExercise(ctx context.Context, userID string, exerciseID int) (*goals.Goal, error)
}

// Service assembles exercise details. It backs both the HTTP handler and the MCP tools.
type Service struct {
	repo        exercisesRepo
	bodyWeights bodyWeightLister
	goals       activeGoalFinder
}

func NewService(repo exercisesRepo, bodyWeights bodyWeightLister, goals activeGoalFinder) *Service {
	return &Service{
		repo:        repo,
		bodyWeights: bodyWeights,
		goals:       goals,
	}
}

func (s *Service) List(ctx context.Context) ([]Exercise, error) {
	return s.repo.List(ctx)
}

// Detail returns ErrExerciseNotFound for an unknown exercise.
func (s *Service) Detail(ctx context.Context, userID string, exerciseID int) (_ *Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ex, err := s.repo.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	sets, err := s.repo.FinishedSets(ctx, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("finished sets: %w", err)
	}

	bodyWeights, err := s.bodyWeights.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("body weights: %w", err)
	}

	goal, err := s.goals.ActiveForExercise(ctx, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("active goal: %w", err)
	}

	d := BuildDetail(*ex, sets, bodyWeights, goal)
	return &d, nil
}
