package goals

import (
	"errors"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
)

var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrActiveGoalRace means a concurrent request created an active goal for the same exercise.
	ErrActiveGoalRace = errors.New("another active goal was created concurrently")
)

// Goal is a target 1RM for one exercise. A user has at most one active goal per exercise.
type Goal struct {
	ID           int       `json:"id"`
	ExerciseID   int       `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	TargetOneRm  float64   `json:"targetOneRm"`
	TargetDate   string    `json:"targetDate"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type WithProgress struct {
	Goal
	CurrentOneRm *float64 `json:"currentOneRm"`
	RemainingKg  *float64 `json:"remainingKg"`
	Progress     int      `json:"progress"`
}

// AttachProgress computes the goal's progress from the best 1RM reached so far (nil if none).
func AttachProgress(g Goal, current *float64) WithProgress {
	p := stats.GoalProgress(g.TargetOneRm, current)
	wp := WithProgress{
		Goal:     g,
		Progress: p.Percent,
	}
	if current != nil {
		c := stats.RoundTo(*current, 1)
		wp.CurrentOneRm = &c
	}
	if p.RemainingKg != nil {
		rem := stats.RoundTo(*p.RemainingKg, 1)
		wp.RemainingKg = &rem
	}
	return wp
}
