package workouts

import (
	"errors"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
)

// defaultPrefillSets is used when a plan exercise has no planned set count and no history.
const defaultPrefillSets = 3

var (
	ErrWorkoutActive           = errors.New("a workout is already active")
	ErrWorkoutNotFound         = errors.New("workout not found")
	ErrPlanNotFound            = errors.New("plan not found")
	ErrExerciseNotFound        = errors.New("exercise not found")
	ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")
	ErrSetNotFound             = errors.New("set not found")
)

type Workout struct {
	ID         int               `json:"id"`
	StartedAt  time.Time         `json:"startedAt"`
	FinishedAt *time.Time        `json:"finishedAt"`
	Exercises  []WorkoutExercise `json:"exercises"`
}

type WorkoutExercise struct {
	ID           int    `json:"id"`
	WorkoutID    int    `json:"workoutId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Position     int    `json:"order"`
	Sets         []Set  `json:"sets"`
}

type Set struct {
	ID                int     `json:"id"`
	WorkoutExerciseID int     `json:"workoutExerciseId"`
	Position          int     `json:"order"`
	WeightKg          float64 `json:"weightKg"`
	Reps              int     `json:"reps"`
	OneRm             float64 `json:"oneRm"`
}

func (s *Set) fillOneRm() {
	s.OneRm = stats.OneRepMax(s.WeightKg, s.Reps)
}

// PrefillSet is a weight/reps pair carried over from a previous workout.
type PrefillSet struct {
	WeightKg float64
	Reps     int
}

// Prefill decides the sets of a plan exercise in a new workout. With a planned count it
// creates exactly that many; without one it repeats the previous sets, or creates
// defaultPrefillSets when there are none. Sets beyond the history start at zero.
func Prefill(plannedSetCount *int, lastSets []PrefillSet) []PrefillSet {
	n := len(lastSets)
	if plannedSetCount != nil {
		n = *plannedSetCount
	} else if n == 0 {
		n = defaultPrefillSets
	}

	sets := make([]PrefillSet, n)
	for i := range sets {
		if i < len(lastSets) {
			sets[i] = lastSets[i]
		}
	}
	return sets
}

// historyLimit is how many previous sets to load for a plan exercise.
func historyLimit(plannedSetCount *int) int {
	if plannedSetCount != nil {
		return *plannedSetCount
	}
	return defaultPrefillSets
}
