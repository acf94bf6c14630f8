package plans

import (
	"errors"
	"time"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// Plan is a reusable workout template.
type Plan struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PlanExercise struct {
	ID              int    `json:"id"`
	PlanID          int    `json:"planId"`
	ExerciseID      int    `json:"exerciseId"`
	ExerciseName    string `json:"exerciseName"`
	Order           int    `json:"order"`
	PlannedSetCount *int   `json:"plannedSetCount"`
}

type WithExercises struct {
	Plan
	Exercises []PlanExercise `json:"exercises"`
}

// ExerciseInput is one entry of a plan as sent by the client.
type ExerciseInput struct {
	ExerciseID      int  `json:"exerciseId" validate:"required,gt=0"`
	Order           int  `json:"order" validate:"gte=0"`
	PlannedSetCount *int `json:"plannedSetCount" validate:"omitempty,gt=0,lte=50"`
}

// Changes is a partial plan update. A nil Exercises leaves the exercises untouched,
// a non-nil one replaces them all.
type Changes struct {
	Name      *string
	Exercises []ExerciseInput
}

func (c Changes) empty() bool {
	return c.Name == nil && c.Exercises == nil
}
