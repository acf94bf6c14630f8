package exercises

import (
	"errors"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/bodyweight"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/goals"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Exercise is an entry of the global catalog.
type Exercise struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Detail is everything the exercise page shows for one user.
type Detail struct {
	Exercise          Exercise            `json:"exercise"`
	History           []stats.OneRmPoint  `json:"history"`
	Ratios            []stats.RatioPoint  `json:"ratios"`
	BodyWeightEntries []bodyweight.Entry  `json:"bodyWeightEntries"`
	Goal              *goals.WithProgress `json:"goal"`
}

// BuildDetail derives the history, the ratio series and the goal progress from the
// user's finished sets. bodyWeights are expected newest first.
func BuildDetail(ex Exercise, sets []stats.SetSample, bodyWeights []bodyweight.Entry, goal *goals.Goal) Detail {
	history := stats.BestSetHistory(sets)
	if bodyWeights == nil {
		bodyWeights = []bodyweight.Entry{}
	}

	d := Detail{
		Exercise:          ex,
		History:           history,
		Ratios:            stats.RatioSeries(history, bodyweight.ToStats(bodyWeights)),
		BodyWeightEntries: bodyWeights,
	}

	if goal != nil {
		var current *float64
		if best, ok := stats.BestOneRm(sets); ok {
			current = &best
		}
		wp := goals.AttachProgress(*goal, current)
		d.Goal = &wp
	}
	return d
}
