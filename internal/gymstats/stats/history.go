package stats

import (
	"sort"
	"time"
)

// SetSample is a single logged set, tagged with the workout it belongs to.
// Date is the workout's reference date (finish time, or start time when unfinished).
type SetSample struct {
	WorkoutID int
	Date      time.Time
	WeightKg  float64
	Reps      int
}

// OneRmPoint is the best estimated 1RM reached in one workout.
type OneRmPoint struct {
	WorkoutID    int       `json:"workoutId"`
	Date         time.Time `json:"date"`
	OneRm        float64   `json:"oneRm"`
	BestWeightKg float64   `json:"bestWeightKg"`
	BestReps     int       `json:"bestReps"`
}

// BestSetHistory reduces sets to one point per workout, keeping the first set with the
// strictly greatest positive 1RM. A workout with only zero sets keeps a zero point with
// no best weight or reps. Points are ordered by date ascending; workouts sharing a date
// keep the order in which they first appear in sets.
func BestSetHistory(sets []SetSample) []OneRmPoint {
	byWorkout := make(map[int]int) // workout id -> index in points
	points := make([]OneRmPoint, 0)
	for _, s := range sets {
		idx, ok := byWorkout[s.WorkoutID]
		if !ok {
			idx = len(points)
			byWorkout[s.WorkoutID] = idx
			points = append(points, OneRmPoint{WorkoutID: s.WorkoutID, Date: s.Date})
		}
		if oneRm := OneRepMax(s.WeightKg, s.Reps); oneRm > points[idx].OneRm {
			points[idx].OneRm = oneRm
			points[idx].BestWeightKg = s.WeightKg
			points[idx].BestReps = s.Reps
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// BestOneRm returns the best 1RM across all given sets.
// The second return value is false when no set has a positive 1RM.
func BestOneRm(sets []SetSample) (float64, bool) {
	best := 0.0
	for _, s := range sets {
		if oneRm := OneRepMax(s.WeightKg, s.Reps); oneRm > best {
			best = oneRm
		}
	}
	return best, best > 0
}
