package stats

import "math"

// Progress is the distance between a goal's target 1RM and the current best.
type Progress struct {
	Percent     int      `json:"progress"`
	RemainingKg *float64 `json:"remainingKg"`
}

// GoalProgress computes how far current is towards target.
// Without a current 1RM the percent is 0 and the remaining distance is unknown (nil).
func GoalProgress(target float64, current *float64) Progress {
	if current == nil {
		return Progress{}
	}
	remaining := math.Max(0, target-*current)
	p := Progress{RemainingKg: &remaining}
	if target > 0 {
		p.Percent = int(math.Min(100, math.Max(0, math.Round(*current/target*100))))
	}
	return p
}
