package stats

import "time"

const dayLayout = "2006-01-02"

// BodyWeight is one body-weight log entry. Date carries only the calendar day.
type BodyWeight struct {
	ID       int       `json:"id"`
	Date     time.Time `json:"date"`
	WeightKg float64   `json:"weightKg"`
}

// RatioPoint pairs a history point with the strength to body-weight ratio on its date.
type RatioPoint struct {
	Date     string   `json:"date"`
	OneRm    float64  `json:"oneRm"`
	WeightKg *float64 `json:"bodyWeightKg"`
	Ratio    *float64 `json:"ratio"`
}

// Day formats t as its UTC calendar day.
func Day(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// BodyWeightOnOrBefore finds the latest entry whose day is not after the day of date.
// Entries on the same day are resolved in favour of the higher id.
func BodyWeightOnOrBefore(entries []BodyWeight, date time.Time) (float64, bool) {
	day := Day(date)
	found := false
	var best BodyWeight
	var bestDay string
	for _, e := range entries {
		eDay := Day(e.Date)
		if eDay > day {
			continue
		}
		if !found || eDay > bestDay || (eDay == bestDay && e.ID > best.ID) {
			best, bestDay, found = e, eDay, true
		}
	}
	if !found {
		return 0, false
	}
	return best.WeightKg, true
}

// Ratio divides a 1RM by body weight. Returns nil unless the weight is positive.
func Ratio(oneRm, weightKg float64) *float64 {
	if weightKg <= 0 {
		return nil
	}
	r := RoundTo(oneRm/weightKg, 3)
	return &r
}

// RatioSeries builds the relative-strength series parallel to points.
func RatioSeries(points []OneRmPoint, entries []BodyWeight) []RatioPoint {
	series := make([]RatioPoint, 0, len(points))
	for _, p := range points {
		rp := RatioPoint{
			Date:  Day(p.Date),
			OneRm: RoundTo(p.OneRm, 1),
		}
		if w, ok := BodyWeightOnOrBefore(entries, p.Date); ok {
			weight := w
			rp.WeightKg = &weight
			rp.Ratio = Ratio(p.OneRm, w)
		}
		series = append(series, rp)
	}
	return series
}
