package bodyweight

import (
	"sort"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
)

// Entry is one body-weight log line. Several entries per day are allowed.
type Entry struct {
	ID        int       `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	WeightKg  float64   `json:"weightKg"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e Entry) ToStats() stats.BodyWeight {
	day, _ := time.Parse(time.DateOnly, e.Date)
	return stats.BodyWeight{
		ID:       e.ID,
		Date:     day,
		WeightKg: e.WeightKg,
	}
}

func ToStats(entries []Entry) []stats.BodyWeight {
	out := make([]stats.BodyWeight, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ToStats())
	}
	return out
}

// Ascending returns a copy of entries ordered by date, then id.
func Ascending(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].ID < out[j].ID
		}
		return out[i].Date < out[j].Date
	})
	return out
}
