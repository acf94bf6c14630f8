package stats

import "sort"

// Series is one side of a friend comparison.
type Series struct {
	Points      []OneRmPoint
	BodyWeights []BodyWeight
}

// ComparisonRow is a single date on the merged "me vs friend" chart.
type ComparisonRow struct {
	Date        string   `json:"date"`
	Mine        *float64 `json:"mine"`
	Friend      *float64 `json:"friend"`
	MyRatio     *float64 `json:"myRatio"`
	FriendRatio *float64 `json:"friendRatio"`
}

type dayValue struct {
	oneRm float64
	ratio *float64
}

func byDay(s Series) map[string]dayValue {
	m := make(map[string]dayValue, len(s.Points))
	// points are sorted by date, so the last workout of a day wins
	for _, p := range s.Points {
		dv := dayValue{oneRm: RoundTo(p.OneRm, 1)}
		if w, ok := BodyWeightOnOrBefore(s.BodyWeights, p.Date); ok {
			dv.ratio = Ratio(p.OneRm, w)
		}
		m[Day(p.Date)] = dv
	}
	return m
}

// MergeComparison merges both series on the union of their dates, ascending.
// A side without a point on a date is left nil.
func MergeComparison(mine, friend Series) []ComparisonRow {
	myDays := byDay(mine)
	friendDays := byDay(friend)

	dates := make([]string, 0, len(myDays)+len(friendDays))
	for d := range myDays {
		dates = append(dates, d)
	}
	for d := range friendDays {
		if _, ok := myDays[d]; !ok {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)

	rows := make([]ComparisonRow, 0, len(dates))
	for _, d := range dates {
		row := ComparisonRow{Date: d}
		if v, ok := myDays[d]; ok {
			oneRm := v.oneRm
			row.Mine = &oneRm
			row.MyRatio = v.ratio
		}
		if v, ok := friendDays[d]; ok {
			oneRm := v.oneRm
			row.Friend = &oneRm
			row.FriendRatio = v.ratio
		}
		rows = append(rows, row)
	}
	return rows
}

// OwnedSet is a set from a finished workout together with its owner and exercise.
type OwnedSet struct {
	ExerciseID   int
	ExerciseName string
	UserID       string
	WeightKg     float64
	Reps         int
}

// ExerciseSummary holds both users' best-ever 1RM for one exercise.
type ExerciseSummary struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	MyBestOneRm     *float64 `json:"myBestOneRm"`
	FriendBestOneRm *float64 `json:"friendBestOneRm"`
}

// SummarizeExercises lists every exercise either user has data for, sorted by name.
// Sets not owned by me are attributed to the friend.
func SummarizeExercises(sets []OwnedSet, me string) []ExerciseSummary {
	byExercise := make(map[int]*ExerciseSummary)
	for _, s := range sets {
		summary, ok := byExercise[s.ExerciseID]
		if !ok {
			summary = &ExerciseSummary{ID: s.ExerciseID, Name: s.ExerciseName}
			byExercise[s.ExerciseID] = summary
		}
		oneRm := OneRepMax(s.WeightKg, s.Reps)
		target := &summary.FriendBestOneRm
		if s.UserID == me {
			target = &summary.MyBestOneRm
		}
		if *target == nil || oneRm > **target {
			best := oneRm
			*target = &best
		}
	}

	summaries := make([]ExerciseSummary, 0, len(byExercise))
	for _, s := range byExercise {
		if s.MyBestOneRm != nil {
			*s.MyBestOneRm = RoundTo(*s.MyBestOneRm, 1)
		}
		if s.FriendBestOneRm != nil {
			*s.FriendBestOneRm = RoundTo(*s.FriendBestOneRm, 1)
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name == summaries[j].Name {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}
