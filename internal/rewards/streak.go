package rewards

import (
	"sort"
	"time"
)

// Streak is the number of consecutive calendar days with at least one logged set.
type Streak struct {
	Current int `json:"currentStreak"`
	Max     int `json:"maxStreak"`
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// CalculateStreak computes the current and the longest streak for the given activity dates.
// Dates may be unordered and contain duplicates. The current streak is only alive if the
// last activity was today or yesterday, the max streak is historical and never lapses.
func CalculateStreak(dates []time.Time, today time.Time) Streak {
	if len(dates) == 0 {
		return Streak{}
	}

	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		days = append(days, Day(d))
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	running, maxStreak := 0, 0
	var last time.Time
	for i, day := range days {
		if i > 0 && day.Equal(last) {
			continue
		}
		if i > 0 && daysBetween(last, day) == 1 {
			running++
		} else {
			running = 1
		}
		if running > maxStreak {
			maxStreak = running
		}
		last = day
	}

	current := 0
	if daysBetween(last, Day(today)) <= 1 {
		current = running
	}

	return Streak{
		Current: current,
		Max:     maxStreak,
	}
}
