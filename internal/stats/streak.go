package stats

import (
	"sort"
	"time"
)

// Streak counts consecutive calendar days with learning activity ending
// at today or yesterday. Dates use DateLayout; malformed entries are
// skipped. Pure function of its inputs.
func Streak(dates []string, today time.Time) int {
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	// Broken streak: no activity today or yesterday.
	if gap := daysBetween(days[0], midnight); gap > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) != 1 {
			break
		}
		streak++
	}
	return streak
}

func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

// recordDate inserts a calendar date into the sorted, de-duplicated
// learning-date list.
func recordDate(dates []string, day string) []string {
	i := sort.SearchStrings(dates, day)
	if i < len(dates) && dates[i] == day {
		return dates
	}
	dates = append(dates, "")
	copy(dates[i+1:], dates[i:])
	dates[i] = day
	return dates
}
