package stats

import (
	"testing"
	"time"
)

var today = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func day(offset int) string {
	return today.AddDate(0, 0, offset).Format(DateLayout)
}

func TestStreak(t *testing.T) {
	cases := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"today only", []string{day(0)}, 1},
		{"three consecutive days", []string{day(-2), day(-1), day(0)}, 3},
		{"ends yesterday", []string{day(-2), day(-1)}, 2},
		{"stale activity", []string{day(-5)}, 0},
		{"gap stops the count", []string{day(-4), day(-3), day(-1), day(0)}, 2},
		{"unsorted input", []string{day(0), day(-2), day(-1)}, 3},
		{"malformed entries skipped", []string{"not-a-date", day(0)}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Streak(tc.dates, today); got != tc.want {
				t.Errorf("Streak(%v) = %d, want %d", tc.dates, got, tc.want)
			}
		})
	}
}

func TestRecordDate(t *testing.T) {
	dates := []string{}
	dates = recordDate(dates, day(-1))
	dates = recordDate(dates, day(-3))
	dates = recordDate(dates, day(-1)) // duplicate
	dates = recordDate(dates, day(0))

	want := []string{day(-3), day(-1), day(0)}
	if len(dates) != len(want) {
		t.Fatalf("dates = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}

func TestEstimateMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"30 minutes", 30},
		{"45min", 45},
		{"  90 minutes", 90},
		{"about an hour", DefaultEstimateMinutes},
		{"", DefaultEstimateMinutes},
	}
	for _, tc := range cases {
		if got := EstimateMinutes(tc.in); got != tc.want {
			t.Errorf("EstimateMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
