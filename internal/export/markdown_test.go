package export

import (
	"strings"
	"testing"
	"time"

	"github.com/hayashik/onramp/internal/curriculum"
	"github.com/hayashik/onramp/internal/stats"
)

func exportDoc() *curriculum.Curriculum {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &curriculum.Curriculum{
		ID:          "cur-1",
		Title:       "Onboarding to acme-api",
		Description: "A guided tour of the service",
		CreatedAt:   created,
		UpdatedAt:   created.AddDate(0, 0, 4),
		Chapters: []curriculum.Chapter{
			{
				ID:    "ch-1",
				Title: "Orientation",
				Order: 0,
				Tasks: []curriculum.Task{
					{
						Title:         "Read the README",
						Description:   "Skim the project README",
						Status:        curriculum.StatusCompleted,
						TargetFiles:   []string{"README.md"},
						EstimatedTime: "15 minutes",
					},
					{
						Title:         "Trace a request",
						Status:        curriculum.StatusInProgress,
						EstimatedTime: "1 hour",
					},
				},
			},
		},
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(exportDoc(), nil)

	for _, want := range []string{
		"# Onboarding to acme-api",
		"Generated: 2026-03-01",
		"Last updated: 2026-03-05",
		"## 1. Orientation",
		"- [x] **Read the README** (15 minutes)",
		"  Files: README.md",
		"- [~] **Trace a request** (1 hour)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "## Progress") {
		t.Error("statistics section rendered without statistics")
	}
}

func TestMarkdown_WithStatistics(t *testing.T) {
	stat := &stats.LearningStatistics{
		TotalTasks:             2,
		CompletedTasks:         1,
		CompletionPercentage:   50,
		EstimatedTotalMinutes:  75,
		ActualTimeSpentMinutes: 17,
		StreakDays:             3,
	}

	out := Markdown(exportDoc(), stat)

	for _, want := range []string{
		"## Progress",
		"- Completed: 1/2 tasks (50%)",
		"- Time spent: 17m of an estimated 1h15m",
		"- Streak: 3 days",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
