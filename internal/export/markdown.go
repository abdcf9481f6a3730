// Package export renders persisted documents to portable text formats.
// It is a pure transform over its inputs and holds no state.
package export

import (
	"fmt"
	"strings"

	"github.com/hayashik/onramp/internal/curriculum"
	"github.com/hayashik/onramp/internal/stats"
)

// statusMarkers maps task status to a checklist marker.
var statusMarkers = map[curriculum.TaskStatus]string{
	curriculum.StatusNotStarted: "[ ]",
	curriculum.StatusInProgress: "[~]",
	curriculum.StatusCompleted:  "[x]",
	curriculum.StatusSkipped:    "[-]",
}

// Markdown renders a curriculum, with optional statistics, to a single
// markdown document. stat may be nil.
func Markdown(doc *curriculum.Curriculum, stat *stats.LearningStatistics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	if doc.Description != "" {
		b.WriteString(doc.Description)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Generated: %s\n", doc.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Last updated: %s\n\n", doc.UpdatedAt.Format("2006-01-02"))

	if stat != nil {
		writeStatistics(&b, stat)
	}

	for _, ch := range doc.Chapters {
		fmt.Fprintf(&b, "## %d. %s\n\n", ch.Order+1, ch.Title)
		if ch.Description != "" {
			b.WriteString(ch.Description)
			b.WriteString("\n\n")
		}
		for _, task := range ch.Tasks {
			writeTask(&b, task)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeStatistics(b *strings.Builder, stat *stats.LearningStatistics) {
	b.WriteString("## Progress\n\n")
	fmt.Fprintf(b, "- Completed: %d/%d tasks (%.0f%%)\n", stat.CompletedTasks, stat.TotalTasks, stat.CompletionPercentage)
	fmt.Fprintf(b, "- Time spent: %s of an estimated %s\n", formatMinutes(stat.ActualTimeSpentMinutes), formatMinutes(stat.EstimatedTotalMinutes))
	fmt.Fprintf(b, "- Streak: %s\n\n", formatStreak(stat.StreakDays))
}

func writeTask(b *strings.Builder, task curriculum.Task) {
	marker, ok := statusMarkers[task.Status]
	if !ok {
		marker = "[ ]"
	}
	fmt.Fprintf(b, "- %s **%s** (%s)\n", marker, task.Title, task.EstimatedTime)
	if task.Description != "" {
		fmt.Fprintf(b, "  %s\n", task.Description)
	}
	if len(task.TargetFiles) > 0 {
		fmt.Fprintf(b, "  Files: %s\n", strings.Join(task.TargetFiles, ", "))
	}
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}

func formatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
