package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hayashik/onramp/internal/curriculum"
	"github.com/hayashik/onramp/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics for this workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		doc, ok := curriculum.NewStore(root).Load()
		if !ok {
			return fmt.Errorf("no curriculum found: run `onramp generate` first")
		}

		s, err := stats.NewEngine(root).GetOrCreate(doc)
		if err != nil {
			return fmt.Errorf("compute statistics: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(doc.Title))
		fmt.Fprintf(out, "Completed:  %d/%d tasks (%.0f%%)\n", s.CompletedTasks, s.TotalTasks, s.CompletionPercentage)
		fmt.Fprintf(out, "In flight:  %d in progress, %d skipped\n", s.InProgressTasks, s.SkippedTasks)
		fmt.Fprintf(out, "Time spent: %d minutes of an estimated %d\n", s.ActualTimeSpentMinutes, s.EstimatedTotalMinutes)
		fmt.Fprintf(out, "Streak:     %d days (%d learning days total)\n", s.StreakDays, len(s.LearningDates))

		fmt.Fprintln(out, sectionStyle.Render("\nChapters"))
		for _, p := range stats.Progress(doc) {
			fmt.Fprintf(out, "  %-40s %d/%d (%.0f%%)\n", p.Title, p.CompletedTasks, p.TotalTasks, p.Percentage)
		}
		return nil
	},
}
