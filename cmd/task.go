package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hayashik/onramp/internal/curriculum"
	"github.com/hayashik/onramp/internal/stats"
)

var statusGlyphs = map[curriculum.TaskStatus]string{
	curriculum.StatusNotStarted: "·",
	curriculum.StatusInProgress: "▶",
	curriculum.StatusCompleted:  "✓",
	curriculum.StatusSkipped:    "↷",
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "List and update curriculum tasks",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chapters and tasks with their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		doc, ok := curriculum.NewStore(root).Load()
		if !ok {
			return fmt.Errorf("no curriculum found: run `onramp generate` first")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(doc.Title))
		for i, progress := range stats.Progress(doc) {
			ch := doc.Chapters[i]
			fmt.Fprintf(out, "\n%s %s\n",
				sectionStyle.Render(fmt.Sprintf("%d. %s", ch.Order+1, ch.Title)),
				dimStyle.Render(fmt.Sprintf("(%d/%d, %.0f%%)", progress.CompletedTasks, progress.TotalTasks, progress.Percentage)))
			for _, task := range ch.Tasks {
				fmt.Fprintf(out, "  %s %s %s\n",
					statusGlyphs[task.Status], task.Title,
					dimStyle.Render(fmt.Sprintf("[%s, %s]", task.ID, task.EstimatedTime)))
				if len(task.TargetFiles) > 0 {
					fmt.Fprintf(out, "      %s\n", dimStyle.Render(strings.Join(task.TargetFiles, ", ")))
				}
			}
		}
		return nil
	},
}

var taskStartCmd = &cobra.Command{
	Use:   "start <task-id>",
	Short: "Mark a task as in progress and start its timer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transitionTask(cmd, args[0], curriculum.StatusInProgress)
	},
}

var taskCompleteCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a task as completed and record the elapsed time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transitionTask(cmd, args[0], curriculum.StatusCompleted)
	},
}

var taskSkipCmd = &cobra.Command{
	Use:   "skip <task-id>",
	Short: "Mark a task as skipped",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transitionTask(cmd, args[0], curriculum.StatusSkipped)
	},
}

// transitionTask applies one status change and feeds the old/new pair to
// the statistics engine so the time ledger sees the transition.
func transitionTask(cmd *cobra.Command, taskID string, status curriculum.TaskStatus) error {
	root, err := resolveWorkspace(cmd)
	if err != nil {
		return err
	}
	store := curriculum.NewStore(root)

	before, ok := store.Load()
	if !ok {
		return fmt.Errorf("no curriculum found: run `onramp generate` first")
	}
	task := before.TaskByID(taskID)
	if task == nil {
		return fmt.Errorf("unknown task id %q: see `onramp task list`", taskID)
	}
	oldStatus := task.Status

	doc, err := store.UpdateTaskStatus(taskID, status)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("unknown task id %q: see `onramp task list`", taskID)
	}

	s, err := stats.NewEngine(root).UpdateTask(taskID, oldStatus, status, doc)
	if err != nil {
		return fmt.Errorf("update statistics: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("%s → %s", doc.TaskByID(taskID).Title, status)))
	if oldStatus == curriculum.StatusInProgress && status == curriculum.StatusCompleted {
		if ts := taskMinutes(s, taskID); ts > 0 {
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d minutes recorded", ts)))
		}
	}
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d/%d tasks completed, streak %d days", s.CompletedTasks, s.TotalTasks, s.StreakDays)))
	return nil
}

func taskMinutes(s *stats.LearningStatistics, taskID string) int {
	for _, ts := range s.TaskStats {
		if ts.TaskID == taskID {
			return ts.TimeSpentMinutes
		}
	}
	return 0
}

func init() {
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskStartCmd)
	taskCmd.AddCommand(taskCompleteCmd)
	taskCmd.AddCommand(taskSkipCmd)
}
