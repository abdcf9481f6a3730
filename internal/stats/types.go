// Package stats derives progress statistics from a curriculum's task
// states and maintains the parallel time ledger.
package stats

import "time"

// DateLayout is the calendar-date format used in the learning-date list.
const DateLayout = "2006-01-02"

// TaskStatistic is the time ledger for one task. TimeSpentMinutes is a
// monotonic accumulator across repeated in_progress→completed cycles.
type TaskStatistic struct {
	TaskID           string     `json:"taskId"`
	StartedAt        *time.Time `json:"startedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	TimeSpentMinutes int        `json:"timeSpentMinutes"`
}

// LearningStatistics is the persisted statistics document. Count fields
// are recomputed fresh from the curriculum on every update; timing
// fields and the learning-date history are preserved across updates by
// merging with the previously persisted record.
type LearningStatistics struct {
	CurriculumID           string          `json:"curriculumId"`
	TotalTasks             int             `json:"totalTasks"`
	NotStartedTasks        int             `json:"notStartedTasks"`
	InProgressTasks        int             `json:"inProgressTasks"`
	CompletedTasks         int             `json:"completedTasks"`
	SkippedTasks           int             `json:"skippedTasks"`
	EstimatedTotalMinutes  int             `json:"estimatedTotalMinutes"`
	ActualTimeSpentMinutes int             `json:"actualTimeSpentMinutes"`
	CompletionPercentage   float64         `json:"completionPercentage"`
	StreakDays             int             `json:"streakDays"`
	LearningDates          []string        `json:"learningDates"`
	TaskStats              []TaskStatistic `json:"taskStats"`
}

// taskStat returns the ledger entry for a task, or nil.
func (s *LearningStatistics) taskStat(taskID string) *TaskStatistic {
	for i := range s.TaskStats {
		if s.TaskStats[i].TaskID == taskID {
			return &s.TaskStats[i]
		}
	}
	return nil
}

// ensureTaskStat returns the ledger entry for a task, creating it when
// absent.
func (s *LearningStatistics) ensureTaskStat(taskID string) *TaskStatistic {
	if ts := s.taskStat(taskID); ts != nil {
		return ts
	}
	s.TaskStats = append(s.TaskStats, TaskStatistic{TaskID: taskID})
	return &s.TaskStats[len(s.TaskStats)-1]
}

// ChapterProgress is a stateless derived view of one chapter.
type ChapterProgress struct {
	ChapterID      string  `json:"chapterId"`
	Title          string  `json:"title"`
	CompletedTasks int     `json:"completedTasks"`
	TotalTasks     int     `json:"totalTasks"`
	Percentage     float64 `json:"percentage"`
}
