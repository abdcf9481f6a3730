package stats

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/hayashik/onramp/internal/curriculum"
	"github.com/hayashik/onramp/internal/state"
)

// DefaultEstimateMinutes is charged for a task whose free-text estimate
// has no leading integer.
const DefaultEstimateMinutes = 30

// leadingInt extracts the number from free-text estimates like
// "30 minutes".
var leadingInt = regexp.MustCompile(`^\s*(\d+)`)

// Engine owns the statistics document for one workspace.
type Engine struct {
	path string

	// now is injectable for tests.
	now func() time.Time
}

// NewEngine creates an Engine rooted at the given workspace.
func NewEngine(workspaceRoot string) *Engine {
	return &Engine{
		path: state.Path(workspaceRoot, state.StatisticsFile),
		now:  time.Now,
	}
}

// GetOrCreate returns the statistics for a curriculum, recomputing all
// count-based fields fresh from the document while preserving the
// persisted time ledger and date history. The result is persisted, so
// first use creates the document.
func (e *Engine) GetOrCreate(doc *curriculum.Curriculum) (*LearningStatistics, error) {
	s := e.load()
	e.recompute(s, doc)
	if err := state.WriteJSON(e.path, s); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateTask applies a task-status transition to the time ledger and
// recomputes the document-derived fields. Entering in_progress stamps
// StartedAt; in_progress→completed stamps CompletedAt and accumulates
// the elapsed minutes on the task and document totals. Any other
// transition adds no time. Every call records today as a learning day.
func (e *Engine) UpdateTask(taskID string, oldStatus, newStatus curriculum.TaskStatus, doc *curriculum.Curriculum) (*LearningStatistics, error) {
	now := e.now()
	s := e.load()

	ts := s.ensureTaskStat(taskID)
	switch {
	case newStatus == curriculum.StatusInProgress && oldStatus != curriculum.StatusInProgress:
		started := now
		ts.StartedAt = &started
	case oldStatus == curriculum.StatusInProgress && newStatus == curriculum.StatusCompleted:
		completed := now
		ts.CompletedAt = &completed
		if ts.StartedAt != nil {
			minutes := int(math.Round(now.Sub(*ts.StartedAt).Minutes()))
			ts.TimeSpentMinutes += minutes
			s.ActualTimeSpentMinutes += minutes
		}
	}

	s.LearningDates = recordDate(s.LearningDates, now.Format(DateLayout))
	e.recompute(s, doc)

	if err := state.WriteJSON(e.path, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Load returns the persisted statistics document without touching it.
// A missing or unreadable document reports exists=false.
func (e *Engine) Load() (*LearningStatistics, bool) {
	var s LearningStatistics
	if ok, _ := state.ReadJSON(e.path, &s); !ok {
		return nil, false
	}
	return &s, true
}

// load returns the persisted document or a zero one; unreadable state is
// treated as absent.
func (e *Engine) load() *LearningStatistics {
	var s LearningStatistics
	if ok, _ := state.ReadJSON(e.path, &s); !ok {
		s = LearningStatistics{}
	}
	if s.LearningDates == nil {
		s.LearningDates = []string{}
	}
	if s.TaskStats == nil {
		s.TaskStats = []TaskStatistic{}
	}
	return &s
}

// recompute refreshes every count-based field from the document. Timing
// fields and date history on s are left untouched.
func (e *Engine) recompute(s *LearningStatistics, doc *curriculum.Curriculum) {
	s.CurriculumID = doc.ID
	s.TotalTasks = 0
	s.NotStartedTasks = 0
	s.InProgressTasks = 0
	s.CompletedTasks = 0
	s.SkippedTasks = 0
	s.EstimatedTotalMinutes = 0

	for _, ch := range doc.Chapters {
		for _, task := range ch.Tasks {
			s.TotalTasks++
			s.EstimatedTotalMinutes += EstimateMinutes(task.EstimatedTime)
			switch task.Status {
			case curriculum.StatusInProgress:
				s.InProgressTasks++
			case curriculum.StatusCompleted:
				s.CompletedTasks++
			case curriculum.StatusSkipped:
				s.SkippedTasks++
			default:
				s.NotStartedTasks++
			}
		}
	}

	s.CompletionPercentage = 0
	if s.TotalTasks > 0 {
		s.CompletionPercentage = float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
	}
	s.StreakDays = Streak(s.LearningDates, e.now())
}

// EstimateMinutes parses a free-text task estimate by its leading
// integer, defaulting when none is present.
func EstimateMinutes(estimate string) int {
	m := leadingInt.FindStringSubmatch(estimate)
	if m == nil {
		return DefaultEstimateMinutes
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultEstimateMinutes
	}
	return n
}

// Progress derives the per-chapter completion view. Chapters with no
// tasks report zero percent.
func Progress(doc *curriculum.Curriculum) []ChapterProgress {
	out := make([]ChapterProgress, 0, len(doc.Chapters))
	for _, ch := range doc.Chapters {
		p := ChapterProgress{
			ChapterID:  ch.ID,
			Title:      ch.Title,
			TotalTasks: len(ch.Tasks),
		}
		for _, task := range ch.Tasks {
			if task.Status == curriculum.StatusCompleted {
				p.CompletedTasks++
			}
		}
		if p.TotalTasks > 0 {
			p.Percentage = float64(p.CompletedTasks) / float64(p.TotalTasks) * 100
		}
		out = append(out, p)
	}
	return out
}
