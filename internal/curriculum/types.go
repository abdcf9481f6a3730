// Package curriculum generates and persists the personalized learning
// curriculum for a workspace: project signals and the user profile are
// folded into one prompt, the model's streamed answer is parsed into a
// strict document, and task progress is mutated through the store.
package curriculum

import "time"

// TaskStatus is the progress state of a single learning task.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusSkipped    TaskStatus = "skipped"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// Task is one unit of learning work.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	// TargetFiles are workspace-relative paths the task is about.
	TargetFiles []string `json:"targetFiles"`
	// EstimatedTime is a free-text duration, e.g. "30 minutes".
	EstimatedTime string `json:"estimatedTime"`
	// Prerequisites are task ids. Advisory only: they are stored
	// verbatim, never validated against existing ids, and do not gate
	// status transitions.
	Prerequisites []string `json:"prerequisites"`
}

// Chapter groups ordered tasks. Order is a dense 0-based sequence
// matching generation order.
type Chapter struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Tasks       []Task `json:"tasks"`
}

// Curriculum is the persisted learning-curriculum document.
type Curriculum struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ProjectSummary string    `json:"projectSummary"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Chapters       []Chapter `json:"chapters"`
}

// TaskByID returns the task with the given id, or nil if absent.
func (c *Curriculum) TaskByID(id string) *Task {
	for ci := range c.Chapters {
		for ti := range c.Chapters[ci].Tasks {
			if c.Chapters[ci].Tasks[ti].ID == id {
				return &c.Chapters[ci].Tasks[ti]
			}
		}
	}
	return nil
}

// TotalTasks counts tasks across all chapters.
func (c *Curriculum) TotalTasks() int {
	total := 0
	for _, ch := range c.Chapters {
		total += len(ch.Tasks)
	}
	return total
}
