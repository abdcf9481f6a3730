package curriculum

import (
	"time"

	"github.com/hayashik/onramp/internal/state"
)

// Store owns the curriculum document. All mutations are full
// load-modify-save cycles over the single JSON file.
type Store struct {
	path      string
	statsPath string
	now       func() time.Time
}

// NewStore creates a Store rooted at the given workspace.
func NewStore(workspaceRoot string) *Store {
	return &Store{
		path:      state.Path(workspaceRoot, state.CurriculumFile),
		statsPath: state.Path(workspaceRoot, state.StatisticsFile),
		now:       time.Now,
	}
}

// Save persists the document.
func (s *Store) Save(c *Curriculum) error {
	return state.WriteJSON(s.path, c)
}

// Load returns the persisted document. A missing or unreadable document
// reports exists=false.
func (s *Store) Load() (*Curriculum, bool) {
	var c Curriculum
	ok, _ := state.ReadJSON(s.path, &c)
	if !ok {
		return nil, false
	}
	return &c, true
}

// Exists reports whether a curriculum document is present.
func (s *Store) Exists() bool {
	return state.Exists(s.path)
}

// Delete removes the curriculum and cascade-clears its dependent
// statistics document (accumulated time would be meaningless against a
// different curriculum).
func (s *Store) Delete() error {
	if err := state.Remove(s.path); err != nil {
		return err
	}
	return state.Remove(s.statsPath)
}

// UpdateTaskStatus sets the status of one task and refreshes the
// document's UpdatedAt. It returns (nil, nil) when the task id is not
// found anywhere in the document, or when no document exists: a no-op,
// not an error.
func (s *Store) UpdateTaskStatus(taskID string, status TaskStatus) (*Curriculum, error) {
	doc, ok := s.Load()
	if !ok {
		return nil, nil
	}

	task := doc.TaskByID(taskID)
	if task == nil {
		return nil, nil
	}

	task.Status = status
	doc.UpdatedAt = s.now()

	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
