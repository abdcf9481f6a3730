package profile

import (
	"time"

	"github.com/hayashik/onramp/internal/state"
)

// Store persists the user profile as a standalone JSON document.
type Store struct {
	path string
}

// NewStore creates a Store rooted at the given workspace.
func NewStore(workspaceRoot string) *Store {
	return &Store{path: state.Path(workspaceRoot, state.ProfileFile)}
}

// Load returns the persisted profile. A missing or unreadable document
// reports exists=false.
func (s *Store) Load() (*Profile, bool) {
	var p Profile
	ok, _ := state.ReadJSON(s.path, &p)
	if !ok {
		return nil, false
	}
	return &p, true
}

// Save persists the profile, refreshing its UpdatedAt stamp.
func (s *Store) Save(p *Profile) error {
	p.UpdatedAt = time.Now()
	return state.WriteJSON(s.path, p)
}

// Exists reports whether a profile document is present.
func (s *Store) Exists() bool {
	return state.Exists(s.path)
}

// Delete removes the profile document.
func (s *Store) Delete() error {
	return state.Remove(s.path)
}
