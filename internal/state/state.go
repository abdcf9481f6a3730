// Package state provides the project-local persistence layer: path
// resolution for the hidden state directory and JSON document round trips.
// Every document is a single pretty-printed JSON file with exactly one
// owning component; all mutations are full load-modify-save cycles.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DirName is the hidden per-workspace state directory.
const DirName = ".onramp"

// Document filenames under the state directory.
const (
	CurriculumFile  = "curriculum.json"
	QuizFile        = "quiz.json"
	QuizAnswersFile = "quiz_answers.json"
	QuizResultFile  = "quiz_result.json"
	StatisticsFile  = "statistics.json"
	ProfileFile     = "profile.json"
	EventsDBFile    = "events.db"
)

// Dir returns the state directory for a workspace root.
func Dir(workspaceRoot string) string {
	return filepath.Join(workspaceRoot, DirName)
}

// Path returns the full path of a named document in a workspace.
func Path(workspaceRoot, file string) string {
	return filepath.Join(workspaceRoot, DirName, file)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// ReadJSON loads a JSON document into v. A missing, unreadable, or
// undecodable file reports (false, nil): load failures are treated as
// "document does not exist" and are never fatal.
func ReadJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

// WriteJSON persists v as pretty-printed JSON, creating the state
// directory if needed. Save failures propagate to the caller.
func WriteJSON(path string, v any) error {
	if err := EnsureDir(path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Remove deletes a document. Removing a missing document is not an error.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Exists reports whether a document file is present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
