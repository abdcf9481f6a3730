// Package analyzer extracts project signals for prompt injection: a
// bounded directory tree, entry points, architecture patterns, coding
// conventions, and key files. All filesystem access is read-only and
// permission errors are swallowed, never fatal to the overall walk.
package analyzer

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Config bounds the directory walk so the rendered summary stays
// prompt-budget-bounded regardless of project size.
type Config struct {
	// MaxDepth is the maximum recursion depth below the root.
	MaxDepth int
	// MaxFilesPerDir caps entries listed per directory.
	MaxFilesPerDir int
	// MaxTotalFiles caps entries visited across the whole walk.
	MaxTotalFiles int
	// MaxTreeChildren caps children rendered per directory in the
	// summary; the rest collapse into a "+N more" line.
	MaxTreeChildren int
}

// DefaultConfig returns the standard walk bounds.
func DefaultConfig() Config {
	return Config{
		MaxDepth:        4,
		MaxFilesPerDir:  50,
		MaxTotalFiles:   500,
		MaxTreeChildren: 15,
	}
}

// Analyzer scans a single workspace root.
type Analyzer struct {
	root string
	cfg  Config
}

// New creates an Analyzer for the given workspace root.
func New(root string, cfg Config) *Analyzer {
	return &Analyzer{root: root, cfg: cfg}
}

// Analyze walks the workspace and collects all project signals.
func (a *Analyzer) Analyze() (*ProjectAnalysis, error) {
	if _, err := os.Stat(a.root); err != nil {
		return nil, err
	}

	visited := 0
	tree := a.walk(a.root, filepath.Base(a.root), 0, &visited)

	return &ProjectAnalysis{
		Root:         a.root,
		Tree:         tree,
		EntryPoints:  a.detectEntryPoints(),
		Patterns:     a.detectPatterns(),
		Conventions:  a.detectConventions(),
		KeyFiles:     a.detectKeyFiles(),
		FilesVisited: visited,
	}, nil
}

// walk builds the pruned tree for one directory. Once either the global
// or the per-directory cap is hit, remaining siblings are silently
// truncated. Unreadable directories contribute no children.
func (a *Analyzer) walk(path, name string, depth int, visited *int) *Node {
	node := &Node{Name: name, IsDir: true}
	if depth >= a.cfg.MaxDepth {
		return node
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return node
	}

	var dirs, files []os.DirEntry
	for _, e := range entries {
		if skipEntry(e) {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	sortEntries(dirs)
	sortEntries(files)

	perDir := 0
	for _, e := range append(dirs, files...) {
		if perDir >= a.cfg.MaxFilesPerDir || *visited >= a.cfg.MaxTotalFiles {
			break
		}
		perDir++
		*visited++

		if e.IsDir() {
			child := a.walk(filepath.Join(path, e.Name()), e.Name(), depth+1, visited)
			node.Children = append(node.Children, child)
		} else {
			node.Children = append(node.Children, &Node{Name: e.Name()})
		}
	}

	return node
}

// deniedDirs are build, VCS, and dependency directories never walked.
var deniedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"vendor":       true,
	"target":       true,
	"coverage":     true,
	"__pycache__":  true,
	"venv":         true,
	"bin":          true,
	"obj":          true,
}

// skipEntry filters the deny-list and dot-entries. Dot-entries are
// skipped except env-file patterns (.env, .env.local, ...).
func skipEntry(e os.DirEntry) bool {
	name := e.Name()
	if e.IsDir() {
		if name[0] == '.' {
			return true
		}
		return deniedDirs[name]
	}
	if name[0] == '.' {
		return !isEnvFile(name)
	}
	return false
}

func isEnvFile(name string) bool {
	return name == ".env" || len(name) > 4 && name[:5] == ".env."
}

func sortEntries(entries []os.DirEntry) {
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
}
