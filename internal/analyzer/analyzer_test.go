package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func countNodes(n *Node) int {
	total := 0
	for _, c := range n.Children {
		total += 1 + countNodes(c)
	}
	return total
}

func maxDepth(n *Node) int {
	deepest := 0
	for _, c := range n.Children {
		if d := 1 + maxDepth(c); d > deepest {
			deepest = d
		}
	}
	return deepest
}

func TestWalk_TotalFileCap(t *testing.T) {
	root := t.TempDir()
	// Wide tree: 40 directories of 30 files each, far over the cap.
	for d := range 40 {
		for f := range 30 {
			write(t, root, fmt.Sprintf("dir%02d/file%02d.txt", d, f))
		}
	}

	a := New(root, DefaultConfig())
	analysis, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.FilesVisited > 500 {
		t.Errorf("FilesVisited = %d, want <= 500", analysis.FilesVisited)
	}
	if got := countNodes(analysis.Tree); got > 500 {
		t.Errorf("tree nodes = %d, want <= 500", got)
	}
}

func TestWalk_PerDirCap(t *testing.T) {
	root := t.TempDir()
	for f := range 80 {
		write(t, root, fmt.Sprintf("file%03d.txt", f))
	}

	a := New(root, DefaultConfig())
	analysis, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got := len(analysis.Tree.Children); got != 50 {
		t.Errorf("root children = %d, want 50", got)
	}
}

func TestWalk_DepthCap(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a/b/c/d/e/f/g/deep.txt")

	a := New(root, DefaultConfig())
	analysis, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got := maxDepth(analysis.Tree); got > 4 {
		t.Errorf("tree depth = %d, want <= 4", got)
	}
}

func TestWalk_DenyListAndDotDirs(t *testing.T) {
	root := t.TempDir()
	write(t, root, "node_modules/react/index.js")
	write(t, root, ".git/HEAD")
	write(t, root, ".env")
	write(t, root, ".env.local")
	write(t, root, ".hidden")
	write(t, root, "src/app.ts")

	a := New(root, DefaultConfig())
	analysis, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	names := make(map[string]bool)
	for _, c := range analysis.Tree.Children {
		names[c.Name] = true
	}
	for _, denied := range []string{"node_modules", ".git", ".hidden"} {
		if names[denied] {
			t.Errorf("%s should be excluded from the walk", denied)
		}
	}
	for _, wanted := range []string{".env", ".env.local", "src"} {
		if !names[wanted] {
			t.Errorf("%s missing from the walk", wanted)
		}
	}
}

func TestWalk_DirsBeforeFiles(t *testing.T) {
	root := t.TempDir()
	write(t, root, "aaa.txt")
	write(t, root, "zzz/inner.txt")
	write(t, root, "bbb/inner.txt")

	a := New(root, DefaultConfig())
	analysis, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var order []string
	for _, c := range analysis.Tree.Children {
		order = append(order, c.Name)
	}
	want := []string{"bbb", "zzz", "aaa.txt"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestDetectPatterns(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/models/user.ts")
	write(t, root, "src/views/home.ts")
	write(t, root, "src/controllers/user.ts")
	write(t, root, "packages/core/index.ts")

	a := New(root, DefaultConfig())
	analysis, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	byName := map[string]PatternMatch{}
	for _, p := range analysis.Patterns {
		byName[p.Name] = p
	}

	mvc, ok := byName["MVC"]
	if !ok {
		t.Fatal("MVC pattern not detected")
	}
	if mvc.Confidence != 1.0 {
		t.Errorf("MVC confidence = %v, want 1.0", mvc.Confidence)
	}

	// Monorepo is loose: a single indicator suffices.
	if _, ok := byName["Monorepo"]; !ok {
		t.Error("Monorepo pattern not detected from single indicator")
	}
}

func TestDetectPatterns_BelowThreshold(t *testing.T) {
	root := t.TempDir()
	write(t, root, "models/user.go")

	a := New(root, DefaultConfig())
	analysis, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	for _, p := range analysis.Patterns {
		if p.Name == "MVC" {
			t.Error("MVC reported with a single indicator")
		}
	}
}

func TestSummary_TreeElision(t *testing.T) {
	root := t.TempDir()
	for f := range 30 {
		write(t, root, fmt.Sprintf("file%02d.txt", f))
	}

	a := New(root, DefaultConfig())
	analysis, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	summary := a.Summary(analysis)
	if !strings.Contains(summary, "+15 more") {
		t.Errorf("summary missing elision marker:\n%s", summary)
	}
	if strings.Count(summary, "file") != 15 {
		t.Errorf("summary should list exactly 15 files:\n%s", summary)
	}
}

func TestDetectEntryPointsAndKeyFiles(t *testing.T) {
	root := t.TempDir()
	write(t, root, "main.go")
	write(t, root, "go.mod")
	write(t, root, "README.md")
	write(t, root, "cmd/root.go")

	a := New(root, DefaultConfig())
	analysis, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(analysis.EntryPoints) < 2 {
		t.Errorf("EntryPoints = %v, want main.go and cmd", analysis.EntryPoints)
	}
	found := map[string]bool{}
	for _, f := range analysis.KeyFiles {
		found[f] = true
	}
	if !found["go.mod"] || !found["README.md"] {
		t.Errorf("KeyFiles = %v", analysis.KeyFiles)
	}
}

func TestAnalyze_MissingRoot(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), "nope"), DefaultConfig())
	if _, err := a.Analyze(); err == nil {
		t.Error("expected error for missing root")
	}
}
