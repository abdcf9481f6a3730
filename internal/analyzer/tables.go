package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
)

// entryPointCandidates are checked for presence on disk, in order.
var entryPointCandidates = []string{
	"main.go",
	"cmd",
	"src/index.ts",
	"src/index.js",
	"src/main.ts",
	"src/main.tsx",
	"src/main.rs",
	"src/App.tsx",
	"src/App.vue",
	"index.js",
	"server.js",
	"app.py",
	"main.py",
	"manage.py",
}

type patternDef struct {
	name       string
	indicators []string
	// loose patterns are reported from a single indicator.
	loose bool
}

var patternDefs = []patternDef{
	{name: "MVC", indicators: []string{"models", "views", "controllers"}},
	{name: "Layered Architecture", indicators: []string{"controllers", "services", "repositories", "models"}},
	{name: "Clean Architecture", indicators: []string{"domain", "usecases", "infrastructure", "interfaces"}},
	{name: "Hexagonal Architecture", indicators: []string{"adapters", "ports", "core"}},
	{name: "Component-Based", indicators: []string{"components", "hooks", "pages"}},
	{name: "Feature-Sliced", indicators: []string{"features", "entities", "shared"}},
	{name: "Go Standard Layout", indicators: []string{"cmd", "internal", "pkg"}},
	{name: "Monorepo", indicators: []string{"packages"}, loose: true},
}

// conventionFiles map linter/formatter/type-system configs to conventions.
var conventionFiles = []struct {
	file       string
	convention string
}{
	{".eslintrc", "ESLint linting"},
	{".eslintrc.js", "ESLint linting"},
	{".eslintrc.json", "ESLint linting"},
	{"eslint.config.js", "ESLint linting"},
	{".prettierrc", "Prettier formatting"},
	{".prettierrc.json", "Prettier formatting"},
	{"biome.json", "Biome linting and formatting"},
	{"tsconfig.json", "TypeScript static typing"},
	{".editorconfig", "EditorConfig style rules"},
	{".golangci.yml", "golangci-lint linting"},
	{".golangci.yaml", "golangci-lint linting"},
	{"rustfmt.toml", "rustfmt formatting"},
	{"ruff.toml", "Ruff linting"},
	{".flake8", "flake8 linting"},
	{".rubocop.yml", "RuboCop linting"},
}

// keyFileCandidates are project-defining files surfaced to the prompt.
var keyFileCandidates = []string{
	"README.md",
	"package.json",
	"go.mod",
	"Cargo.toml",
	"pyproject.toml",
	"requirements.txt",
	"Gemfile",
	"pom.xml",
	"Dockerfile",
	"docker-compose.yml",
	"Makefile",
	"CONTRIBUTING.md",
	".env.example",
}

func (a *Analyzer) detectEntryPoints() []string {
	var found []string
	for _, candidate := range entryPointCandidates {
		if _, err := os.Stat(filepath.Join(a.root, candidate)); err == nil {
			found = append(found, candidate)
		}
	}
	return found
}

// detectPatterns scores each pattern by the share of indicator
// directories present, checking under src/ first, then the project root.
// A pattern is reported from 2 matched indicators (1 for loose patterns).
func (a *Analyzer) detectPatterns() []PatternMatch {
	var matches []PatternMatch
	for _, def := range patternDefs {
		var found []string
		for _, indicator := range def.indicators {
			if a.dirExists(filepath.Join("src", indicator)) || a.dirExists(indicator) {
				found = append(found, indicator)
			}
		}

		minimum := 2
		if def.loose {
			minimum = 1
		}
		if len(found) < minimum {
			continue
		}

		matches = append(matches, PatternMatch{
			Name:       def.name,
			Confidence: float64(len(found)) / float64(len(def.indicators)),
			Indicators: found,
		})
	}
	return matches
}

func (a *Analyzer) detectConventions() []string {
	var conventions []string
	seen := map[string]bool{}
	for _, entry := range conventionFiles {
		if seen[entry.convention] {
			continue
		}
		if _, err := os.Stat(filepath.Join(a.root, entry.file)); err == nil {
			conventions = append(conventions, fmt.Sprintf("%s (%s)", entry.convention, entry.file))
			seen[entry.convention] = true
		}
	}
	return conventions
}

func (a *Analyzer) detectKeyFiles() []string {
	var found []string
	for _, candidate := range keyFileCandidates {
		if _, err := os.Stat(filepath.Join(a.root, candidate)); err == nil {
			found = append(found, candidate)
		}
	}
	return found
}

func (a *Analyzer) dirExists(rel string) bool {
	info, err := os.Stat(filepath.Join(a.root, rel))
	return err == nil && info.IsDir()
}
