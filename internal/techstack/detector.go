// Package techstack detects the technologies a workspace uses from its
// manifest files and known dependency names.
package techstack

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// Detector scans a single workspace root.
type Detector struct {
	root string
}

// New creates a Detector for the given workspace root.
func New(root string) *Detector {
	return &Detector{root: root}
}

// Detect returns the sorted, de-duplicated union of all detection
// passes. A missing or unparseable manifest is not an error; it simply
// contributes nothing to the set.
func (d *Detector) Detect() []string {
	set := map[string]bool{}

	d.detectFromPackageJSON(set)
	d.detectFromMarkerFiles(set)
	d.detectFromGoMod(set)

	techs := make([]string, 0, len(set))
	for tech := range set {
		techs = append(techs, tech)
	}
	sort.Strings(techs)
	return techs
}

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// detectFromPackageJSON unions dependencies and devDependencies against
// the npm dependency table. Presence of the manifest alone yields the
// baseline JavaScript tag.
func (d *Detector) detectFromPackageJSON(set map[string]bool) {
	data, err := os.ReadFile(filepath.Join(d.root, "package.json"))
	if err != nil {
		return
	}

	set["JavaScript"] = true

	var manifest packageJSON
	if err := json.Unmarshal(data, &manifest); err != nil {
		return
	}

	for dep := range manifest.Dependencies {
		if tech, ok := npmDependencies[dep]; ok {
			set[tech] = true
		}
	}
	for dep := range manifest.DevDependencies {
		if tech, ok := npmDependencies[dep]; ok {
			set[tech] = true
		}
	}
}

func (d *Detector) detectFromMarkerFiles(set map[string]bool) {
	for file, tech := range markerFiles {
		if _, err := os.Stat(filepath.Join(d.root, file)); err == nil {
			set[tech] = true
		}
	}
}
