package techstack

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// detectFromGoMod parses go.mod and matches required module paths against
// the Go module table. Direct requires only; an indirect dependency says
// little about what the project actually uses.
func (d *Detector) detectFromGoMod(set map[string]bool) {
	path := filepath.Join(d.root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return
	}

	for _, req := range f.Require {
		if req.Indirect {
			continue
		}
		for prefix, tech := range goModules {
			if req.Mod.Path == prefix || strings.HasPrefix(req.Mod.Path, prefix+"/") {
				set[tech] = true
			}
		}
	}
}
