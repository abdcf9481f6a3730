package analyzer

// ProjectAnalysis is the result of scanning a workspace.
type ProjectAnalysis struct {
	Root         string         `json:"root"`
	Tree         *Node          `json:"tree"`
	EntryPoints  []string       `json:"entryPoints"`
	Patterns     []PatternMatch `json:"patterns"`
	Conventions  []string       `json:"conventions"`
	KeyFiles     []string       `json:"keyFiles"`
	FilesVisited int            `json:"filesVisited"`
}

// Node is one entry in the pruned directory tree. Children hold
// directories first, then files, each group sorted alphabetically.
type Node struct {
	Name     string  `json:"name"`
	IsDir    bool    `json:"isDir"`
	Children []*Node `json:"children,omitempty"`
}

// PatternMatch is a detected architecture pattern with its confidence
// score, confidence = indicators found / indicators in the pattern.
type PatternMatch struct {
	Name       string   `json:"name"`
	Confidence float64  `json:"confidence"`
	Indicators []string `json:"indicators"`
}
