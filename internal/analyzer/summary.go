package analyzer

import (
	"fmt"
	"strings"
)

// Summary renders the bounded plain-text project summary injected into
// LLM prompts. The tree shows at most MaxTreeChildren entries per
// directory with a "+N more" elision, keeping the text prompt-sized
// regardless of project size.
func (a *Analyzer) Summary(analysis *ProjectAnalysis) string {
	var b strings.Builder

	b.WriteString("## Directory structure\n")
	renderTree(&b, analysis.Tree, 0, a.cfg.MaxTreeChildren)

	b.WriteString("\n## Entry points\n")
	if len(analysis.EntryPoints) == 0 {
		b.WriteString("(none detected)\n")
	}
	for _, ep := range analysis.EntryPoints {
		fmt.Fprintf(&b, "- %s\n", ep)
	}

	if len(analysis.Patterns) > 0 {
		b.WriteString("\n## Architecture patterns\n")
		for _, p := range analysis.Patterns {
			fmt.Fprintf(&b, "- %s (confidence %.0f%%): %s\n",
				p.Name, p.Confidence*100, strings.Join(p.Indicators, ", "))
		}
	}

	if len(analysis.Conventions) > 0 {
		b.WriteString("\n## Coding conventions\n")
		for _, c := range analysis.Conventions {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	if len(analysis.KeyFiles) > 0 {
		b.WriteString("\n## Key files\n")
		for _, f := range analysis.KeyFiles {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	return b.String()
}

func renderTree(b *strings.Builder, node *Node, depth, maxChildren int) {
	indent := strings.Repeat("  ", depth)
	name := node.Name
	if node.IsDir {
		name += "/"
	}
	fmt.Fprintf(b, "%s%s\n", indent, name)

	shown := node.Children
	elided := 0
	if len(shown) > maxChildren {
		elided = len(shown) - maxChildren
		shown = shown[:maxChildren]
	}
	for _, child := range shown {
		renderTree(b, child, depth+1, maxChildren)
	}
	if elided > 0 {
		fmt.Fprintf(b, "%s  +%d more\n", indent, elided)
	}
}
