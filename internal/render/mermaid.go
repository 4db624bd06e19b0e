package render

import (
	"fmt"
	"strings"

	"github.com/agentic-research/arbor/internal/tree"
)

// MermaidDiagram renders the tree as a top-down Mermaid flowchart: one node
// declaration per tree node, one edge per parent→child link. Node labels
// combine the kind glyph with the name; names containing the Mermaid quote
// character are escaped.
func MermaidDiagram(s *tree.Snapshot) string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	s.Walk(func(n *tree.Node, depth int) {
		glyph := fileGlyph
		if n.IsFolder() {
			glyph = folderGlyph
		}
		fmt.Fprintf(&b, "    %s[\"%s %s\"]\n", n.ID, glyph, escapeMermaidLabel(n.Name))
	})
	s.Walk(func(n *tree.Node, depth int) {
		for _, c := range n.Children {
			fmt.Fprintf(&b, "    %s --> %s\n", n.ID, c)
		}
	})
	return b.String()
}

// escapeMermaidLabel neutralizes double quotes, which would otherwise end
// the label early.
func escapeMermaidLabel(name string) string {
	return strings.ReplaceAll(name, `"`, "#quot;")
}
