package render

import (
	"fmt"
	"strings"

	"github.com/agentic-research/arbor/internal/tree"
)

// MarkdownBundle composes the full export document: the connector tree in
// a code block, the Markdown outline, and the Mermaid diagram in a fenced
// block.
func MarkdownBundle(s *tree.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Root().Name)

	b.WriteString("## Structure\n\n```\n")
	b.WriteString(ConnectorTree(s))
	b.WriteString("```\n\n")

	b.WriteString("## Outline\n\n")
	b.WriteString(MarkdownOutline(s))
	b.WriteString("\n")

	b.WriteString("## Diagram\n\n```mermaid\n")
	b.WriteString(MermaidDiagram(s))
	b.WriteString("```\n")

	return b.String()
}
