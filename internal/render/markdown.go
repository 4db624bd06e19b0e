package render

import (
	"fmt"
	"strings"

	"github.com/agentic-research/arbor/internal/tree"
)

const (
	folderGlyph = "📁"
	fileGlyph   = "📄"
)

// MarkdownOutline renders one bullet per node, indented two spaces per
// depth level. Folders are bold with the folder glyph; files are plain
// with the file glyph. The root sits at the top with no indentation.
func MarkdownOutline(s *tree.Snapshot) string {
	var b strings.Builder
	s.Walk(func(n *tree.Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		if n.IsFolder() {
			fmt.Fprintf(&b, "- **%s %s**\n", folderGlyph, n.Name)
		} else {
			fmt.Fprintf(&b, "- %s %s\n", fileGlyph, n.Name)
		}
	})
	return b.String()
}
