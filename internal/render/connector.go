package render

import (
	"strings"

	"github.com/agentic-research/arbor/internal/tree"
)

// Box-drawing pieces of the classic tree-command output.
const (
	branchConnector   = "├── "
	terminalConnector = "└── "
	verticalBar       = "│   "
	blankContinuation = "    "
)

// ConnectorTree renders the whole tree in tree-command style: the root as a
// bare name, branch connectors for non-last children, the terminal
// connector for the last child at each level.
func ConnectorTree(s *tree.Snapshot) string {
	var b strings.Builder
	root := s.Root()
	if root == nil {
		return ""
	}
	b.WriteString(root.Name)
	b.WriteByte('\n')
	connectorChildren(s, &b, root, "")
	return b.String()
}

func connectorChildren(s *tree.Snapshot, b *strings.Builder, n *tree.Node, prefix string) {
	for i, cid := range n.Children {
		child, ok := s.Get(cid)
		if !ok {
			continue
		}
		connector, continuation := branchConnector, verticalBar
		if i == len(n.Children)-1 {
			connector, continuation = terminalConnector, blankContinuation
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(child.Name)
		b.WriteByte('\n')
		if child.IsFolder() {
			connectorChildren(s, b, child, prefix+continuation)
		}
	}
}
