package tree

// Kind distinguishes the two node variants.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// RootID is the well-known id given to the root of a freshly created tree.
// Imported flat documents may declare a different root id; the snapshot
// preserves whatever the document declared.
const RootID = "root"

// DefaultRootName is used when no root name is supplied.
const DefaultRootName = "PROJECT"

// PlaceholderName replaces an empty or missing name on nested import.
const PlaceholderName = "untitled"

// Node is the universal primitive: a folder or a file in the tree.
// Children and IsOpen are only meaningful for folders. Nodes held by a
// Snapshot are shared between snapshots and must be treated as read-only;
// every mutation goes through the Snapshot operations, which clone the
// touched nodes.
type Node struct {
	ID     string
	Kind   Kind
	Name   string
	Parent string // "" for the root
	// Children ids in display order. Order is significant: it drives both
	// the editing surface and every export.
	Children []string
	// IsOpen tracks whether the folder is expanded in the editing surface.
	IsOpen bool
}

// IsFolder reports whether the node is the folder variant.
func (n *Node) IsFolder() bool {
	return n.Kind == KindFolder
}

// clone returns a private copy of the node with its own children slice.
func (n *Node) clone() *Node {
	c := *n
	if n.Children != nil {
		c.Children = append([]string(nil), n.Children...)
	}
	return &c
}
