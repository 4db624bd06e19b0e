package tree

import "sort"

// Snapshot is an immutable-at-a-point-in-time view of the whole tree.
// Every mutation returns a new Snapshot; the receiver is never modified,
// so callers holding a prior snapshot are never invalidated. Node values
// are shared between snapshots — only nodes touched by an operation are
// cloned.
type Snapshot struct {
	nodes  map[string]*Node
	rootID string
}

// New returns a snapshot holding only an open root folder named name.
// An empty name falls back to DefaultRootName.
func New(name string) *Snapshot {
	if name == "" {
		name = DefaultRootName
	}
	root := &Node{
		ID:       RootID,
		Kind:     KindFolder,
		Name:     name,
		Children: []string{},
		IsOpen:   true,
	}
	return &Snapshot{
		nodes:  map[string]*Node{RootID: root},
		rootID: RootID,
	}
}

// DefaultState is the tree a fresh session starts from: a lone root
// folder named PROJECT.
func DefaultState() *Snapshot {
	return New(DefaultRootName)
}

// FromNodes assembles a snapshot from pre-built nodes, e.g. a flat import.
// Ownership of the map and nodes transfers to the snapshot; the caller must
// not modify them afterwards. Returns an error when rootID is absent or the
// node graph violates the structural invariants (see Check).
func FromNodes(nodes map[string]*Node, rootID string) (*Snapshot, error) {
	s := &Snapshot{nodes: nodes, rootID: rootID}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

// RootID returns the id of the root node.
func (s *Snapshot) RootID() string {
	return s.rootID
}

// Root returns the root node.
func (s *Snapshot) Root() *Node {
	return s.nodes[s.rootID]
}

// Get looks up a node by id.
func (s *Snapshot) Get(id string) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Len returns the number of nodes in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.nodes)
}

// IDs enumerates all node ids in lexical order.
func (s *Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// shallowCopy returns a new snapshot sharing every node value with s.
// Operations clone the nodes they touch before editing them.
func (s *Snapshot) shallowCopy() *Snapshot {
	m := make(map[string]*Node, len(s.nodes))
	for id, n := range s.nodes {
		m[id] = n
	}
	return &Snapshot{nodes: m, rootID: s.rootID}
}
