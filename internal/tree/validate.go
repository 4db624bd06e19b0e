package tree

import "fmt"

// Check verifies the structural invariants of the snapshot:
//
//   - the declared root exists, is a parentless folder
//   - every other node's parent is a folder whose children list the node
//     exactly once, and every listed child points back at its parent
//   - files carry no children
//   - every node is reachable from the root (no orphans, no cycles)
//
// Mutation operations preserve these by construction; Check exists for
// imports, which accept arbitrary caller-supplied graphs.
func (s *Snapshot) Check() error {
	root, ok := s.nodes[s.rootID]
	if !ok {
		return fmt.Errorf("root id %q not present in nodes", s.rootID)
	}
	if !root.IsFolder() {
		return fmt.Errorf("root %q is not a folder", s.rootID)
	}
	if root.Parent != "" {
		return fmt.Errorf("root %q has parent %q", s.rootID, root.Parent)
	}

	// One membership count per non-root node.
	membership := make(map[string]int, len(s.nodes))
	for id, n := range s.nodes {
		if n.ID != id {
			return fmt.Errorf("node keyed %q carries id %q", id, n.ID)
		}
		if !n.IsFolder() {
			if len(n.Children) > 0 {
				return fmt.Errorf("file %q has children", id)
			}
			continue
		}
		for _, c := range n.Children {
			child, ok := s.nodes[c]
			if !ok {
				return fmt.Errorf("folder %q lists missing child %q", id, c)
			}
			if child.Parent != id {
				return fmt.Errorf("child %q of %q points at parent %q", c, id, child.Parent)
			}
			membership[c]++
			if membership[c] > 1 {
				return fmt.Errorf("node %q listed as a child more than once", c)
			}
		}
	}
	for id, n := range s.nodes {
		if id == s.rootID {
			continue
		}
		if n.Parent == "" {
			return fmt.Errorf("non-root node %q has no parent", id)
		}
		if membership[id] != 1 {
			return fmt.Errorf("node %q not linked from its parent %q", id, n.Parent)
		}
	}

	// Reachability doubles as the acyclicity check: children arrays are the
	// only downward edges, and membership above is exactly one per node.
	reached := len(s.CollectSubtreeIDs(s.rootID))
	if reached != len(s.nodes) {
		return fmt.Errorf("%d of %d nodes reachable from root", reached, len(s.nodes))
	}
	return nil
}
