package tree

import "strings"

// MoveMode selects where a moved node lands relative to the target.
type MoveMode int

const (
	// MoveInto appends the node to the target folder's children.
	MoveInto MoveMode = iota
	// MoveBefore inserts the node as the sibling immediately before the target.
	MoveBefore
	// MoveAfter inserts the node as the sibling immediately after the target.
	MoveAfter
)

// Every operation below is total: an illegal request returns the receiver
// unchanged. Callers can detect rejection by comparing snapshot pointers.

// AddNode creates a fresh node under parentID and returns the new snapshot
// plus the new node's id. Rejected (input snapshot, empty id) when the
// trimmed name is empty or parentID is not an existing folder. The parent
// is opened so the new child is visible.
func (s *Snapshot) AddNode(kind Kind, name, parentID string) (*Snapshot, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, ""
	}
	parent, ok := s.nodes[parentID]
	if !ok || !parent.IsFolder() {
		return s, ""
	}

	next := s.shallowCopy()
	id := newID(func(candidate string) bool {
		_, exists := next.nodes[candidate]
		return exists
	})

	n := &Node{ID: id, Kind: kind, Name: name, Parent: parentID}
	if kind == KindFolder {
		n.Children = []string{}
		n.IsOpen = true
	}

	p := parent.clone()
	p.Children = append(p.Children, id)
	p.IsOpen = true

	next.nodes[id] = n
	next.nodes[parentID] = p
	return next, id
}

// RemoveSubtree deletes nodeID and, for folders, its entire descendant set,
// unlinking nodeID from its former parent. The root can never be removed.
func (s *Snapshot) RemoveSubtree(nodeID string) *Snapshot {
	if nodeID == s.rootID {
		return s
	}
	n, ok := s.nodes[nodeID]
	if !ok {
		return s
	}

	next := s.shallowCopy()
	for _, id := range s.CollectSubtreeIDs(nodeID) {
		delete(next.nodes, id)
	}
	if parent, ok := next.nodes[n.Parent]; ok {
		p := parent.clone()
		p.Children = removeID(p.Children, nodeID)
		next.nodes[p.ID] = p
	}
	return next
}

// Rename replaces nodeID's name with the trimmed newName. Rejected when the
// trimmed name is empty or the node does not exist.
func (s *Snapshot) Rename(nodeID, newName string) *Snapshot {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return s
	}
	n, ok := s.nodes[nodeID]
	if !ok {
		return s
	}

	next := s.shallowCopy()
	c := n.clone()
	c.Name = newName
	next.nodes[nodeID] = c
	return next
}

// ToggleOpen flips a folder's expansion state. Rejected for files and
// missing ids.
func (s *Snapshot) ToggleOpen(nodeID string) *Snapshot {
	n, ok := s.nodes[nodeID]
	if !ok || !n.IsFolder() {
		return s
	}

	next := s.shallowCopy()
	c := n.clone()
	c.IsOpen = !n.IsOpen
	next.nodes[nodeID] = c
	return next
}

// Move reparents activeID relative to targetID. Rejected when:
//   - activeID is the root, or activeID == targetID
//   - either id is missing
//   - the destination lies inside activeID's own subtree (cycle)
//   - mode is MoveInto but the target is not a folder
//   - mode is MoveBefore/MoveAfter but the target is the root
//
// For sibling modes the insertion index is computed after activeID has been
// unlinked, so a move within the same parent behaves as a stable reorder.
func (s *Snapshot) Move(activeID, targetID string, mode MoveMode) *Snapshot {
	if activeID == s.rootID || activeID == targetID {
		return s
	}
	active, ok := s.nodes[activeID]
	if !ok {
		return s
	}
	target, ok := s.nodes[targetID]
	if !ok {
		return s
	}

	switch mode {
	case MoveInto:
		if !target.IsFolder() {
			return s
		}
		if s.IsDescendant(targetID, activeID) {
			return s
		}
	case MoveBefore, MoveAfter:
		if target.Parent == "" {
			return s
		}
		if target.Parent == activeID || s.IsDescendant(target.Parent, activeID) {
			return s
		}
	default:
		return s
	}

	next := s.shallowCopy()

	oldParent := next.nodes[active.Parent].clone()
	oldParent.Children = removeID(oldParent.Children, activeID)
	next.nodes[oldParent.ID] = oldParent

	moved := active.clone()

	switch mode {
	case MoveInto:
		// Refetch: the target may be the old parent itself.
		t := next.nodes[targetID].clone()
		t.Children = append(t.Children, activeID)
		t.IsOpen = true
		next.nodes[targetID] = t
		moved.Parent = targetID
	case MoveBefore, MoveAfter:
		p := next.nodes[target.Parent].clone()
		idx := indexOf(p.Children, targetID)
		if idx < 0 {
			return s
		}
		if mode == MoveAfter {
			idx++
		}
		p.Children = insertAt(p.Children, idx, activeID)
		next.nodes[p.ID] = p
		moved.Parent = p.ID
	}

	next.nodes[activeID] = moved
	return next
}

// ReorderChildren replaces parentID's children with newOrder. The new order
// must be a permutation of the existing children; anything else is rejected
// rather than silently dropping or duplicating ids.
func (s *Snapshot) ReorderChildren(parentID string, newOrder []string) *Snapshot {
	parent, ok := s.nodes[parentID]
	if !ok || !parent.IsFolder() {
		return s
	}
	if !samePermutation(parent.Children, newOrder) {
		return s
	}

	next := s.shallowCopy()
	p := parent.clone()
	p.Children = append([]string(nil), newOrder...)
	next.nodes[parentID] = p
	return next
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func insertAt(ids []string, idx int, id string) []string {
	if idx < 0 {
		idx = 0
	}
	if idx > len(ids) {
		idx = len(ids)
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:idx]...)
	out = append(out, id)
	out = append(out, ids[idx:]...)
	return out
}

// samePermutation reports whether b is a reordering of a. Children ids are
// unique, so set equality plus equal length suffices.
func samePermutation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			return false
		}
		delete(seen, id)
	}
	return len(seen) == 0
}
