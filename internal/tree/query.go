package tree

import "strings"

// IsDescendant reports whether walking nodeID's parent chain reaches
// maybeAncestorID. A node is never its own descendant.
func (s *Snapshot) IsDescendant(nodeID, maybeAncestorID string) bool {
	n, ok := s.nodes[nodeID]
	if !ok {
		return false
	}
	for cur := n.Parent; cur != ""; {
		if cur == maybeAncestorID {
			return true
		}
		p, ok := s.nodes[cur]
		if !ok {
			return false
		}
		cur = p.Parent
	}
	return false
}

// CollectSubtreeIDs returns nodeID plus every node transitively reachable
// through children links, depth-first.
func (s *Snapshot) CollectSubtreeIDs(nodeID string) []string {
	if _, ok := s.nodes[nodeID]; !ok {
		return nil
	}
	var out []string
	stack := []string{nodeID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := s.nodes[id]
		if !ok {
			continue
		}
		out = append(out, id)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return out
}

// Walk visits every node depth-first in children order, starting at the
// root (depth 0).
func (s *Snapshot) Walk(fn func(n *Node, depth int)) {
	s.walkFrom(s.rootID, 0, fn)
}

func (s *Snapshot) walkFrom(id string, depth int, fn func(n *Node, depth int)) {
	n, ok := s.nodes[id]
	if !ok {
		return
	}
	fn(n, depth)
	for _, c := range n.Children {
		s.walkFrom(c, depth+1, fn)
	}
}

// ResolvePath maps a slash-separated name path ("src/index.js") to a node
// id. An empty path, "/" or "." resolves to the root. When siblings share
// a name the first in child order wins.
func (s *Snapshot) ResolvePath(path string) (string, bool) {
	path = strings.Trim(path, "/")
	if path == "" || path == "." {
		return s.rootID, true
	}
	cur := s.rootID
	for _, seg := range strings.Split(path, "/") {
		n, ok := s.nodes[cur]
		if !ok || !n.IsFolder() {
			return "", false
		}
		found := false
		for _, cid := range n.Children {
			if c, ok := s.nodes[cid]; ok && c.Name == seg {
				cur = cid
				found = true
				break
			}
		}
		if !found {
			return "", false
		}
	}
	return cur, true
}

// PathOf returns the slash-separated name path of a node relative to the
// root. The root maps to its own name.
func (s *Snapshot) PathOf(id string) (string, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return "", false
	}
	if id == s.rootID {
		return n.Name, true
	}
	var segs []string
	for cur := n; cur.ID != s.rootID; {
		segs = append([]string{cur.Name}, segs...)
		p, ok := s.nodes[cur.Parent]
		if !ok {
			return "", false
		}
		cur = p
	}
	return strings.Join(segs, "/"), true
}
