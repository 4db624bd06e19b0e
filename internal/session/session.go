package session

import (
	"github.com/agentic-research/arbor/internal/gesture"
	"github.com/agentic-research/arbor/internal/search"
	"github.com/agentic-research/arbor/internal/tree"
)

// Session holds the single-user editing state around a snapshot: the
// current tree, the selected node and the active search substring. All
// mutations run to completion on the caller's goroutine; each one simply
// supersedes the previous snapshot.
type Session struct {
	snap      *tree.Snapshot
	selection string
	query     string
}

// New starts a session over snap, or over the default state when nil.
func New(snap *tree.Snapshot) *Session {
	if snap == nil {
		snap = tree.DefaultState()
	}
	return &Session{snap: snap, selection: snap.RootID()}
}

// Snapshot returns the current snapshot.
func (s *Session) Snapshot() *tree.Snapshot {
	return s.snap
}

// Apply installs next as the current snapshot. Selection is kept when the
// selected node survived, otherwise it falls back to the root.
func (s *Session) Apply(next *tree.Snapshot) {
	s.snap = next
	if _, ok := next.Get(s.selection); !ok {
		s.selection = next.RootID()
	}
}

// Replace swaps in a freshly imported snapshot and resets selection and
// search, e.g. after a file import completes.
func (s *Session) Replace(next *tree.Snapshot) {
	s.snap = next
	s.selection = next.RootID()
	s.query = ""
}

// Select marks id as the selected node; unknown ids select the root.
func (s *Session) Select(id string) {
	if _, ok := s.snap.Get(id); ok {
		s.selection = id
		return
	}
	s.selection = s.snap.RootID()
}

// Selection returns the selected node id.
func (s *Session) Selection() string {
	return s.selection
}

// SetSearch installs the highlight query (case-insensitive containment).
func (s *Session) SetSearch(query string) {
	s.query = query
}

// Search returns the active search substring.
func (s *Session) Search() string {
	return s.query
}

// HandleDrop resolves a drop gesture against the current snapshot.
func (s *Session) HandleDrop(d gesture.Drop) {
	s.Apply(gesture.Resolve(s.snap, d))
}

// Row is one visible line of the resolved tree, ready for an external
// rendering surface to draw (and capture) without touching the store.
type Row struct {
	ID          string
	Name        string
	Kind        tree.Kind
	Depth       int
	HasChildren bool
	Open        bool
	Selected    bool
	Highlight   bool
}

// Rows computes the visible rows top to bottom: children of closed folders
// are hidden, and each row carries its search highlight flag.
func (s *Session) Rows() []Row {
	ix := search.NewIndex(s.snap)
	matches := ix.Match(s.snap, s.query)

	var rows []Row
	var visit func(id string, depth int)
	visit = func(id string, depth int) {
		n, ok := s.snap.Get(id)
		if !ok {
			return
		}
		rows = append(rows, Row{
			ID:          n.ID,
			Name:        n.Name,
			Kind:        n.Kind,
			Depth:       depth,
			HasChildren: len(n.Children) > 0,
			Open:        n.IsOpen,
			Selected:    n.ID == s.selection,
			Highlight:   ix.Contains(matches, n.ID),
		})
		if n.IsFolder() && n.IsOpen {
			for _, c := range n.Children {
				visit(c, depth+1)
			}
		}
	}
	visit(s.snap.RootID(), 0)
	return rows
}
