package search

import (
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/agentic-research/arbor/internal/tree"
)

// Index interns a snapshot's node ids to dense uint32s so match sets can
// live in roaring bitmaps. An index is valid for the snapshot it was built
// from; rebuild after the snapshot is superseded.
type Index struct {
	intern map[string]uint32
	ids    []string
}

// NewIndex interns every node of the snapshot in walk order.
func NewIndex(s *tree.Snapshot) *Index {
	ix := &Index{intern: make(map[string]uint32, s.Len())}
	s.Walk(func(n *tree.Node, depth int) {
		ix.intern[n.ID] = uint32(len(ix.ids))
		ix.ids = append(ix.ids, n.ID)
	})
	return ix
}

// Match returns the set of nodes whose name contains query, compared
// case-insensitively. An empty or whitespace-only query matches nothing.
func (ix *Index) Match(s *tree.Snapshot, query string) *roaring.Bitmap {
	matches := roaring.New()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return matches
	}
	for id, intID := range ix.intern {
		n, ok := s.Get(id)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(n.Name), query) {
			matches.Add(intID)
		}
	}
	return matches
}

// Contains reports whether the node id is in the match set.
func (ix *Index) Contains(matches *roaring.Bitmap, id string) bool {
	intID, ok := ix.intern[id]
	return ok && matches.Contains(intID)
}

// IDs expands a match set back to node ids in walk order.
func (ix *Index) IDs(matches *roaring.Bitmap) []string {
	out := make([]string, 0, matches.GetCardinality())
	it := matches.Iterator()
	for it.HasNext() {
		intID := it.Next()
		if int(intID) < len(ix.ids) {
			out = append(out, ix.ids[intID])
		}
	}
	return out
}
