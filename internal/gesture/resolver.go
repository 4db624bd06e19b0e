package gesture

import "github.com/agentic-research/arbor/internal/tree"

// Drop carries one pointer-drag gesture from the interaction surface.
// Modifier state travels on the gesture itself; resolution never consults
// ambient key state, so event ordering between keys and drops cannot skew
// the result.
type Drop struct {
	// ActiveID is the node being dragged.
	ActiveID string
	// TargetID is the node it was released over.
	TargetID string
	// Modifier forces sibling placement even when the target is a folder.
	Modifier bool
}

// Resolve maps a drop gesture onto exactly one mutation:
//
//   - folder target without modifier: move the active node into the folder
//   - anything else: place the active node as the sibling immediately
//     before the target (a stable in-place reorder when both share a parent)
//
// A drop onto itself, or with either id absent from the snapshot, is a
// no-op returning the input snapshot.
func Resolve(s *tree.Snapshot, d Drop) *tree.Snapshot {
	if d.ActiveID == d.TargetID {
		return s
	}
	if _, ok := s.Get(d.ActiveID); !ok {
		return s
	}
	target, ok := s.Get(d.TargetID)
	if !ok {
		return s
	}
	if target.IsFolder() && !d.Modifier {
		return s.Move(d.ActiveID, d.TargetID, tree.MoveInto)
	}
	return s.Move(d.ActiveID, d.TargetID, tree.MoveBefore)
}
