package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentic-research/arbor/api"
	"github.com/agentic-research/arbor/internal/tree"
)

// FromNested builds a snapshot from the nested interchange form, assigning
// fresh ids. Defaults are forgiving: a missing kind means folder, a blank
// name becomes a placeholder, the root name falls back to the fixed
// default, and imported folders start open.
func FromNested(root api.NestedNode) *tree.Snapshot {
	s := tree.New(strings.TrimSpace(root.Name))
	return addNested(s, s.RootID(), root.Children)
}

func addNested(s *tree.Snapshot, parentID string, children []api.NestedNode) *tree.Snapshot {
	for _, c := range children {
		kind := tree.KindFolder
		if c.Kind == api.KindFile {
			kind = tree.KindFile
		}
		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = tree.PlaceholderName
		}
		var id string
		s, id = s.AddNode(kind, name, parentID)
		if kind == tree.KindFolder {
			s = addNested(s, id, c.Children)
		}
	}
	return s
}

// ToNested converts a snapshot to the nested form. Ids and open state are
// not represented: the nested form keeps only shape, names and kinds.
func ToNested(s *tree.Snapshot) api.NestedNode {
	return nestedAt(s, s.RootID())
}

func nestedAt(s *tree.Snapshot, id string) api.NestedNode {
	n, ok := s.Get(id)
	if !ok {
		return api.NestedNode{Name: tree.PlaceholderName, Kind: api.KindFile}
	}
	out := api.NestedNode{Name: n.Name, Kind: string(n.Kind)}
	if n.IsFolder() {
		for _, c := range n.Children {
			out.Children = append(out.Children, nestedAt(s, c))
		}
	}
	return out
}

// EncodeNested serializes a snapshot as indented nested-form JSON.
func EncodeNested(s *tree.Snapshot) ([]byte, error) {
	out, err := json.MarshalIndent(ToNested(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode nested document: %w", err)
	}
	return append(out, '\n'), nil
}

// NestedFromAny coerces an already-parsed JSON value into the nested form,
// degrading gracefully: a non-object becomes an empty folder, unknown
// fields are ignored, and a children value that is not a sequence is
// treated as no children.
func NestedFromAny(v any) api.NestedNode {
	m, ok := v.(map[string]any)
	if !ok {
		return api.NestedNode{}
	}
	var out api.NestedNode
	if name, ok := m["name"].(string); ok {
		out.Name = name
	}
	if kind, ok := m["kind"].(string); ok {
		out.Kind = kind
	}
	if kids, ok := m["children"].([]any); ok {
		for _, k := range kids {
			out.Children = append(out.Children, NestedFromAny(k))
		}
	}
	return out
}
