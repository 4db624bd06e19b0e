package codec

import (
	"encoding/json"
	"fmt"

	"github.com/agentic-research/arbor/api"
	"github.com/agentic-research/arbor/internal/tree"
)

// ToFlat converts a snapshot to the lossless flat document form.
func ToFlat(s *tree.Snapshot) api.FlatDocument {
	doc := api.FlatDocument{
		RootID: s.RootID(),
		Nodes:  make(map[string]api.NodeRecord, s.Len()),
	}
	for _, id := range s.IDs() {
		n, _ := s.Get(id)
		rec := api.NodeRecord{ID: n.ID, Kind: string(n.Kind), Name: n.Name}
		if n.Parent != "" {
			parent := n.Parent
			rec.Parent = &parent
		}
		if n.IsFolder() {
			children := append([]string{}, n.Children...)
			open := n.IsOpen
			rec.Children = &children
			rec.IsOpen = &open
		}
		doc.Nodes[id] = rec
	}
	return doc
}

// EncodeFlat serializes a snapshot as indented flat-form JSON.
func EncodeFlat(s *tree.Snapshot) ([]byte, error) {
	out, err := json.MarshalIndent(ToFlat(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode flat document: %w", err)
	}
	return append(out, '\n'), nil
}

// FromFlat rebuilds a snapshot from a flat document. A root_id absent from
// the node mapping, or any structural inconsistency in the records, is a
// format error; the caller's prior state stays untouched.
func FromFlat(doc api.FlatDocument) (*tree.Snapshot, error) {
	if _, ok := doc.Nodes[doc.RootID]; !ok {
		return nil, fmt.Errorf("flat document: root_id %q not present in nodes", doc.RootID)
	}
	nodes := make(map[string]*tree.Node, len(doc.Nodes))
	for id, rec := range doc.Nodes {
		n := &tree.Node{ID: rec.ID, Kind: tree.Kind(rec.Kind), Name: rec.Name}
		if n.ID == "" {
			n.ID = id
		}
		if rec.Parent != nil {
			n.Parent = *rec.Parent
		}
		if n.Kind == "" {
			// Records predating the kind field: folders are the ones
			// carrying a children array.
			if rec.Children != nil {
				n.Kind = tree.KindFolder
			} else {
				n.Kind = tree.KindFile
			}
		}
		if n.IsFolder() {
			n.Children = []string{}
			if rec.Children != nil {
				n.Children = append(n.Children, *rec.Children...)
			}
			if rec.IsOpen != nil {
				n.IsOpen = *rec.IsOpen
			}
		}
		nodes[id] = n
	}
	s, err := tree.FromNodes(nodes, doc.RootID)
	if err != nil {
		return nil, fmt.Errorf("flat document: %w", err)
	}
	return s, nil
}

// DecodeFlat parses flat-form JSON and rebuilds the snapshot.
func DecodeFlat(payload []byte) (*tree.Snapshot, error) {
	var doc api.FlatDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("parse flat document: %w", err)
	}
	return FromFlat(doc)
}
