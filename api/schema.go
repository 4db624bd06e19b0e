package api

// Kind values carried on the wire.
const (
	KindFolder = "folder"
	KindFile   = "file"
)

// NestedNode is the recursive interchange form of a tree. It carries no ids:
// structure and order are implicit in the nesting. A missing Kind means
// folder; a missing Name is replaced with a placeholder on import.
type NestedNode struct {
	// Name of the folder or file.
	Name string `json:"name"`
	// Kind is "folder" or "file". Defaults to folder when absent.
	Kind string `json:"kind,omitempty"`
	// Children of a folder, in display order. Absent for files.
	Children []NestedNode `json:"children,omitempty"`
}

// FlatDocument is the lossless interchange form: every node keyed by id plus
// the declared root. Import must verify RootID is present in Nodes.
type FlatDocument struct {
	// RootID is the id of the tree root. Must exist in Nodes.
	RootID string `json:"root_id"`
	// Nodes maps id to its record.
	Nodes map[string]NodeRecord `json:"nodes"`
}

// NodeRecord is the flat-form shape of a single node. Folders carry Children
// and IsOpen; files omit both (nil pointers are not emitted).
type NodeRecord struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
	// Parent id, null for the root.
	Parent *string `json:"parent"`
	// Children ids in display order. Pointer so an empty folder still
	// serializes as [] while files omit the field entirely.
	Children *[]string `json:"children,omitempty"`
	// IsOpen tracks folder expansion state in the editing surface.
	IsOpen *bool `json:"isOpen,omitempty"`
}
