package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/arbor/api"
	"github.com/agentic-research/arbor/internal/tree"
)

func fixture(t *testing.T) *tree.Snapshot {
	t.Helper()
	s := tree.DefaultState()
	s, src := s.AddNode(tree.KindFolder, "src", tree.RootID)
	s, _ = s.AddNode(tree.KindFile, "index.js", src)
	s, _ = s.AddNode(tree.KindFolder, "docs", tree.RootID)
	s, _ = s.AddNode(tree.KindFile, "README.md", tree.RootID)
	s = s.ToggleOpen(src)
	return s
}

// assertSameStore checks exact store equality: ids, kinds, names, parents,
// children order and open state.
func assertSameStore(t *testing.T, want, got *tree.Snapshot) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	require.Equal(t, want.RootID(), got.RootID())
	for _, id := range want.IDs() {
		wn, _ := want.Get(id)
		gn, ok := got.Get(id)
		require.True(t, ok, "node %s missing", id)
		assert.Equal(t, wn.Kind, gn.Kind, "kind of %s", id)
		assert.Equal(t, wn.Name, gn.Name, "name of %s", id)
		assert.Equal(t, wn.Parent, gn.Parent, "parent of %s", id)
		assert.Equal(t, wn.Children, gn.Children, "children of %s", id)
		assert.Equal(t, wn.IsOpen, gn.IsOpen, "isOpen of %s", id)
	}
}

func TestFlatRoundTripIsExact(t *testing.T) {
	s := fixture(t)

	payload, err := EncodeFlat(s)
	require.NoError(t, err)

	back, err := DecodeFlat(payload)
	require.NoError(t, err)
	assertSameStore(t, s, back)
}

func TestFlatDanglingRootIsError(t *testing.T) {
	payload := []byte(`{"root_id":"nope","nodes":{"a":{"id":"a","kind":"folder","name":"a","parent":null,"children":[],"isOpen":true}}}`)
	_, err := DecodeFlat(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root_id")
}

func TestFlatInconsistentGraphIsError(t *testing.T) {
	// Folder lists a child that does not exist.
	payload := []byte(`{"root_id":"r","nodes":{"r":{"id":"r","kind":"folder","name":"r","parent":null,"children":["ghost"],"isOpen":true}}}`)
	_, err := DecodeFlat(payload)
	require.Error(t, err)
}

func TestFlatFileRecordsOmitFolderFields(t *testing.T) {
	s := tree.DefaultState()
	s, _ = s.AddNode(tree.KindFile, "a.txt", tree.RootID)

	payload, err := EncodeFlat(s)
	require.NoError(t, err)
	text := string(payload)
	assert.Contains(t, text, `"children": []`, "empty folder keeps its children array")
	// Exactly one node (the root) carries isOpen.
	assert.Equal(t, 1, countOccurrences(text, `"isOpen"`))
}

func countOccurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}

func TestNestedRoundTripIsIsomorphic(t *testing.T) {
	s := fixture(t)

	back := FromNested(ToNested(s))

	// Ids and open state may differ; shape, names and kinds must not.
	var wantShape, gotShape []string
	s.Walk(func(n *tree.Node, depth int) {
		wantShape = append(wantShape, string(n.Kind), n.Name)
	})
	back.Walk(func(n *tree.Node, depth int) {
		gotShape = append(gotShape, string(n.Kind), n.Name)
	})
	assert.Equal(t, wantShape, gotShape)
	require.NoError(t, back.Check())
}

func TestFromNestedDefaults(t *testing.T) {
	root := api.NestedNode{
		Children: []api.NestedNode{
			{Name: "a"},                      // kind defaults to folder
			{Name: "  ", Kind: api.KindFile}, // blank name becomes placeholder
			{Name: "b", Kind: api.KindFolder, Children: []api.NestedNode{{Name: "c", Kind: api.KindFile}}},
		},
	}
	s := FromNested(root)

	require.NoError(t, s.Check())
	assert.Equal(t, tree.DefaultRootName, s.Root().Name)

	var names []string
	var kinds []tree.Kind
	s.Walk(func(n *tree.Node, depth int) {
		names = append(names, n.Name)
		kinds = append(kinds, n.Kind)
	})
	assert.Equal(t, []string{"PROJECT", "a", tree.PlaceholderName, "b", "c"}, names)
	assert.Equal(t, tree.KindFolder, kinds[1])

	// Imported folders default to open.
	aID, ok := s.ResolvePath("a")
	require.True(t, ok)
	a, _ := s.Get(aID)
	assert.True(t, a.IsOpen)
}

func TestNestedFromAnyGracefulDegradation(t *testing.T) {
	t.Run("non-object", func(t *testing.T) {
		n := NestedFromAny("just a string")
		assert.Equal(t, api.NestedNode{}, n)
	})
	t.Run("children not a sequence", func(t *testing.T) {
		n := NestedFromAny(map[string]any{"name": "x", "children": "oops"})
		assert.Equal(t, "x", n.Name)
		assert.Nil(t, n.Children)
	})
	t.Run("unknown fields ignored", func(t *testing.T) {
		n := NestedFromAny(map[string]any{"name": "x", "color": "red"})
		assert.Equal(t, "x", n.Name)
	})
}

func TestDetectForm(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want Form
	}{
		{"flat via root_id", map[string]any{"root_id": "r"}, FormFlat},
		{"flat via nodes", map[string]any{"nodes": map[string]any{}}, FormFlat},
		{"nested without kind", map[string]any{"name": "x"}, FormNested},
		{"nested folder", map[string]any{"name": "x", "kind": "folder"}, FormNested},
		{"file at top level", map[string]any{"name": "x", "kind": "file"}, FormUnknown},
		{"non-object", []any{1, 2}, FormUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectForm(tc.v))
		})
	}
}

func TestImportAutoDetect(t *testing.T) {
	s := fixture(t)

	flat, err := EncodeFlat(s)
	require.NoError(t, err)
	fromFlat, err := Import(flat)
	require.NoError(t, err)
	assertSameStore(t, s, fromFlat)

	nested, err := EncodeNested(s)
	require.NoError(t, err)
	fromNested, err := Import(nested)
	require.NoError(t, err)
	require.NoError(t, fromNested.Check())
	assert.Equal(t, s.Len(), fromNested.Len())
}

func TestImportErrors(t *testing.T) {
	_, err := Import([]byte("{not json"))
	require.Error(t, err)

	_, err = Import([]byte(`{"name":"x","kind":"file"}`))
	assert.ErrorIs(t, err, ErrUnknownForm)
}
