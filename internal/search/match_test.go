package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/arbor/internal/tree"
)

func TestMatchCaseInsensitive(t *testing.T) {
	s := tree.DefaultState()
	s, src := s.AddNode(tree.KindFolder, "src", tree.RootID)
	s, idx := s.AddNode(tree.KindFile, "Index.JS", src)
	s, _ = s.AddNode(tree.KindFile, "readme.md", tree.RootID)

	ix := NewIndex(s)
	m := ix.Match(s, "index")

	require.Equal(t, uint64(1), m.GetCardinality())
	assert.True(t, ix.Contains(m, idx))
	assert.False(t, ix.Contains(m, src))
	assert.Equal(t, []string{idx}, ix.IDs(m))
}

func TestMatchSubstring(t *testing.T) {
	s := tree.DefaultState()
	s, a := s.AddNode(tree.KindFile, "main_test.go", tree.RootID)
	s, b := s.AddNode(tree.KindFile, "util_test.go", tree.RootID)
	s, _ = s.AddNode(tree.KindFile, "main.go", tree.RootID)

	ix := NewIndex(s)
	m := ix.Match(s, "_test")

	assert.Equal(t, uint64(2), m.GetCardinality())
	assert.True(t, ix.Contains(m, a))
	assert.True(t, ix.Contains(m, b))
}

func TestEmptyQueryMatchesNothing(t *testing.T) {
	s := tree.DefaultState()
	s, _ = s.AddNode(tree.KindFile, "anything", tree.RootID)

	ix := NewIndex(s)
	assert.True(t, ix.Match(s, "").IsEmpty())
	assert.True(t, ix.Match(s, "   ").IsEmpty())
}

func TestUnknownIDNotContained(t *testing.T) {
	s := tree.DefaultState()
	ix := NewIndex(s)
	m := ix.Match(s, "project")
	assert.False(t, ix.Contains(m, "ghost"))
}
