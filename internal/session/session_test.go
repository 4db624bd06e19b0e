package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/arbor/internal/gesture"
	"github.com/agentic-research/arbor/internal/tree"
)

func newSession(t *testing.T) (*Session, string, string) {
	t.Helper()
	s := tree.DefaultState()
	s, src := s.AddNode(tree.KindFolder, "src", tree.RootID)
	s, idx := s.AddNode(tree.KindFile, "index.js", src)
	return New(s), src, idx
}

func TestRowsVisibleOrder(t *testing.T) {
	sess, _, _ := newSession(t)

	var names []string
	var depths []int
	for _, r := range sess.Rows() {
		names = append(names, r.Name)
		depths = append(depths, r.Depth)
	}
	assert.Equal(t, []string{"PROJECT", "src", "index.js"}, names)
	assert.Equal(t, []int{0, 1, 2}, depths)
}

func TestClosedFolderHidesDescendants(t *testing.T) {
	sess, src, _ := newSession(t)

	sess.Apply(sess.Snapshot().ToggleOpen(src))

	rows := sess.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "src", rows[1].Name)
	assert.False(t, rows[1].Open)
	assert.True(t, rows[1].HasChildren)
}

func TestSearchHighlightFlags(t *testing.T) {
	sess, _, idx := newSession(t)
	sess.SetSearch("INDEX")

	for _, r := range sess.Rows() {
		assert.Equal(t, r.ID == idx, r.Highlight, "row %s", r.Name)
	}
}

func TestSelectionFollowsDeletion(t *testing.T) {
	sess, src, idx := newSession(t)

	sess.Select(idx)
	require.Equal(t, idx, sess.Selection())

	sess.Apply(sess.Snapshot().RemoveSubtree(src))
	assert.Equal(t, tree.RootID, sess.Selection())
}

func TestSelectUnknownFallsBackToRoot(t *testing.T) {
	sess, _, _ := newSession(t)
	sess.Select("ghost")
	assert.Equal(t, tree.RootID, sess.Selection())
}

func TestHandleDrop(t *testing.T) {
	sess, src, _ := newSession(t)
	snap, docs := sess.Snapshot().AddNode(tree.KindFolder, "docs", tree.RootID)
	sess.Apply(snap)

	sess.HandleDrop(gesture.Drop{ActiveID: docs, TargetID: src})

	srcNode, _ := sess.Snapshot().Get(src)
	assert.Contains(t, srcNode.Children, docs)
}

func TestReplaceResetsSelectionAndSearch(t *testing.T) {
	sess, src, _ := newSession(t)
	sess.Select(src)
	sess.SetSearch("src")

	sess.Replace(tree.DefaultState())

	assert.Equal(t, tree.RootID, sess.Selection())
	assert.Empty(t, sess.Search())
	assert.Len(t, sess.Rows(), 1)
}
