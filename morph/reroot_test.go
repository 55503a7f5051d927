package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurokit/arbor/core"
	"github.com/neurokit/arbor/morph"
)

func TestSetRoot_FlipsEdges(t *testing.T) {
	g := buildY(t)
	require.NoError(t, g.SetRoot(6))

	root, err := g.Root()
	require.NoError(t, err)
	assert.Equal(t, int64(6), root.ID)
	assert.Equal(t, morph.NoParent, root.Parent)

	// The old path 3→5→6 is now 6→5→3; the untouched branch keeps its
	// direction.
	w, err := g.EdgeWeight(6, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w, tol)
	_, err = g.EdgeWeight(5, 6)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, 5, g.EdgeCount(), "vertex and edge sets unchanged")

	// Every non-root node has exactly one parent forming a path to 6.
	for _, n := range g.Nodes() {
		if n.ID == 6 {
			continue
		}
		p, perr := g.ShortestPath(n.ID, 6)
		require.NoError(t, perr)
		assert.Equal(t, int64(6), p.Nodes[len(p.Nodes)-1].ID)
		assert.Equal(t, n.Previous, n.Parent)
	}
}

func TestSetRoot_Idempotent(t *testing.T) {
	g := buildY(t)
	before := g.Edges()
	require.NoError(t, g.SetRoot(1))
	assert.Equal(t, before, g.Edges(), "re-rooting to the current root is a topology no-op")
}

func TestSetRoot_RoundTripRestoresTopology(t *testing.T) {
	g := buildY(t)
	before := g.Edges()

	require.NoError(t, g.SetRoot(4))
	require.NoError(t, g.SetRoot(1))
	assert.Equal(t, before, g.Edges())

	root, err := g.Root()
	require.NoError(t, err)
	assert.Equal(t, int64(1), root.ID)
}

func TestSetRoot_UnknownVertex(t *testing.T) {
	g := buildY(t)
	assert.ErrorIs(t, g.SetRoot(99), morph.ErrNodeNotFound)
}

func TestAssignIDsDepthFirst(t *testing.T) {
	// Scrambled IDs: 10 → 30 → {20, 50}, with 20 → 40.
	g, err := morph.New([]*morph.Node{
		node(10, morph.NoParent, 0, 0, 0),
		node(30, 10, 1, 0, 0),
		node(20, 30, 2, 0, 0),
		node(50, 30, 1, 1, 0),
		node(40, 20, 3, 0, 0),
	}, true)
	require.NoError(t, err)
	totalBefore := g.SumEdgeWeights()

	require.NoError(t, g.AssignIDsDepthFirst())

	root, err := g.Root()
	require.NoError(t, err)
	assert.Equal(t, int64(1), root.ID, "root is renumbered first")
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(g.Nodes()))
	assert.InDelta(t, totalBefore, g.SumEdgeWeights(), tol, "weights survive renumbering")

	// Depth-first order with sorted children: 10→1, 30→2, 20→3, 40→4, 50→5.
	n2, err := g.Node(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n2.Parent)
	n4, err := g.Node(4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n4.Parent)
	n5, err := g.Node(5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n5.Parent)
}

func TestAssignIDsDepthFirst_RequiresRoot(t *testing.T) {
	g, err := morph.New([]*morph.Node{
		node(1, morph.NoParent, 0, 0, 0),
		node(2, morph.NoParent, 1, 0, 0),
	}, true)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AssignIDsDepthFirst(), morph.ErrMultipleRoots)
}
