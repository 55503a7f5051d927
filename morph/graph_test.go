package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/arbor/morph"
)

const tol = 1e-12

// node is a shorthand constructor for test reconstructions.
func node(id int64, parent int64, x, y, z float64) *morph.Node {
	return &morph.Node{ID: id, Parent: parent, Position: r3.Vec{X: x, Y: y, Z: z}}
}

// buildY constructs the canonical Y-shaped reconstruction:
//
//	1 ── 2 ── 3 ── 4      (straight along x)
//	          └── 5 ── 6  (branch at 3, offset in y)
func buildY(t *testing.T) *morph.Graph {
	t.Helper()
	g, err := morph.New([]*morph.Node{
		node(1, morph.NoParent, 0, 0, 0),
		node(2, 1, 1, 0, 0),
		node(3, 2, 2, 0, 0),
		node(4, 3, 3, 0, 0),
		node(5, 3, 2, 1, 0),
		node(6, 5, 2, 2, 0),
	}, true)
	require.NoError(t, err)

	return g
}

func TestNew_ValidTree(t *testing.T) {
	g := buildY(t)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.Weighted())

	root, err := g.Root()
	require.NoError(t, err)
	assert.Equal(t, int64(1), root.ID)
	assert.Equal(t, morph.NoParent, root.Previous)

	n3, err := g.Node(3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n3.Previous)

	w, err := g.EdgeWeight(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w, tol)
}

func TestNew_EmptyInput(t *testing.T) {
	_, err := morph.New(nil, true)
	assert.ErrorIs(t, err, morph.ErrEmptyNodes)
}

func TestNew_DanglingParent(t *testing.T) {
	_, err := morph.New([]*morph.Node{
		node(1, morph.NoParent, 0, 0, 0),
		node(2, 99, 1, 0, 0),
	}, true)
	assert.ErrorIs(t, err, morph.ErrDanglingParent)
}

func TestNew_SelfParent(t *testing.T) {
	_, err := morph.New([]*morph.Node{
		node(1, morph.NoParent, 0, 0, 0),
		node(2, 2, 1, 0, 0),
	}, true)
	assert.ErrorIs(t, err, morph.ErrDanglingParent)
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := morph.New([]*morph.Node{
		node(1, morph.NoParent, 0, 0, 0),
		node(1, morph.NoParent, 1, 0, 0),
	}, true)
	assert.ErrorIs(t, err, morph.ErrDuplicateID)
}

func TestRoot_DeferredFailures(t *testing.T) {
	// Two parentless nodes build fine but break root-dependent operations.
	multi, err := morph.New([]*morph.Node{
		node(1, morph.NoParent, 0, 0, 0),
		node(2, morph.NoParent, 1, 0, 0),
		node(3, 1, 2, 0, 0),
	}, true)
	require.NoError(t, err)
	_, err = multi.Root()
	assert.ErrorIs(t, err, morph.ErrMultipleRoots)
	_, err = multi.Simplified()
	assert.ErrorIs(t, err, morph.ErrMultipleRoots)

	// Mutual parents leave no in-degree-0 vertex at all.
	cyclic, err := morph.New([]*morph.Node{
		node(1, 2, 0, 0, 0),
		node(2, 1, 1, 0, 0),
	}, true)
	require.NoError(t, err)
	_, err = cyclic.Root()
	assert.ErrorIs(t, err, morph.ErrNoRoot)
	_, err = cyclic.LongestPath(true)
	assert.ErrorIs(t, err, morph.ErrNoRoot)
}

func TestNew_WithoutDistances(t *testing.T) {
	g, err := morph.New([]*morph.Node{
		node(1, morph.NoParent, 0, 0, 0),
		node(2, 1, 3, 4, 0),
	}, false)
	require.NoError(t, err)
	assert.False(t, g.Weighted())
	w, err := g.EdgeWeight(1, 2)
	require.NoError(t, err)
	assert.Zero(t, w)

	g.AssignEdgeWeightsFromDistances()
	w, err = g.EdgeWeight(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, w, tol)
	assert.True(t, g.Weighted())
}

func TestTipsAndBranchNodes(t *testing.T) {
	g := buildY(t)
	assert.Equal(t, []int64{4, 6}, ids(g.Tips()))
	assert.Equal(t, []int64{3}, ids(g.BranchNodes()))
}

func TestTree_RoundTrip(t *testing.T) {
	g := buildY(t)
	flat, err := g.Tree()
	require.NoError(t, err)
	require.Len(t, flat, 6)

	rebuilt, err := morph.New(flat, true)
	require.NoError(t, err)

	origEdges := g.Edges()
	gotEdges := rebuilt.Edges()
	require.Len(t, gotEdges, len(origEdges))
	for i, e := range origEdges {
		assert.Equal(t, e.From, gotEdges[i].From)
		assert.Equal(t, e.To, gotEdges[i].To)
		assert.True(t, scalar.EqualWithinAbs(e.Weight, gotEdges[i].Weight, tol))
	}
	assert.True(t, scalar.EqualWithinAbs(g.SumEdgeWeights(), rebuilt.SumEdgeWeights(), tol))
}

// ids extracts sorted-order node IDs from an accessor result.
func ids(nodes []*morph.Node) []int64 {
	out := make([]int64, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}
