package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurokit/arbor/core"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(7)
	g.AddVertex(7)
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(7))
	assert.False(t, g.HasVertex(8))
}

func TestAddEdge_AutoAddsEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1.5))
	assert.True(t, g.HasVertex(1))
	assert.True(t, g.HasVertex(2))
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1), "edges are directed")

	w, err := g.EdgeWeight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, w)
}

func TestAddEdge_ParallelRejected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	err := g.AddEdge(1, 2, 2)
	assert.ErrorIs(t, err, core.ErrParallelEdge)
}

func TestAddEdge_LoopPolicy(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge(3, 3, 1), core.ErrLoopNotAllowed)

	looped := core.NewGraph(core.WithLoops())
	require.NoError(t, looped.AddEdge(3, 3, 1))
	deg, err := looped.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 2, deg, "a self-loop counts for both degrees")
}

func TestAccumulateEdge_FoldsWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AccumulateEdge(1, 2, 2))
	require.NoError(t, g.AccumulateEdge(1, 2, 3))
	w, err := g.EdgeWeight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, w)
	assert.Equal(t, 1, g.EdgeCount(), "accumulation never creates parallel edges")
}

func TestRemoveEdge_Strict(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.RemoveEdge(1, 2))
	assert.ErrorIs(t, g.RemoveEdge(1, 2), core.ErrEdgeNotFound)
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.HasVertex(1), "removing an edge keeps its endpoints")
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(4, 2, 1))

	require.NoError(t, g.RemoveVertex(2))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 3, g.VertexCount())
	assert.ErrorIs(t, g.RemoveVertex(2), core.ErrVertexNotFound)
}

func TestDegreesAndNeighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(4, 1, 1))

	out, err := g.OutDegree(1)
	require.NoError(t, err)
	in, err := g.InDegree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
	assert.Equal(t, 1, in)

	outN, err := g.OutNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, outN)

	undirected, err := g.UndirectedNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, undirected)

	_, err = g.OutDegree(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(3, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 4, 1))

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{From: 1, To: 2, Weight: 1}, edges[0])
	assert.Equal(t, core.Edge{From: 1, To: 4, Weight: 1}, edges[1])
	assert.Equal(t, core.Edge{From: 3, To: 1, Weight: 1}, edges[2])

	assert.Equal(t, []int64{1, 2, 3, 4}, g.Vertices())
}

func TestFilterEdges_And_SumWeights(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 5))
	assert.Equal(t, 6.0, g.SumEdgeWeights())

	g.FilterEdges(func(e core.Edge) bool { return e.Weight >= 2 })
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 3))
}

func TestFilterVertices(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	g.FilterVertices(func(id int64) bool { return id <= 2 })
	assert.Equal(t, []int64{1, 2}, g.Vertices())
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(3, 4))
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge(1, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 3))

	c := g.Clone()
	assert.True(t, c.Looped())
	assert.Equal(t, g.Edges(), c.Edges())

	require.NoError(t, c.RemoveEdge(1, 2))
	assert.True(t, g.HasEdge(1, 2), "mutating the clone must not touch the source")
}
