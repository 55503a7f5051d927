// Package core defines the central Graph and Edge types used throughout
// the module, together with the sentinel errors of the graph layer.
//
// This file declares Edge, Graph, GraphOption, the sentinel errors, and
// the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrParallelEdge indicates a second edge was added between the same
	// ordered vertex pair; use AccumulateEdge to fold weights instead.
	ErrParallelEdge = errors.New("core: parallel edge not allowed")
)

// Edge is a directed weighted connection between two vertices.
// It is a value snapshot: mutating a returned Edge does not affect the graph.
type Edge struct {
	// From is the source vertex handle.
	From int64

	// To is the destination vertex handle.
	To int64

	// Weight is the cost carried by the edge (distance, count, length).
	Weight float64
}

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// Region aggregation needs them; morphology trees never do.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory directed weighted graph.
//
// Adjacency is stored twice, keyed from both endpoints, so that in-degree
// and ancestor-chain queries are O(1) per step:
//
//	out[from][to] = weight
//	in[to][from]  = weight
//
// The two maps always hold identical weight values for the same edge.
type Graph struct {
	allowLoops bool

	vertices map[int64]struct{}
	out      map[int64]map[int64]float64
	in       map[int64]map[int64]float64
	edgeN    int
}

// NewGraph creates an empty Graph with the given options.
// By default the graph rejects self-loops and parallel edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[int64]struct{}),
		out:      make(map[int64]map[int64]float64),
		in:       make(map[int64]map[int64]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
