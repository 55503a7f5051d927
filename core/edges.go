// Edge lifecycle and queries: AddEdge/AccumulateEdge/SetEdgeWeight/
// RemoveEdge/HasEdge/EdgeWeight/Edges/EdgeCount, filtered removal, and
// whole-graph cloning.
//
// Determinism: Edges() returns edges sorted by (From, To) ascending.

package core

import "sort"

// AddEdge creates the edge from→to with the given weight, auto-adding
// missing endpoints. Returns ErrLoopNotAllowed for a self-loop on a
// loop-free graph and ErrParallelEdge if the ordered pair already has an
// edge (use AccumulateEdge to fold weights instead).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64, weight float64) error {
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if _, ok := g.out[from][to]; ok {
		return ErrParallelEdge
	}
	g.AddVertex(from)
	g.AddVertex(to)
	g.link(from, to, weight)

	return nil
}

// AccumulateEdge adds delta to the weight of the edge from→to, creating
// the edge (and missing endpoints) if absent. This is how aggregation
// folds repeated region pairs into one weighted edge.
// Complexity: O(1) amortized.
func (g *Graph) AccumulateEdge(from, to int64, delta float64) error {
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if w, ok := g.out[from][to]; ok {
		g.out[from][to] = w + delta
		g.in[to][from] = w + delta
		return nil
	}
	g.AddVertex(from)
	g.AddVertex(to)
	g.link(from, to, delta)

	return nil
}

// SetEdgeWeight replaces the weight of an existing edge from→to.
// Returns ErrEdgeNotFound if the edge is absent.
// Complexity: O(1).
func (g *Graph) SetEdgeWeight(from, to int64, weight float64) error {
	if _, ok := g.out[from][to]; !ok {
		return ErrEdgeNotFound
	}
	g.out[from][to] = weight
	g.in[to][from] = weight

	return nil
}

// RemoveEdge deletes the edge from→to.
// Returns ErrEdgeNotFound if the edge is absent (no silent ignore).
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int64) error {
	if _, ok := g.out[from][to]; !ok {
		return ErrEdgeNotFound
	}
	g.dropEdge(from, to)

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int64) bool {
	_, ok := g.out[from][to]
	return ok
}

// EdgeWeight returns the weight of the edge from→to, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to int64) (float64, error) {
	w, ok := g.out[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns all edges sorted by (From, To) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeN)
	for from, nbrs := range g.out {
		for to, w := range nbrs {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeN }

// SumEdgeWeights returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) SumEdgeWeights() float64 {
	var sum float64
	for _, nbrs := range g.out {
		for _, w := range nbrs {
			sum += w
		}
	}

	return sum
}

// FilterEdges removes all edges failing pred. pred receives a value
// snapshot and must not mutate the graph.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(e Edge) bool) {
	for from, nbrs := range g.out {
		for to, w := range nbrs {
			if !pred(Edge{From: from, To: to, Weight: w}) {
				g.dropEdge(from, to)
			}
		}
	}
}

// Clone returns a deep copy: same vertices, edges, weights, and flags.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	out.allowLoops = g.allowLoops
	for id := range g.vertices {
		out.AddVertex(id)
	}
	for from, nbrs := range g.out {
		for to, w := range nbrs {
			out.link(from, to, w)
		}
	}

	return out
}

// link records the edge in both adjacency maps. Endpoints must exist.
func (g *Graph) link(from, to int64, weight float64) {
	if g.out[from] == nil {
		g.out[from] = make(map[int64]float64)
	}
	if g.in[to] == nil {
		g.in[to] = make(map[int64]float64)
	}
	g.out[from][to] = weight
	g.in[to][from] = weight
	g.edgeN++
}

// dropEdge removes the edge from both adjacency maps. The edge must exist.
func (g *Graph) dropEdge(from, to int64) {
	delete(g.out[from], to)
	delete(g.in[to], from)
	if len(g.out[from]) == 0 {
		delete(g.out, from)
	}
	if len(g.in[to]) == 0 {
		delete(g.in, to)
	}
	g.edgeN--
}
