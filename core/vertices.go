// Vertex lifecycle and neighborhood queries: AddVertex/HasVertex/
// RemoveVertex, sorted snapshots, degree counts, and neighbor listings.
//
// Determinism: Vertices, OutNeighbors, InNeighbors, and
// UndirectedNeighbors return handles sorted ascending.

package core

import "sort"

// AddVertex inserts id into the graph if absent; re-adding is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id int64) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
}

// HasVertex reports whether the graph contains id.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]
	return ok
}

// RemoveVertex deletes id and every incident edge.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id int64) error {
	if !g.HasVertex(id) {
		return ErrVertexNotFound
	}
	// Drop outgoing edges and their mirrors in `in`.
	for to := range g.out[id] {
		g.dropEdge(id, to)
	}
	// Drop incoming edges and their mirrors in `out`.
	for from := range g.in[id] {
		g.dropEdge(from, id)
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex handles sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	out := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// OutDegree returns the number of edges leaving id.
// Complexity: O(1).
func (g *Graph) OutDegree(id int64) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	return len(g.out[id]), nil
}

// InDegree returns the number of edges entering id.
// Complexity: O(1).
func (g *Graph) InDegree(id int64) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	return len(g.in[id]), nil
}

// Degree returns in-degree plus out-degree (a self-loop counts twice).
// Complexity: O(1).
func (g *Graph) Degree(id int64) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	return len(g.in[id]) + len(g.out[id]), nil
}

// OutNeighbors returns the targets of edges leaving id, sorted ascending.
// Complexity: O(deg log deg).
func (g *Graph) OutNeighbors(id int64) ([]int64, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.out[id]), nil
}

// InNeighbors returns the sources of edges entering id, sorted ascending.
// Complexity: O(deg log deg).
func (g *Graph) InNeighbors(id int64) ([]int64, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.in[id]), nil
}

// UndirectedNeighbors returns the union of in- and out-neighbors of id,
// sorted ascending. Used by traversals that ignore edge orientation
// (re-rooting, component extraction, diameter search).
// Complexity: O(deg log deg).
func (g *Graph) UndirectedNeighbors(id int64) ([]int64, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	seen := make(map[int64]struct{}, len(g.out[id])+len(g.in[id]))
	for to := range g.out[id] {
		seen[to] = struct{}{}
	}
	for from := range g.in[id] {
		seen[from] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// FilterVertices removes every vertex failing pred, together with all
// incident edges. pred must be pure and must not mutate the graph.
// Complexity: O(V + E).
func (g *Graph) FilterVertices(pred func(id int64) bool) {
	for id := range g.vertices {
		if !pred(id) {
			_ = g.RemoveVertex(id)
		}
	}
}

// sortedKeys extracts map keys in ascending order.
func sortedKeys[V any](m map[int64]V) []int64 {
	out := make([]int64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
