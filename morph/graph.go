// Graph construction from a flat node list and read accessors.

package morph

import (
	"fmt"
	"sort"

	"github.com/neurokit/arbor/core"
)

// Graph is a rooted, acyclic, directed weighted graph over reconstruction
// nodes. It owns a generic core.Graph for topology and an ID-keyed arena
// of nodes for domain data (composition, not inheritance).
type Graph struct {
	g        *core.Graph
	nodes    map[int64]*Node
	weighted bool
}

// New builds a Graph from a flat node collection.
//
// Every node becomes a vertex; every node with Parent != NoParent gains a
// directed edge from its parent, weighted with the Euclidean inter-node
// distance when assignDistances is true and left at zero otherwise. The
// node's Previous relation is set to its parent.
//
// The graph takes ownership of the given nodes and rewrites their
// Parent/Previous fields during later mutations.
//
// Errors: ErrEmptyNodes, ErrDuplicateID, ErrDanglingParent. Zero or
// multiple parentless nodes are accepted here; the defect surfaces on the
// first root-dependent operation.
// Complexity: O(n).
func New(nodes []*Node, assignDistances bool) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyNodes
	}

	g := &Graph{
		g:        core.NewGraph(),
		nodes:    make(map[int64]*Node, len(nodes)),
		weighted: assignDistances,
	}

	// First pass: index nodes and add vertices.
	for _, n := range nodes {
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateID, n.ID)
		}
		g.nodes[n.ID] = n
		g.g.AddVertex(n.ID)
	}

	// Second pass: resolve parents and add edges.
	for _, n := range nodes {
		if n.Parent == NoParent {
			n.Previous = NoParent
			continue
		}
		p, ok := g.nodes[n.Parent]
		if !ok || n.Parent == n.ID {
			return nil, fmt.Errorf("%w: node %d references parent %d", ErrDanglingParent, n.ID, n.Parent)
		}
		n.Previous = p.ID
		var w float64
		if assignDistances {
			w = Dist(p, n)
		}
		if err := g.g.AddEdge(p.ID, n.ID, w); err != nil {
			return nil, fmt.Errorf("morph: edge %d→%d: %w", p.ID, n.ID, err)
		}
	}

	return g, nil
}

// newEmpty creates a Graph with no nodes, sharing configuration flags.
func newEmpty(weighted bool) *Graph {
	return &Graph{
		g:        core.NewGraph(),
		nodes:    make(map[int64]*Node),
		weighted: weighted,
	}
}

// Root returns the unique node with in-degree zero.
// Errors: ErrNoRoot when no such node exists, ErrMultipleRoots when more
// than one does.
// Complexity: O(V).
func (g *Graph) Root() (*Node, error) {
	var roots []int64
	for _, id := range g.g.Vertices() {
		in, _ := g.g.InDegree(id)
		if in == 0 {
			roots = append(roots, id)
		}
	}
	switch len(roots) {
	case 0:
		return nil, ErrNoRoot
	case 1:
		return g.nodes[roots[0]], nil
	default:
		return nil, fmt.Errorf("%w: candidates %v", ErrMultipleRoots, roots)
	}
}

// Node returns the node with the given ID, or ErrNodeNotFound.
func (g *Graph) Node(id int64) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// Nodes returns all nodes sorted by ID.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Tips returns all leaf nodes (out-degree zero), sorted by ID.
func (g *Graph) Tips() []*Node { return g.nodesWhere(func(out int) bool { return out == 0 }) }

// BranchNodes returns all branch points (out-degree greater than one),
// sorted by ID.
func (g *Graph) BranchNodes() []*Node { return g.nodesWhere(func(out int) bool { return out > 1 }) }

// nodesWhere selects nodes by an out-degree predicate, sorted by ID.
func (g *Graph) nodesWhere(pred func(outDegree int) bool) []*Node {
	var out []*Node
	for _, id := range g.g.Vertices() {
		deg, _ := g.g.OutDegree(id)
		if pred(deg) {
			out = append(out, g.nodes[id])
		}
	}

	return out
}

// Edges returns all parent→child edges sorted by (From, To).
func (g *Graph) Edges() []core.Edge { return g.g.Edges() }

// EdgeWeight returns the weight of the edge from→to.
func (g *Graph) EdgeWeight(from, to int64) (float64, error) { return g.g.EdgeWeight(from, to) }

// SumEdgeWeights returns the total cable length of the reconstruction
// (sum of all edge weights).
func (g *Graph) SumEdgeWeights() float64 { return g.g.SumEdgeWeights() }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.g.VertexCount() }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.g.EdgeCount() }

// Weighted reports whether edge weights carry Euclidean distances.
func (g *Graph) Weighted() bool { return g.weighted }

// AssignEdgeWeightsFromDistances recomputes every edge weight as the
// Euclidean distance between its endpoint positions. Useful after node
// positions change or when the graph was built with assignDistances=false.
// Complexity: O(E).
func (g *Graph) AssignEdgeWeightsFromDistances() {
	for _, e := range g.g.Edges() {
		_ = g.g.SetEdgeWeight(e.From, e.To, Dist(g.nodes[e.From], g.nodes[e.To]))
	}
	g.weighted = true
}

// parentOf returns the single in-neighbor of id, or NoParent when id has
// no incoming edge. More than one incoming edge violates the tree
// invariant and yields ErrDisconnected.
func (g *Graph) parentOf(id int64) (int64, error) {
	in, err := g.g.InNeighbors(id)
	if err != nil {
		return NoParent, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}
	switch len(in) {
	case 0:
		return NoParent, nil
	case 1:
		return in[0], nil
	default:
		return NoParent, fmt.Errorf("%w: node %d has %d parents", ErrDisconnected, id, len(in))
	}
}
