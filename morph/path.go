// Tree-structured path queries: ancestor-chain LCA shortest paths and
// two-pass farthest-node (diameter) search.

package morph

import "fmt"

// ShortestPath returns the unique path between v1 and v2 through their
// lowest common ancestor.
//
// Both ancestor chains are walked to the root in O(depth); the chains are
// compared from the root end to locate the LCA. The result runs
// v1 → … → LCA → … → v2, traversing against edge direction on the v1
// side and with it on the v2 side. Weight is the sum of all traversed
// edge weights.
//
// Errors: ErrNodeNotFound for absent endpoints; ErrDisconnected when the
// two rootward chains terminate at different ancestors (disjoint
// components or a broken tree invariant); ErrNoRoot when a chain cycles
// without ever reaching a parentless node. Never a partial path.
// Complexity: O(depth(v1) + depth(v2)).
func (g *Graph) ShortestPath(v1, v2 int64) (*Path, error) {
	if _, err := g.Node(v1); err != nil {
		return nil, err
	}
	if _, err := g.Node(v2); err != nil {
		return nil, err
	}
	if v1 == v2 {
		return &Path{Nodes: []*Node{g.nodes[v1]}}, nil
	}

	c1, err := g.ancestorChain(v1)
	if err != nil {
		return nil, err
	}
	c2, err := g.ancestorChain(v2)
	if err != nil {
		return nil, err
	}
	if c1[0] != c2[0] {
		return nil, fmt.Errorf("%w: chains end at %d and %d", ErrDisconnected, c1[0], c2[0])
	}

	// Locate the LCA: the last index at which the chains agree.
	lca := 0
	for lca+1 < len(c1) && lca+1 < len(c2) && c1[lca+1] == c2[lca+1] {
		lca++
	}

	p := &Path{}
	// v1 side, walked child→parent down to (and including) the LCA.
	for i := len(c1) - 1; i >= lca; i-- {
		p.Nodes = append(p.Nodes, g.nodes[c1[i]])
		if i > lca {
			w, werr := g.g.EdgeWeight(c1[i-1], c1[i])
			if werr != nil {
				return nil, werr
			}
			p.Weight += w
		}
	}
	// v2 side, walked parent→child from just below the LCA.
	for i := lca + 1; i < len(c2); i++ {
		w, werr := g.g.EdgeWeight(c2[i-1], c2[i])
		if werr != nil {
			return nil, werr
		}
		p.Weight += w
		p.Nodes = append(p.Nodes, g.nodes[c2[i]])
	}

	return p, nil
}

// ancestorChain returns the rootward chain of id ordered root→…→id.
// The walk follows single incoming edges; a vertex with more than one
// incoming edge breaks the tree invariant and yields ErrDisconnected.
// A chain longer than the vertex count means the walk never reached a
// parentless node: the component is a cycle, so there is no root.
func (g *Graph) ancestorChain(id int64) ([]int64, error) {
	chain := []int64{id}
	cur := id
	for {
		parent, err := g.parentOf(cur)
		if err != nil {
			return nil, err
		}
		if parent == NoParent {
			break
		}
		if len(chain) > g.NodeCount() {
			return nil, fmt.Errorf("%w: ancestor walk from node %d cycles", ErrNoRoot, id)
		}
		chain = append(chain, parent)
		cur = parent
	}
	// Reverse in place: collected leafward, wanted rootward-first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}

// FarthestFrom runs a weighted breadth-first traversal over the
// undirected view of the graph, accumulating cumulative edge weight per
// node, and returns the farthest node and its distance from start.
// Ties keep the first node encountered in (deterministic, sorted)
// traversal order.
// Complexity: O(V + E).
func (g *Graph) FarthestFrom(start int64) (int64, float64, error) {
	best, dist, _, err := g.farthestWalk(start)
	return best, dist, err
}

// farthestWalk is FarthestFrom plus the traversal's parent relation, used
// by LongestPath to reconstruct the diameter path.
func (g *Graph) farthestWalk(start int64) (int64, float64, map[int64]int64, error) {
	if !g.g.HasVertex(start) {
		return NoParent, 0, nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, start)
	}

	dist := map[int64]float64{start: 0}
	parent := make(map[int64]int64)
	queue := []int64{start}
	best, bestDist := start, 0.0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nbrs, err := g.g.UndirectedNeighbors(cur)
		if err != nil {
			return NoParent, 0, nil, err
		}
		for _, nbr := range nbrs {
			if _, seen := dist[nbr]; seen {
				continue
			}
			w, werr := g.undirectedWeight(cur, nbr)
			if werr != nil {
				return NoParent, 0, nil, werr
			}
			d := dist[cur] + w
			dist[nbr] = d
			parent[nbr] = cur
			if d > bestDist {
				best, bestDist = nbr, d
			}
			queue = append(queue, nbr)
		}
	}

	return best, bestDist, parent, nil
}

// LongestPath returns the heaviest shortest-path in the graph.
//
// Directed semantics start at the root and end at the farthest
// descendant. Undirected semantics use the classic two-pass scheme: find
// the farthest node X from an arbitrary start, then the farthest node Y
// from X; the X↔Y path is the weighted diameter.
//
// Errors: ErrNoRoot/ErrMultipleRoots (directed), ErrEmptyNodes on an
// empty graph, ErrDisconnected (undirected) when the graph has more
// than one component and no single diameter exists.
// Complexity: O(V + E).
func (g *Graph) LongestPath(directed bool) (*Path, error) {
	if g.NodeCount() == 0 {
		return nil, ErrEmptyNodes
	}

	if directed {
		root, err := g.Root()
		if err != nil {
			return nil, err
		}
		far, _, err := g.FarthestFrom(root.ID)
		if err != nil {
			return nil, err
		}
		return g.ShortestPath(root.ID, far)
	}

	// Undirected: two passes from a deterministic arbitrary start
	// (Vertices is sorted, so the lowest ID seeds the first pass).
	ids := g.g.Vertices()
	x, _, _, err := g.farthestWalk(ids[0])
	if err != nil {
		return nil, err
	}
	y, d, parent, err := g.farthestWalk(x)
	if err != nil {
		return nil, err
	}
	if len(parent)+1 < g.NodeCount() {
		return nil, fmt.Errorf("%w: %d of %d nodes reachable from %d",
			ErrDisconnected, len(parent)+1, g.NodeCount(), x)
	}

	// Reconstruct X↔Y from the second pass's parent relation.
	p := &Path{Weight: d}
	for cur := y; ; {
		p.Nodes = append(p.Nodes, g.nodes[cur])
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(p.Nodes)-1; i < j; i, j = i+1, j-1 {
		p.Nodes[i], p.Nodes[j] = p.Nodes[j], p.Nodes[i]
	}

	return p, nil
}

// undirectedWeight returns the weight of the edge between a and b in
// whichever direction it exists.
func (g *Graph) undirectedWeight(a, b int64) (float64, error) {
	if w, err := g.g.EdgeWeight(a, b); err == nil {
		return w, nil
	}

	return g.g.EdgeWeight(b, a)
}
