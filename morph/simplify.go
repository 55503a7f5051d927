// Chain-collapsing simplification: reduce the reconstruction to its
// relevant nodes (root, branch points, leaves) while preserving
// cumulative edge weight between them.

package morph

import "fmt"

// Simplified returns a NEW graph containing only the relevant nodes of
// the receiver: the root, every branch point (out-degree > 1), and every
// leaf (out-degree 0). The receiver is not modified.
//
// For each retained non-root node, the degree-2 chain upstream of it is
// collapsed into a single edge from its nearest relevant ancestor, whose
// weight is the accumulated weight of the constituent edges. Topology
// among relevant nodes and total path weight between them are preserved
// exactly; a branch point directly downstream of another relevant node
// keeps a direct edge with the single original edge weight.
//
// Retained nodes are copies; mutating the simplified graph leaves the
// source nodes untouched.
//
// Errors: ErrNoRoot/ErrMultipleRoots on a rootless or multi-root graph,
// ErrDisconnected on a broken parent chain.
// Complexity: O(n); every source edge is walked exactly once.
func (g *Graph) Simplified() (*Graph, error) {
	root, err := g.Root()
	if err != nil {
		return nil, err
	}

	// Collect the relevant vertex set.
	relevant := map[int64]bool{root.ID: true}
	for _, n := range g.Tips() {
		relevant[n.ID] = true
	}
	for _, n := range g.BranchNodes() {
		relevant[n.ID] = true
	}

	out := newEmpty(g.weighted)
	for id := range relevant {
		c := *g.nodes[id]
		out.nodes[c.ID] = &c
		out.g.AddVertex(c.ID)
	}

	// For each retained non-root node, walk rootward accumulating weight
	// until the nearest relevant ancestor, then emit one collapsed edge.
	for id := range relevant {
		if id == root.ID {
			out.nodes[id].Parent = NoParent
			out.nodes[id].Previous = NoParent
			continue
		}
		ancestor, sum, werr := g.collapseUpstream(id, root.ID)
		if werr != nil {
			return nil, werr
		}
		if aerr := out.g.AddEdge(ancestor, id, sum); aerr != nil {
			return nil, fmt.Errorf("morph: simplified edge %d→%d: %w", ancestor, id, aerr)
		}
		out.nodes[id].Parent = ancestor
		out.nodes[id].Previous = ancestor
	}

	return out, nil
}

// collapseUpstream walks single-parent links from id toward the root,
// accumulating edge weight, and stops at the first node that is the root
// or a branch point in the SOURCE graph. Returns that ancestor and the
// accumulated path weight.
func (g *Graph) collapseUpstream(id, rootID int64) (int64, float64, error) {
	var sum float64
	cur := id
	for {
		parent, err := g.parentOf(cur)
		if err != nil {
			return NoParent, 0, err
		}
		if parent == NoParent {
			// Reached an in-degree-0 node other than via the root check:
			// the chain never met a relevant ancestor.
			return NoParent, 0, fmt.Errorf("%w: chain above node %d ends at %d", ErrDisconnected, id, cur)
		}
		w, err := g.g.EdgeWeight(parent, cur)
		if err != nil {
			return NoParent, 0, err
		}
		sum += w
		outDeg, _ := g.g.OutDegree(parent)
		if parent == rootID || outDeg > 1 {
			return parent, sum, nil
		}
		cur = parent
	}
}
