// In-place mutations of the rooting: SetRoot (edge-direction flips) and
// AssignIDsDepthFirst (depth-first renumbering).

package morph

import (
	"fmt"

	"github.com/neurokit/arbor/core"
)

// SetRoot re-roots the tree at the given node, mutating the graph in
// place.
//
// An iterative depth-first walk (explicit stack, never recursion) visits
// the undirected view starting at the new root; every edge whose current
// direction does not originate at the visited node is removed and
// re-added in the corrected direction. Nodes are never revisited, so each
// edge is examined once. Afterwards every node's Parent/Previous relation
// is rewritten to its new upstream neighbor.
//
// Post-condition: the new root has in-degree 0 and every other vertex has
// exactly one incoming edge, a valid rooted out-tree again. Re-rooting
// to the current root is a no-op on topology; vertex set, weights, and
// positions are never changed.
//
// Errors: ErrNodeNotFound when newRoot is not a member.
// Complexity: O(V + E).
func (g *Graph) SetRoot(newRoot int64) error {
	if _, err := g.Node(newRoot); err != nil {
		return err
	}

	visited := map[int64]bool{newRoot: true}
	stack := []int64{newRoot}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nbrs, err := g.g.UndirectedNeighbors(cur)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if visited[nbr] {
				continue
			}
			// Flip any edge pointing at the visited node.
			if g.g.HasEdge(nbr, cur) {
				w, werr := g.g.EdgeWeight(nbr, cur)
				if werr != nil {
					return werr
				}
				if rerr := g.g.RemoveEdge(nbr, cur); rerr != nil {
					return rerr
				}
				if aerr := g.g.AddEdge(cur, nbr, w); aerr != nil {
					return fmt.Errorf("morph: reroot edge %d→%d: %w", cur, nbr, aerr)
				}
			}
			visited[nbr] = true
			stack = append(stack, nbr)
		}
	}

	return g.syncRelations()
}

// AssignIDsDepthFirst renumbers every node in depth-first visit order
// starting from the root, assigning IDs 1..n and rewriting the ID,
// Parent, and Previous fields in place. The underlying topology and all
// edge weights are preserved under the new numbering.
//
// Errors: ErrNoRoot/ErrMultipleRoots on invalid rooting, ErrDisconnected
// when some vertex is unreachable from the root.
// Complexity: O(V + E).
func (g *Graph) AssignIDsDepthFirst() error {
	root, err := g.Root()
	if err != nil {
		return err
	}

	// Explicit-stack DFS assigning new IDs in visit order. Children are
	// pushed in reverse sorted order so lower IDs are visited first.
	remap := make(map[int64]int64, len(g.nodes))
	next := int64(1)
	stack := []int64{root.ID}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := remap[cur]; done {
			continue
		}
		remap[cur] = next
		next++
		children, cerr := g.g.OutNeighbors(cur)
		if cerr != nil {
			return cerr
		}
		for i := len(children) - 1; i >= 0; i-- {
			if _, done := remap[children[i]]; !done {
				stack = append(stack, children[i])
			}
		}
	}
	if len(remap) != g.NodeCount() {
		return fmt.Errorf("%w: %d of %d nodes reachable from root %d",
			ErrDisconnected, len(remap), g.NodeCount(), root.ID)
	}

	// Rebuild topology and arena under the new numbering.
	rebuilt := core.NewGraph()
	for old := range g.nodes {
		rebuilt.AddVertex(remap[old])
	}
	for _, e := range g.g.Edges() {
		if aerr := rebuilt.AddEdge(remap[e.From], remap[e.To], e.Weight); aerr != nil {
			return aerr
		}
	}
	arena := make(map[int64]*Node, len(g.nodes))
	for old, n := range g.nodes {
		n.ID = remap[old]
		arena[n.ID] = n
	}
	g.g = rebuilt
	g.nodes = arena

	return g.syncRelations()
}

// syncRelations rewrites every node's Parent and Previous fields from the
// current incoming edges.
func (g *Graph) syncRelations() error {
	for id, n := range g.nodes {
		parent, err := g.parentOf(id)
		if err != nil {
			return err
		}
		n.Parent = parent
		n.Previous = parent
	}

	return nil
}
