// Graph→tree materialization: back to the flat parent-pointer node list.

package morph

// Tree materializes the reconstruction as a flat parent-pointer node
// list, sorted by ID, with Parent/Previous synced to the current edge
// directions. The returned nodes are copies; feeding them to New with
// assignDistances=true round-trips the graph (same parent/child
// relationships, distances recomputed from positions).
//
// Errors: ErrDisconnected when a node has more than one incoming edge.
// Complexity: O(V + E).
func (g *Graph) Tree() ([]*Node, error) {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.Nodes() {
		parent, err := g.parentOf(n.ID)
		if err != nil {
			return nil, err
		}
		c := *n
		c.Parent = parent
		c.Previous = parent
		out = append(out, &c)
	}

	return out, nil
}
