// Connected-component extraction over the undirected view.

package morph

// Components splits the graph into its connected components, ignoring
// edge orientation, and returns each as a fresh Graph. Component nodes
// are copies, so mutating a component leaves the source untouched.
// Components are ordered by their smallest contained node ID; a connected
// graph yields a single component.
// Complexity: O(V + E).
func (g *Graph) Components() ([]*Graph, error) {
	seen := make(map[int64]bool, len(g.nodes))
	var comps []*Graph

	for _, start := range g.g.Vertices() {
		if seen[start] {
			continue
		}
		// Collect the component's vertex set by undirected traversal.
		member := map[int64]bool{start: true}
		seen[start] = true
		queue := []int64{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			nbrs, err := g.g.UndirectedNeighbors(cur)
			if err != nil {
				return nil, err
			}
			for _, nbr := range nbrs {
				if seen[nbr] {
					continue
				}
				seen[nbr] = true
				member[nbr] = true
				queue = append(queue, nbr)
			}
		}

		// Materialize the component with copied nodes and intra-set edges.
		comp := newEmpty(g.weighted)
		for id := range member {
			c := *g.nodes[id]
			comp.nodes[c.ID] = &c
			comp.g.AddVertex(c.ID)
		}
		for _, e := range g.g.Edges() {
			if member[e.From] && member[e.To] {
				if err := comp.g.AddEdge(e.From, e.To, e.Weight); err != nil {
					return nil, err
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
