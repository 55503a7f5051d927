// Set-style algebra over annotation graphs.
//
// Edge identity is the ordered pair of endpoint region IDs, never edge
// weight, never object identity. Every operator rebuilds a brand-new
// unweighted Graph: retained identities gain both endpoint vertices (the
// annotation objects from whichever input supplied the identity) and a
// zero-weight edge. Results carry no metric and no source
// reconstructions.

package region

// Union returns a graph whose edge-identity set is the union of the
// inputs'. First writer wins for vertex objects of shared identities.
// Errors: ErrNoGraphs when called without inputs.
// Complexity: O(sum of E).
func Union(graphs ...*Graph) (*Graph, error) {
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}
	out := newDerived()
	for _, gr := range graphs {
		for _, e := range gr.Edges() {
			if out.g.HasEdge(e.From, e.To) {
				continue
			}
			copyIdentity(out, gr, e.From, e.To)
		}
	}

	return out, nil
}

// Intersection returns a graph whose edge-identity set is shared by ALL
// inputs. Vertex objects come from the first input.
// Errors: ErrNoGraphs when called without inputs.
// Complexity: O(sum of E).
func Intersection(graphs ...*Graph) (*Graph, error) {
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}
	out := newDerived()
	first := graphs[0]
	for _, e := range first.Edges() {
		inAll := true
		for _, gr := range graphs[1:] {
			if !gr.g.HasEdge(e.From, e.To) {
				inAll = false
				break
			}
		}
		if inAll {
			copyIdentity(out, first, e.From, e.To)
		}
	}

	return out, nil
}

// Difference returns the edge identities of a that are absent from b.
// Complexity: O(E(a)).
func Difference(a, b *Graph) *Graph {
	out := newDerived()
	for _, e := range a.Edges() {
		if !b.g.HasEdge(e.From, e.To) {
			copyIdentity(out, a, e.From, e.To)
		}
	}

	return out
}

// SymmetricDifference returns the edge identities present in exactly one
// of a and b; each retained identity carries the vertex objects of the
// graph it came from.
// Complexity: O(E(a) + E(b)).
func SymmetricDifference(a, b *Graph) *Graph {
	out := newDerived()
	for _, e := range a.Edges() {
		if !b.g.HasEdge(e.From, e.To) {
			copyIdentity(out, a, e.From, e.To)
		}
	}
	for _, e := range b.Edges() {
		if !a.g.HasEdge(e.From, e.To) {
			copyIdentity(out, b, e.From, e.To)
		}
	}

	return out
}

// EdgeIdentities returns the graph's edge-identity set, useful for
// comparing aggregations without regard to weight.
func (ag *Graph) EdgeIdentities() map[[2]int]struct{} {
	out := make(map[[2]int]struct{}, ag.EdgeCount())
	for _, e := range ag.Edges() {
		out[[2]int{int(e.From), int(e.To)}] = struct{}{}
	}

	return out
}

// newDerived creates an empty algebra result graph.
func newDerived() *Graph { return newGraph("", 0, 0, nil) }

// copyIdentity adds the identity (src,dst) to out, pulling the endpoint
// annotation objects from the examined input graph.
func copyIdentity(out, from *Graph, src, dst int64) {
	out.addVertex(from.annotations[src])
	out.addVertex(from.annotations[dst])
	_ = out.g.AddEdge(src, dst, 0)
}
