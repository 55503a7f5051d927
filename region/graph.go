// The aggregated annotation graph: region vertices, weighted directed
// edges, accessors, and post-construction trimming.

package region

import (
	"sort"

	"github.com/google/uuid"

	"github.com/neurokit/arbor/annot"
	"github.com/neurokit/arbor/core"
)

// Graph is a weighted, directed, self-loop-tolerant graph over anatomical
// region vertices, built by New or by the algebra operators. Parallel
// edges never exist: repeated (source,target) pairs accumulate into one
// edge's weight.
//
// A Graph keeps the reconstructions it was aggregated from, the metric,
// the threshold, and the rollup depth for traceability. Algebra-derived
// graphs carry none of these (empty metric, no sources).
type Graph struct {
	id          string
	g           *core.Graph
	annotations map[int64]annot.Annotation
	sources     []Reconstruction
	metric      Metric
	threshold   float64
	maxDepth    int
}

// newGraph creates an empty annotation graph with loop support.
func newGraph(metric Metric, threshold float64, maxDepth int, sources []Reconstruction) *Graph {
	return &Graph{
		id:          uuid.NewString(),
		g:           core.NewGraph(core.WithLoops()),
		annotations: make(map[int64]annot.Annotation),
		sources:     sources,
		metric:      metric,
		threshold:   threshold,
		maxDepth:    maxDepth,
	}
}

// ID returns the graph's unique identifier.
func (ag *Graph) ID() string { return ag.id }

// Metric returns the metric the graph was aggregated under; empty for
// algebra-derived graphs.
func (ag *Graph) Metric() Metric { return ag.metric }

// Threshold returns the (clamped) threshold used during aggregation.
func (ag *Graph) Threshold() float64 { return ag.threshold }

// MaxOntologyDepth returns the (clamped) rollup depth used.
func (ag *Graph) MaxOntologyDepth() int { return ag.maxDepth }

// Sources returns the reconstructions the graph was aggregated from.
func (ag *Graph) Sources() []Reconstruction { return ag.sources }

// Annotation returns the region vertex with the given ID, or nil.
func (ag *Graph) Annotation(id int) annot.Annotation { return ag.annotations[int64(id)] }

// Annotations returns all region vertices sorted by ID.
func (ag *Graph) Annotations() []annot.Annotation {
	out := make([]annot.Annotation, 0, len(ag.annotations))
	for _, a := range ag.annotations {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}

// Edges returns all edges sorted by (source ID, target ID).
func (ag *Graph) Edges() []core.Edge { return ag.g.Edges() }

// HasEdge reports whether the edge src→dst exists.
func (ag *Graph) HasEdge(src, dst int) bool { return ag.g.HasEdge(int64(src), int64(dst)) }

// EdgeWeight returns the weight of the edge src→dst.
func (ag *Graph) EdgeWeight(src, dst int) (float64, error) {
	return ag.g.EdgeWeight(int64(src), int64(dst))
}

// VertexCount returns the number of region vertices.
func (ag *Graph) VertexCount() int { return ag.g.VertexCount() }

// EdgeCount returns the number of edges.
func (ag *Graph) EdgeCount() int { return ag.g.EdgeCount() }

// Degree returns in-degree plus out-degree of the region with the given
// ID (self-loops count twice).
func (ag *Graph) Degree(id int) (int, error) { return ag.g.Degree(int64(id)) }

// addVertex records a as a region vertex (idempotent by ID).
func (ag *Graph) addVertex(a annot.Annotation) {
	h := int64(a.ID())
	if _, ok := ag.annotations[h]; !ok {
		ag.annotations[h] = a
	}
	ag.g.AddVertex(h)
}

// accumulate adds delta onto the src→dst edge, creating it if absent.
func (ag *Graph) accumulate(src, dst annot.Annotation, delta float64) error {
	ag.addVertex(src)
	ag.addVertex(dst)

	return ag.g.AccumulateEdge(int64(src.ID()), int64(dst.ID()), delta)
}

// FilterEdgesByWeight removes every edge whose weight is below minWeight
// and returns the number removed. Weight floors below 1 are a no-op, so
// a zero/negative floor can be passed through from user input safely.
// Complexity: O(E).
func (ag *Graph) FilterEdgesByWeight(minWeight float64) int {
	if minWeight < 1 {
		return 0
	}
	removed := 0
	ag.g.FilterEdges(func(e core.Edge) bool {
		if e.Weight < minWeight {
			removed++
			return false
		}
		return true
	})

	return removed
}

// RemoveOrphans removes every region vertex with degree zero and returns
// the removed annotations sorted by ID.
// Complexity: O(V).
func (ag *Graph) RemoveOrphans() []annot.Annotation {
	var removed []annot.Annotation
	ag.g.FilterVertices(func(id int64) bool {
		deg, _ := ag.g.Degree(id)
		if deg > 0 {
			return true
		}
		removed = append(removed, ag.annotations[id])
		delete(ag.annotations, id)
		return false
	})
	sort.Slice(removed, func(i, j int) bool { return removed[i].ID() < removed[j].ID() })

	return removed
}

// FilterEdges removes all edges failing pred.
func (ag *Graph) FilterEdges(pred func(e core.Edge) bool) { ag.g.FilterEdges(pred) }

// FilterVertices removes every region failing pred together with its
// incident edges.
func (ag *Graph) FilterVertices(pred func(a annot.Annotation) bool) {
	ag.g.FilterVertices(func(id int64) bool {
		if pred(ag.annotations[id]) {
			return true
		}
		delete(ag.annotations, id)
		return false
	})
}
