// Analyzer contract and the default morph.Graph-backed implementation.

package morphometry

import (
	"github.com/neurokit/arbor/annot"
	"github.com/neurokit/arbor/morph"
)

// Analyzer supplies the derived measurement sets that region aggregation
// needs from one reconstruction.
type Analyzer interface {
	// Tips returns the reconstruction's terminal points. Entries may
	// carry a nil Annotation; consumers skip those.
	Tips() []*morph.Node

	// BranchPoints returns the reconstruction's branch/junction points.
	BranchPoints() []*morph.Node

	// AnnotatedLength returns cable length grouped by annotation, with
	// every annotation rolled up to maxDepth before grouping.
	AnnotatedLength(maxDepth int) map[annot.Annotation]float64
}

// TreeAnalyzer is the default Analyzer over a morphology graph.
type TreeAnalyzer struct {
	g *morph.Graph
}

// NewTreeAnalyzer wraps g. The analyzer reads the graph lazily; it must
// not be used concurrently with mutations of g.
func NewTreeAnalyzer(g *morph.Graph) *TreeAnalyzer {
	return &TreeAnalyzer{g: g}
}

// Tips returns all out-degree-0 nodes.
func (a *TreeAnalyzer) Tips() []*morph.Node { return a.g.Tips() }

// BranchPoints returns all out-degree>1 nodes.
func (a *TreeAnalyzer) BranchPoints() []*morph.Node { return a.g.BranchNodes() }

// AnnotatedLength sums incoming edge weight per region: each edge's
// length is attributed to the child endpoint's annotation, rolled up to
// maxDepth. Edges whose child has no annotation are skipped.
// Complexity: O(E).
func (a *TreeAnalyzer) AnnotatedLength(maxDepth int) map[annot.Annotation]float64 {
	pool := annot.NewPool()
	out := make(map[annot.Annotation]float64)
	for _, e := range a.g.Edges() {
		child, err := a.g.Node(e.To)
		if err != nil {
			continue
		}
		region := pool.RollUp(child.Annotation, maxDepth)
		if region == nil {
			continue
		}
		out[region] += e.Weight
	}

	return out
}
