// Aggregation of reconstruction collections into an annotation graph
// under a selectable metric.

package region

import (
	"fmt"
	"sort"

	"github.com/neurokit/arbor/annot"
	"github.com/neurokit/arbor/core"
	"github.com/neurokit/arbor/morph"
)

// New aggregates recs into one annotation graph.
//
// threshold and maxDepth are clamped to ≥ 0 before use. All annotations
// are rolled up to maxDepth through a per-call pool, so identical
// rolled-up regions share one vertex. Unannotated points and
// reconstructions without a root annotation are skipped silently.
//
// Errors: ErrEmptyInput for an empty collection, ErrNilReconstruction
// for a nil entry, ErrUnsupportedMetric for an unknown metric, option
// violations, and context cancellation between reconstructions.
// Complexity: O(total nodes + total edges) across recs.
func New(recs []Reconstruction, metric Metric, threshold float64, maxDepth int, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(recs) == 0 {
		return nil, ErrEmptyInput
	}
	for i, r := range recs {
		if r == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilReconstruction, i)
		}
	}
	if _, err := ParseMetric(string(metric)); err != nil {
		return nil, err
	}
	if threshold < 0 {
		threshold = 0
	}
	if maxDepth < 0 {
		maxDepth = 0
	}

	b := &builder{
		graph:  newGraph(metric, threshold, maxDepth, recs),
		pool:   annot.NewPool(),
		opts:   o,
		counts: make(map[[2]int64]int),
	}

	var err error
	switch metric {
	case MetricTips:
		err = b.countNodes(recs, func(r Reconstruction) []*morph.Node { return r.Analyzer().Tips() })
	case MetricBranchPoints:
		err = b.countNodes(recs, func(r Reconstruction) []*morph.Node { return r.Analyzer().BranchPoints() })
	case MetricLength:
		err = b.lengths(recs)
	case MetricEdges:
		err = b.edgeOccurrences(recs)
	}
	if err != nil {
		return nil, err
	}

	return b.graph, nil
}

// builder holds the mutable state of one aggregation run.
type builder struct {
	graph *Graph
	pool  *annot.Pool
	opts  Options

	// counts tallies node-level edge occurrences per ordered region pair
	// (MetricEdges only). Kept separate from edge weight: the threshold
	// prunes on counts, later trimming operates on weight.
	counts map[[2]int64]int
}

// cancelled reports a context error, checked once per reconstruction.
func (b *builder) cancelled() error {
	select {
	case <-b.opts.Ctx.Done():
		return b.opts.Ctx.Err()
	default:
		return nil
	}
}

// rollUp maps an annotation through the pool at the run's maxDepth.
func (b *builder) rollUp(a annot.Annotation) annot.Annotation {
	return b.pool.RollUp(a, b.graph.maxDepth)
}

// countNodes implements the tips and branch-points metrics: per
// reconstruction, tally annotated points per rolled-up target region and
// connect the rolled-up root to every target meeting the threshold,
// accumulating the count as edge weight.
func (b *builder) countNodes(recs []Reconstruction, pick func(Reconstruction) []*morph.Node) error {
	minCount := int(b.graph.threshold)
	for _, rec := range recs {
		if err := b.cancelled(); err != nil {
			return err
		}
		root := b.rollUp(rec.RootAnnotation())
		if root == nil {
			continue
		}

		tally := make(map[annot.Annotation]int)
		for _, n := range pick(rec) {
			if region := b.rollUp(n.Annotation); region != nil {
				tally[region]++
			}
		}
		for _, region := range sortedRegions(tally) {
			count := tally[region]
			if count < minCount {
				continue
			}
			if err := b.graph.accumulate(root, region, float64(count)); err != nil {
				return err
			}
		}
	}

	return nil
}

// lengths implements the length metric: the analyzer supplies per-region
// cable length already rolled up to maxDepth; entries meeting the
// threshold accumulate onto root→region edges.
func (b *builder) lengths(recs []Reconstruction) error {
	for _, rec := range recs {
		if err := b.cancelled(); err != nil {
			return err
		}
		root := b.rollUp(rec.RootAnnotation())
		if root == nil {
			continue
		}

		byRegion := rec.Analyzer().AnnotatedLength(b.graph.maxDepth)
		for _, region := range sortedRegions(byRegion) {
			length := byRegion[region]
			if length < b.graph.threshold {
				continue
			}
			// Re-intern: analyzer-supplied annotations must share vertex
			// identity with pool-rolled ones.
			if err := b.graph.accumulate(root, b.pool.Intern(region), length); err != nil {
				return err
			}
		}
	}

	return nil
}

// edgeOccurrences implements the edges metric: every node-level edge with
// two annotated endpoints votes +1 on its rolled-up ordered region pair,
// advancing both the edge weight and the occurrence count. After all
// reconstructions, self-loops and under-threshold pairs are pruned and
// isolated vertices removed.
func (b *builder) edgeOccurrences(recs []Reconstruction) error {
	for _, rec := range recs {
		if err := b.cancelled(); err != nil {
			return err
		}
		ng := rec.Graph()
		if ng == nil {
			continue
		}
		for _, e := range ng.Edges() {
			srcNode, err := ng.Node(e.From)
			if err != nil {
				return err
			}
			dstNode, err := ng.Node(e.To)
			if err != nil {
				return err
			}
			src := b.rollUp(srcNode.Annotation)
			dst := b.rollUp(dstNode.Annotation)
			if src == nil || dst == nil {
				continue
			}
			if err = b.graph.accumulate(src, dst, 1); err != nil {
				return err
			}
			b.counts[[2]int64{int64(src.ID()), int64(dst.ID())}]++
		}
	}

	// Prune: self-loops always; pairs under the occurrence threshold;
	// then any vertex left isolated.
	b.graph.FilterEdges(func(e core.Edge) bool {
		if e.From == e.To {
			return false
		}
		return float64(b.counts[[2]int64{e.From, e.To}]) >= b.graph.threshold
	})
	b.graph.RemoveOrphans()

	return nil
}

// sortedRegions returns the keys of a region-keyed map sorted by ID, so
// edge insertion order is deterministic.
func sortedRegions[V any](m map[annot.Annotation]V) []annot.Annotation {
	out := make([]annot.Annotation, 0, len(m))
	for a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}
