// Package core provides the generic in-memory weighted digraph that the
// domain packages (morph, region) wrap by composition.
//
// The Graph G = (V,E) is:
//
//   - Directed: every edge has an orientation from→to.
//   - Weighted: edge weights are float64 (cable lengths, counts).
//   - Simple by default: at most one edge per ordered (from,to) pair.
//     A second AddEdge for the same pair returns ErrParallelEdge;
//     AccumulateEdge folds parallel insertions into one edge instead.
//   - Loop-free by default: self-loops require WithLoops().
//
// Vertices are bare int64 handles. Domain meaning (reconstruction node,
// anatomical region) lives in the wrapping package, which maps handles to
// its own node or annotation records. This keeps re-rooting and
// renumbering a pure relation rewrite with no aliasing hazards.
//
// Ownership model: a Graph is exclusively owned by a single goroutine.
// There is no internal locking; all operations are synchronous and touch
// only the receiver. Callers needing parallelism must partition work into
// disjoint graphs.
//
// Determinism: Vertices(), Edges(), and all neighbor queries return
// results in sorted order, so traversals and aggregations built on them
// are reproducible run to run.
package core
