// Package region aggregates collections of morphology graphs into
// coarser annotation graphs keyed by anatomical region.
//
// An aggregation run takes reconstructions (each a morph.Graph with an
// externally assigned root annotation and an Analyzer), a Metric, a
// numeric threshold, and a maximum ontology depth. Every annotation
// encountered is rolled up to that depth through the injected ontology
// (annot.Annotation.AncestorAtDepth) and interned in a per-run pool, so
// one region is one vertex no matter how many reconstructions touch it.
// Unannotated points are skipped, never error.
//
// Metrics:
//
//   - MetricTips: per reconstruction, count annotated tips per target
//     region; targets meeting the threshold gain a root→target edge whose
//     weight accumulates the count.
//   - MetricBranchPoints: as MetricTips, counting junction points.
//   - MetricLength: per reconstruction, cable length per region from the
//     Analyzer; entries meeting the threshold accumulate root→region.
//   - MetricEdges: every node-level edge whose endpoints are both
//     annotated votes +1 on the rolled-up (source,target) pair; after all
//     reconstructions, self-loops and pairs occurring fewer than
//     threshold times are pruned, then isolated vertices removed.
//
// The resulting Graph allows self-loops and accumulates weight instead of
// holding parallel edges. It can be trimmed afterwards with
// FilterEdgesByWeight and RemoveOrphans, and combined with other
// aggregations through the set-style algebra (Union, Intersection,
// Difference, SymmetricDifference) keyed by ordered region-ID pairs.
package region
