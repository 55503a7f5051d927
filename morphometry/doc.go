// Package morphometry derives per-reconstruction measurement sets from a
// morphology graph: tips, branch points, and annotated cable length.
//
// Region aggregation consumes these through the Analyzer interface, so a
// caller with its own measurement pipeline can plug it in directly.
// TreeAnalyzer is the default implementation, reading everything off a
// morph.Graph: tips are out-degree-0 nodes, branch points are
// out-degree>1 nodes, and annotated length groups incoming edge weight
// by the child node's annotation rolled up to a requested ontology depth.
//
// Summarize adds descriptive statistics (total cable, branch-segment
// length mean/stddev) over the simplified graph, for callers comparing
// reconstructions before aggregating them.
package morphometry
