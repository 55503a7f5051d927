// Package arbor analyzes neuronal reconstructions as rooted, acyclic,
// directed weighted graphs and aggregates collections of them into
// coarser annotation graphs keyed by anatomical region.
//
// The module is organized into five subpackages:
//
//	core/        generic directed weighted graph over int64 vertex ids
//	annot/       anatomical Annotation contract, ontology rollup, pool
//	morph/       MorphologyGraph: build from a flat node list, simplify,
//	             re-root, LCA shortest paths, diameter, components,
//	             depth-first renumbering, tree round-trip
//	morphometry/ tips, branch points, annotated cable length, summaries
//	region/      AnnotationGraph aggregation over many reconstructions
//	             under selectable metrics, plus set-style graph algebra
//
// Everything is in-memory and synchronous. A graph instance is exclusively
// owned by its caller: the library performs no internal locking, and a
// single mutable graph must not be shared across goroutines. Callers that
// want parallel aggregation should partition reconstructions, aggregate
// each subset into its own region graph, and merge the results with
// region.Union.
//
// Quick ASCII example of a morphology and its simplification:
//
//	    1               1
//	    │               │
//	    2               2
//	   ╱ ╲     ⇒       ╱ ╲
//	  3   5           4   6
//	  │   │
//	  4   6
//
// Nodes 3 and 5 are degree-2 chain nodes; simplification collapses them
// into single edges whose weights equal the accumulated path lengths.
package arbor
