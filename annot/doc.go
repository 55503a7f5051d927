// Package annot defines the anatomical annotation contract consumed by
// region aggregation, together with a deduplicating pool and a small
// in-memory reference ontology.
//
// An Annotation is an opaque descriptor of a brain region drawn from a
// hierarchical ontology. The ontology itself is an external collaborator:
// the only operations the core needs are a stable integer ID, an ontology
// depth (0 = coarsest), and AncestorAtDepth, which rolls a fine-grained
// region up to a coarser caller-chosen depth.
//
// The oracle is an injected dependency, not an ambient singleton, so the
// aggregation layer is testable with fake ontologies. Flat provides such
// a fake: a parent-chain ontology good enough for tests and for callers
// without a full atlas service.
//
// Equality of annotations is by ID. Pool interns annotations by ID so a
// region encountered many times during one aggregation maps to a single
// vertex object.
package annot
