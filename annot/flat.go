// Flat: a minimal parent-chain ontology implementing Annotation.

package annot

// Flat is an in-memory Annotation backed by an explicit parent chain.
// It serves as the reference oracle for tests and for callers that do not
// wire a full atlas service.
type Flat struct {
	id     int
	depth  int
	parent *Flat
}

// NewFlat creates a region with the given id and depth and an optional
// parent (nil for an ontology root). Depth is expected to be strictly
// greater than the parent's depth; Flat does not validate the chain.
func NewFlat(id, depth int, parent *Flat) *Flat {
	return &Flat{id: id, depth: depth, parent: parent}
}

// ID returns the stable region identifier.
func (f *Flat) ID() int { return f.id }

// OntologyDepth returns the region's depth (0 = coarsest).
func (f *Flat) OntologyDepth() int { return f.depth }

// AncestorAtDepth walks the parent chain until a region at or above
// targetDepth is found. The chain root is returned when no ancestor is
// shallow enough.
func (f *Flat) AncestorAtDepth(targetDepth int) Annotation {
	cur := f
	for cur.depth > targetDepth && cur.parent != nil {
		cur = cur.parent
	}

	return cur
}
