// Annotation contract and the ID-keyed interning pool.

package annot

// Annotation describes an anatomical region in a hierarchical ontology.
//
// Implementations must guarantee:
//   - ID() is globally stable and identifies the region (equality is by ID).
//   - OntologyDepth() is non-negative; 0 is the ontology root (coarsest).
//   - AncestorAtDepth(d) returns the annotation itself when
//     OntologyDepth() <= d, else the unique ancestor at depth d.
type Annotation interface {
	// ID returns the stable integer identifier of the region.
	ID() int

	// OntologyDepth returns the region's depth in the ontology tree.
	OntologyDepth() int

	// AncestorAtDepth rolls the region up to targetDepth.
	AncestorAtDepth(targetDepth int) Annotation
}

// Pool interns annotations by ID so that one aggregation pass never holds
// two distinct vertex objects for the same region.
//
// The zero Pool is not usable; create one with NewPool.
type Pool struct {
	byID map[int]Annotation
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{byID: make(map[int]Annotation)}
}

// Intern returns the pooled annotation with a.ID(), inserting a if the ID
// is new. Returns nil for a nil input.
func (p *Pool) Intern(a Annotation) Annotation {
	if a == nil {
		return nil
	}
	if got, ok := p.byID[a.ID()]; ok {
		return got
	}
	p.byID[a.ID()] = a

	return a
}

// RollUp maps a through AncestorAtDepth(maxDepth) and interns the result.
// Returns nil for a nil input (unannotated points are skip conditions,
// not errors).
func (p *Pool) RollUp(a Annotation, maxDepth int) Annotation {
	if a == nil {
		return nil
	}

	return p.Intern(a.AncestorAtDepth(maxDepth))
}

// Get returns the pooled annotation for id, or nil if absent.
func (p *Pool) Get(id int) Annotation { return p.byID[id] }

// Len returns the number of distinct interned annotations.
func (p *Pool) Len() int { return len(p.byID) }
