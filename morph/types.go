// Package morph type and error declarations: Node, Path, and the
// sentinel errors of the morphology layer.

package morph

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/arbor/annot"
)

// NoParent is the sentinel parent ID marking a node without a parent.
const NoParent int64 = -1

// Sentinel errors for morphology graph operations.
var (
	// ErrEmptyNodes indicates a graph was built from an empty node list.
	ErrEmptyNodes = errors.New("morph: empty node list")

	// ErrDuplicateID indicates two input nodes share the same ID.
	ErrDuplicateID = errors.New("morph: duplicate node id")

	// ErrDanglingParent indicates a node references a parent ID absent
	// from the input (malformed reconstruction).
	ErrDanglingParent = errors.New("morph: dangling parent reference")

	// ErrNoRoot indicates a root-dependent operation found no vertex with
	// in-degree zero.
	ErrNoRoot = errors.New("morph: graph has no root")

	// ErrMultipleRoots indicates a root-dependent operation found more
	// than one vertex with in-degree zero.
	ErrMultipleRoots = errors.New("morph: graph has multiple roots")

	// ErrDisconnected indicates two ancestor chains never meet, or a
	// traversal could not reach every vertex: the graph is either split
	// into components or violates the single-parent tree invariant.
	ErrDisconnected = errors.New("morph: disconnected or inconsistent topology")

	// ErrNodeNotFound indicates an operation referenced a node ID absent
	// from the graph.
	ErrNodeNotFound = errors.New("morph: node not found")
)

// Node is a single reconstruction point.
//
// ID is unique within one reconstruction but not across reconstructions.
// Parent and Previous are relations by ID, not pointers; both are
// rewritten in place by SetRoot and AssignIDsDepthFirst.
type Node struct {
	// ID identifies the node within its reconstruction.
	ID int64

	// Position is the node's location in 3-space.
	Position r3.Vec

	// Radius is the local process radius. Opaque to the graph layer.
	Radius float64

	// Parent is the ID of the parent node, or NoParent for the root.
	Parent int64

	// Previous is the ID of the upstream node along the current rooting,
	// or NoParent for the root. Maintained by the graph.
	Previous int64

	// Annotation is the anatomical region associated with the node.
	// May be nil; unannotated nodes are skipped during aggregation.
	Annotation annot.Annotation
}

// Dist returns the Euclidean distance between two node positions.
func Dist(a, b *Node) float64 {
	return r3.Norm(r3.Sub(a.Position, b.Position))
}

// Path is an ordered node sequence with its total traversed edge weight.
type Path struct {
	// Nodes lists the path endpoints and every node between them.
	Nodes []*Node

	// Weight is the sum of the weights of the traversed edges.
	Weight float64
}

// IDs returns the node IDs along the path, in order.
func (p *Path) IDs() []int64 {
	out := make([]int64, len(p.Nodes))
	for i, n := range p.Nodes {
		out[i] = n.ID
	}

	return out
}
