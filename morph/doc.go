// Package morph models a single neuronal reconstruction as a rooted,
// acyclic, directed weighted graph over reconstruction nodes.
//
// A Graph is built from a flat parent-pointer node list: every node names
// its parent by ID, the unique node with Parent == NoParent is the root,
// and each parent→child edge optionally carries the Euclidean distance
// between the two node positions as its weight.
//
// Supported operations:
//
//   - Simplified: collapse degree-2 chains into single weighted edges
//     between the relevant nodes (root, branch points, leaves), preserving
//     cumulative path weight exactly.
//   - ShortestPath: O(depth) ancestor-chain LCA path between any two
//     nodes, exploiting the tree invariant instead of generic search.
//   - FarthestFrom / LongestPath: two-pass farthest-node traversal giving
//     the weighted diameter path, with directed (root to farthest leaf)
//     or undirected (arbitrary endpoint pair) semantics.
//   - SetRoot: re-root the tree in place by flipping edge directions along
//     an iterative depth-first walk of the undirected view.
//   - AssignIDsDepthFirst: depth-first renumbering that rewrites node
//     IDs and parent/previous relations in place.
//   - Components: connected-component extraction into fresh graphs.
//   - Tree: materialize the parent-pointer node list back out of the
//     graph; feeding it to New round-trips the reconstruction.
//
// Construction tolerates zero or multiple parentless nodes: the defect
// surfaces later as ErrNoRoot or ErrMultipleRoots on the first operation
// that needs a root. A dangling parent reference is rejected immediately
// with ErrDanglingParent.
//
// A Graph is exclusively owned by its caller; mutating operations
// (SetRoot, AssignIDsDepthFirst) must not race with reads.
package morph
