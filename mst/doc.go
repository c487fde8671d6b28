// Package mst reduces a complete channel graph to its minimum spanning tree.
//
// What & Why
//
//   - Given an undirected, connected, weighted *core.Graph G = (V, E), an MST is
//     a subset T ⊆ E that connects every vertex with |V|−1 edges and minimal
//     total weight. On a correlation-distance graph it keeps, for every
//     channel, its strongest links to the rest of the montage.
//
// Determinism
//
//	Correlation distances tie often (identical or near-identical channels).
//	Every comparison in this package uses one strict total order on edges:
//
//	    (weight, min(label), max(label))    ascending, lexicographic on labels
//
//	so the MST is unique and independent of edge insertion order. Kruskal and
//	Prim therefore return the same tree, and Tree.Edges() lists it in that
//	order with each edge canonicalised to From < To.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Sort all edges by the total order, then merge components with a
//     disjoint-set (path compression, union by rank). O(E log E).
//
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Grow from root with a min-heap keyed by the same order. O(E log V).
//
//   - Compute(g, opts...) (*Tree, error)
//     Dispatch by MSTOptions.Method (Kruskal by default), wrap the result in a
//     Tree and validate it. A tree that is not connected and acyclic with
//     |V|−1 edges is an internal defect and reported as ErrNotTree.
//
// Error Conditions
//
//	ErrInvalidGraph         nil or unweighted graph, unknown method.
//	ErrEmptyRoot            Prim without a root.
//	core.ErrVertexNotFound  Prim root not in the graph.
//	ErrDisconnected         |V| == 0, or no spanning tree exists.
//	ErrNotTree              Tree validation failed.
package mst
