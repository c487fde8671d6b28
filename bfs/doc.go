// Package bfs hangs a core.Graph from a root vertex by breadth-first search.
//
// The Result carries what tree algorithms need in one pass: visit Order
// (parents before children), hop Depth, Parent, subtree Size and Children.
// On a spanning tree the Parent map is the rooted tree itself, and reading
// Order backwards visits every child before its parent. Centrality measures
// on the MST are computed from these fields without any all-pairs search.
//
// Edge weights are ignored. core.Graph.NeighborIDs returns neighbors sorted
// by ID, so the result depends only on the graph and the root.
//
// A traversal can be bounded by a context:
//
//	res, err := bfs.BFS(tree, "Fp1", bfs.WithContext(ctx))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors or ctx.Err()
//	}
//	below := res.Size["Cz"]
package bfs
