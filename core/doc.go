// Package core provides the labeled, undirected, weighted graph every
// pipeline stage after the distance matrix works on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - undirected edges only, mirrored in the adjacency index;
//   - float64 weights (correlation distances), zero allowed;
//   - no self-loops and no parallel edges;
//   - vertices keep insertion order, so a graph built in channel-set order
//     enumerates its vertices in that order;
//   - collision-free atomic Edge.ID generation ("e1", "e2", …);
//   - separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj), so a built graph can be read from many goroutines.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)†
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d), sorted by neighbor ID
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                      // O(V), insertion order
//	Edges() []*Edge                          // O(E·log E), by numeric edge sequence
//	Degree(id string) (int, error)           // O(1)
//	VertexCount(), EdgeCount()
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph, or NaN/Inf weight
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
//
//	† amortized constant time: atomic ID generation + nested-map insertion.
package core
