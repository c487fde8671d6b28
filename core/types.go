// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph, Vertex and Edge types, sentinel errors, NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph, or a NaN/Inf weight.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the distance carried by the edge.
	Weight float64

	seq uint64 // numeric part of ID, for ordering
}

// Other returns the endpoint of e that is not id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory graph data structure.
//
// muVert protects vertices and order; muEdgeAdj protects edges and adjacencyList.
// Lock order is always muVert → muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	weighted bool // allow non-zero weights

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // vertex IDs in insertion order
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[u][v] = edge ID, mirrored for both endpoints.
	adjacencyList map[string]map[string]string
}

// NewGraph creates an empty undirected Graph. By default it is unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}
