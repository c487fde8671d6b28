// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order (numeric edge sequence).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge between the same endpoints.
//  4. Generate eid atomically, store the edge, link adjacency both ways.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacencyList[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	seq, eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, seq: seq}
	g.adjacencyList[from][to] = eid
	g.adjacencyList[to][from] = eid

	return eid, nil
}

// Edges returns all edges sorted by creation sequence.
// The returned pointers must be treated as read-only.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID reserves the next sequence number and renders it as "e<n>".
// Safe for concurrent callers; atomic.AddUint64 fetches the number.
func nextEdgeID(g *Graph) (uint64, string) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return n, string(buf)
}
