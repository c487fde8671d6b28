// SPDX-License-Identifier: MIT
// Package: eegmst/mst
//
// prim.go — Prim from a root vertex with a min-heap under edgeLess.

package mst

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/eegmst/core"
)

// Prim computes the MST by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil or unweighted.
//   - ErrDisconnected       : |V| == 0, or the graph is not connected.
//   - ErrEmptyRoot          : root == "" on a graph with more than one vertex.
//   - core.ErrVertexNotFound: root is not a vertex.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited; push its incident edges.
//  3. Pop the least edge under edgeLess; skip it if both ends are visited,
//     otherwise take it, mark the new vertex and push its edges to unvisited vertices.
//  4. Fewer than |V|−1 edges at the end means the graph was disconnected.
//
// Because the heap uses the same strict total order as Kruskal, both return the
// same tree. The result is re-sorted by edgeLess so the slices compare equal.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n > 1 && root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	push := func(id string) error {
		nbrs, err := graph.Neighbors(id)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			if !visited[e.Other(id)] {
				heap.Push(pq, e)
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(*core.Edge)
		var next string
		switch {
		case !visited[e.To]:
			next = e.To
		case !visited[e.From]:
			next = e.From
		default:
			continue // both ends already in the tree
		}
		visited[next] = true
		mst = append(mst, canonical(e))
		totalWeight += e.Weight

		if err := push(next); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	sort.Slice(mst, func(i, j int) bool { return edgeLess(&mst[i], &mst[j]) })

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min-heap of *core.Edge ordered by edgeLess.
type edgePQ []*core.Edge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return edgeLess(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*core.Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
