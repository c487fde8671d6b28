// SPDX-License-Identifier: MIT
// Package: eegmst/mst
//
// kruskal.go — Kruskal over the sorted edge list.

package mst

import (
	"sort"

	"github.com/katalvlaran/eegmst/core"
)

// Kruskal computes the MST of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil or unweighted.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and the graph is not connected.
//
// Steps:
//  1. Validate the graph; |V|==1 is a trivial empty MST.
//  2. Collect all edges and sort them by edgeLess (weight, then endpoint labels).
//  3. Walk the sorted edges, keeping each one that joins two components.
//  4. Stop at |V|−1 edges; fewer means the graph was disconnected.
//
// Returned edges are canonical (From < To) and listed in acceptance order,
// which is edgeLess order.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	edges := graph.Edges() // loops are impossible in core.Graph
	sort.Slice(edges, func(i, j int) bool { return edgeLess(edges[i], edges[j]) })

	dsu := newDisjointSet(vertices)
	var (
		mst         = make([]core.Edge, 0, len(vertices)-1)
		totalWeight float64
	)
	for _, e := range edges {
		if !dsu.union(e.From, e.To) {
			continue // would close a cycle
		}
		mst = append(mst, canonical(e))
		totalWeight += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
