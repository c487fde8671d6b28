// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors and NeighborIDs are sorted by neighbor ID ascending.

package core

import "sort"

// Neighbors returns the edges incident to id, sorted by the neighbor's ID.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[id]
	out := make([]*Edge, 0, len(bucket))
	for _, eid := range bucket {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// NeighborIDs returns the unique neighbor IDs of id in ascending order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.Other(id)
	}

	return ids, nil
}
