// SPDX-License-Identifier: MIT
// Package: eegmst/mst
//
// tree.go — the SpanningTree value and its structural validation.
//
// Contract:
//   • A Tree over n vertices holds exactly n−1 edges, is connected and acyclic.
//   • Edges are canonical (From < To) and listed in edgeLess order.
//   • Weight() is summed in that order, so it is bit-for-bit reproducible.

package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/eegmst/core"
)

// Tree is an immutable spanning tree.
type Tree struct {
	vertices []string
	edges    []core.Edge
	weight   float64
}

// NewTree validates edges as a spanning tree of vertices and freezes both.
// Edges are canonicalised and re-sorted, so any enumeration of the same tree
// yields an identical Tree.
//
// Errors: ErrNotTree (wrapped with the failing condition).
func NewTree(vertices []string, edges []core.Edge) (*Tree, error) {
	t := &Tree{
		vertices: append([]string(nil), vertices...),
		edges:    make([]core.Edge, len(edges)),
	}
	for i := range edges {
		t.edges[i] = canonical(&edges[i])
	}
	sort.Slice(t.edges, func(i, j int) bool { return edgeLess(&t.edges[i], &t.edges[j]) })
	for _, e := range t.edges {
		t.weight += e.Weight
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks the spanning-tree invariants:
//  1. at least one vertex, no duplicate vertex IDs;
//  2. exactly |V|−1 edges;
//  3. every endpoint is a vertex, no self-loops, finite non-negative weight;
//  4. no edge closes a cycle (with |V|−1 edges this also proves connectivity).
//
// Complexity: O(V + E·α(V)).
func (t *Tree) Validate() error {
	n := len(t.vertices)
	if n == 0 {
		return fmt.Errorf("%w: no vertices", ErrNotTree)
	}
	known := make(map[string]struct{}, n)
	for _, v := range t.vertices {
		if _, dup := known[v]; dup {
			return fmt.Errorf("%w: duplicate vertex %q", ErrNotTree, v)
		}
		known[v] = struct{}{}
	}
	if len(t.edges) != n-1 {
		return fmt.Errorf("%w: %d edges for %d vertices", ErrNotTree, len(t.edges), n)
	}

	dsu := newDisjointSet(t.vertices)
	for _, e := range t.edges {
		if _, ok := known[e.From]; !ok {
			return fmt.Errorf("%w: unknown endpoint %q", ErrNotTree, e.From)
		}
		if _, ok := known[e.To]; !ok {
			return fmt.Errorf("%w: unknown endpoint %q", ErrNotTree, e.To)
		}
		if e.From == e.To {
			return fmt.Errorf("%w: self-loop on %q", ErrNotTree, e.From)
		}
		if !(e.Weight >= 0) { // also rejects NaN
			return fmt.Errorf("%w: edge %s–%s has weight %g", ErrNotTree, e.From, e.To, e.Weight)
		}
		if !dsu.union(e.From, e.To) {
			return fmt.Errorf("%w: edge %s–%s closes a cycle", ErrNotTree, e.From, e.To)
		}
	}

	return nil
}

// Vertices returns the vertex IDs in the order of the source graph.
func (t *Tree) Vertices() []string { return append([]string(nil), t.vertices...) }

// Edges returns a copy of the tree edges in canonical order.
func (t *Tree) Edges() []core.Edge { return append([]core.Edge(nil), t.edges...) }

// Len returns the number of vertices.
func (t *Tree) Len() int { return len(t.vertices) }

// Weight returns the total edge weight.
func (t *Tree) Weight() float64 { return t.weight }

// Graph materializes the tree as a weighted core.Graph, vertices in tree order.
func (t *Tree) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for _, v := range t.vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range t.edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("mst: edge %s–%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}
