// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/eegmst/bfs"
	"github.com/katalvlaran/eegmst/mst"
)

// root hangs t from its first vertex.
//
// Steps:
//  1. Materialize t as a core.Graph.
//  2. BFS from the first vertex under ctx; Order is parents-before-children.
//  3. Reject a walk that misses any vertex.
func root(ctx context.Context, t *mst.Tree) (*bfs.Result, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	g, err := t.Graph()
	if err != nil {
		return nil, fmt.Errorf("centrality: %w", err)
	}
	ids := t.Vertices()
	res, err := bfs.BFS(g, ids[0], bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("centrality: traverse from %q: %w", ids[0], err)
	}
	if len(res.Order) != len(ids) {
		return nil, fmt.Errorf("centrality: %w: reached %d of %d vertices", mst.ErrNotTree, len(res.Order), len(ids))
	}

	return res, nil
}

// Degree returns deg(v)/(n−1) for every vertex; a single vertex scores 1.
func Degree(t *mst.Tree) (map[string]float64, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	g, err := t.Graph()
	if err != nil {
		return nil, fmt.Errorf("centrality: %w", err)
	}
	ids := g.Vertices()
	n := len(ids)
	out := make(map[string]float64, n)
	if n == 1 {
		out[ids[0]] = 1

		return out, nil
	}

	scale := 1 / float64(n-1)
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("centrality: degree of %q: %w", id, err)
		}
		out[id] = float64(d) * scale
	}

	return out, nil
}

// Betweenness returns normalized betweenness for every vertex.
//
// Removing v leaves components of sizes c₁…c_k summing to n−1, namely its child
// subtrees and the n−size(v) vertices above it. The pairs v separates number
// ((n−1)² − Σcᵢ²)/2, divided by C(n−1, 2) for normalization.
//
// Complexity: O(n).
func Betweenness(ctx context.Context, t *mst.Tree) (map[string]float64, error) {
	r, err := root(ctx, t)
	if err != nil {
		return nil, err
	}
	n := len(r.Order)
	out := make(map[string]float64, n)
	if n <= 2 {
		for _, id := range r.Order {
			out[id] = 0
		}

		return out, nil
	}

	m := float64(n - 1)
	norm := m * (m - 1) / 2
	for _, id := range r.Order {
		var sumSq float64
		for _, c := range r.Children[id] {
			s := float64(r.Size[c])
			sumSq += s * s
		}
		if up := float64(n - r.Size[id]); up > 0 {
			sumSq += up * up
		}
		out[id] = (m*m - sumSq) / 2 / norm
	}

	return out, nil
}

// Closeness returns (n−1)/Σ hop distances for every vertex; zero when n == 1.
//
// Steps:
//  1. S(root) = Σ depth over the BFS from the root.
//  2. Walk Order top-down: S(c) = S(parent) + n − 2·size(c).
//
// Complexity: O(n).
func Closeness(ctx context.Context, t *mst.Tree) (map[string]float64, error) {
	r, err := root(ctx, t)
	if err != nil {
		return nil, err
	}
	n := len(r.Order)
	out := make(map[string]float64, n)
	if n == 1 {
		out[r.Root] = 0

		return out, nil
	}

	sum := make(map[string]int, n)
	sum[r.Root] = r.DepthSum()
	for _, id := range r.Order[1:] {
		sum[id] = sum[r.Parent[id]] + n - 2*r.Size[id]
	}
	for _, id := range r.Order {
		out[id] = float64(n-1) / float64(sum[id])
	}

	return out, nil
}
