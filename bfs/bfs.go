// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/eegmst/core"
)

// BFS roots the component of g containing root and returns its BFS tree.
// Edge weights are ignored; depth counts hops.
//
// Steps:
//  1. Seed Order with root; Order doubles as the FIFO queue, read by a head index.
//  2. For each dequeued vertex, append its unseen neighbors in ID order,
//     recording depth, parent and child lists.
//  3. Walk Order backwards, adding each subtree size into its parent.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, or the context's
// error when it is done before the walk ends.
//
// Complexity: O(V + E·log d), d = max degree (neighbor lists are sorted). Memory: O(V).
func BFS(g *core.Graph, root string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(root) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	r := &Result{
		Root:     root,
		Order:    make([]string, 1, n),
		Depth:    make(map[string]int, n),
		Parent:   make(map[string]string, n),
		Size:     make(map[string]int, n),
		Children: make(map[string][]string),
	}
	r.Order[0] = root
	r.Depth[root] = 0

	for head := 0; head < len(r.Order); head++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		u := r.Order[head]
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNeighbors, u, err)
		}
		for _, v := range nbrs {
			if r.Reached(v) {
				continue
			}
			r.Depth[v] = r.Depth[u] + 1
			r.Parent[v] = u
			r.Children[u] = append(r.Children[u], v)
			r.Order = append(r.Order, v)
		}
	}

	for i := len(r.Order) - 1; i >= 0; i-- {
		v := r.Order[i]
		r.Size[v]++
		if p, ok := r.Parent[v]; ok {
			r.Size[p] += r.Size[v]
		}
	}

	return r, nil
}
