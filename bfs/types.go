// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the root is not a vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when the graph fails to list a vertex's neighbors.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result is the BFS tree hung from Root.
//
// Order lists reached vertices level by level, so every parent precedes its
// children. Depth counts hops. Parent has no entry for Root. Size[v] counts v
// and everything below it, so Size[Root] == len(Order). Children keeps each
// vertex's children in visit order; leaves have no entry.
type Result struct {
	Root     string
	Order    []string
	Depth    map[string]int
	Parent   map[string]string
	Size     map[string]int
	Children map[string][]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// DepthSum returns Σ Depth over all reached vertices.
func (r *Result) DepthSum() int {
	var sum int
	for _, d := range r.Depth {
		sum += d
	}

	return sum
}
