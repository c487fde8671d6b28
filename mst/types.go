// SPDX-License-Identifier: MIT
// Package: eegmst/mst
//
// types.go — sentinel errors, Method and options, and the Compute entry point.

package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eegmst/core"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil, weighted graph.
var ErrInvalidGraph = errors.New("mst: MST requires a weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("mst: empty root vertex")

// ErrDisconnected indicates that no spanning tree covers all vertices.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrNotTree indicates an edge set is not a spanning tree of its vertices.
var ErrNotTree = errors.New("mst: not a spanning tree")

// Method names an MST algorithm.
type Method string

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim Method = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal Method = "kruskal"

// MSTOptions configures which MST algorithm to run and, for Prim, where to start.
//
// Fields:
//
//	Method — MethodKruskal (default) or MethodPrim.
//	Root   — Prim's start vertex; "" means the graph's first vertex. Unused by Kruskal.
type MSTOptions struct {
	Method Method
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m Method) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the selected algorithm and returns a validated Tree.
//
//	– MethodKruskal: Kruskal(g).
//	– MethodPrim:    Prim(g, root), root defaulting to g.Vertices()[0].
//	– otherwise:     ErrInvalidGraph.
func Compute(g *core.Graph, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrInvalidGraph
	}

	var (
		edges []core.Edge
		err   error
	)
	switch o.Method {
	case MethodKruskal:
		edges, _, err = Kruskal(g)
	case MethodPrim:
		root := o.Root
		if root == "" {
			if vs := g.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}
		edges, _, err = Prim(g, root)
	default:
		return nil, ErrInvalidGraph
	}
	if err != nil {
		return nil, err
	}

	tree, err := NewTree(g.Vertices(), edges)
	if err != nil {
		return nil, fmt.Errorf("mst: internal defect: %w", err)
	}

	return tree, nil
}
