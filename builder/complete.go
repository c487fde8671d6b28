// SPDX-License-Identifier: MIT
// Package: eegmst/builder
//
// complete.go — Complete(dm) constructor.
//
// Contract:
//   • dm != nil (else ErrNilMatrix); dm must be a distance matrix (else ErrWrongKind).
//   • Adds vertices in channel-set order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once, weight = d(i,j).
//   • Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j, over channel-set indices.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eegmst/core"
	"github.com/katalvlaran/eegmst/distance"
)

const methodComplete = "Complete"

var (
	// ErrNilMatrix indicates Complete was called without a matrix.
	ErrNilMatrix = errors.New("builder: distance matrix is nil")

	// ErrWrongKind indicates a correlation matrix was passed where distances were expected.
	ErrWrongKind = errors.New("builder: matrix does not hold distances")
)

// Complete returns the complete undirected graph over dm's channels.
func Complete(dm *distance.Matrix) (*core.Graph, error) {
	if dm == nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, ErrNilMatrix)
	}
	if dm.Kind() != distance.KindDistance {
		return nil, fmt.Errorf("%s: got %s: %w", methodComplete, dm.Kind(), ErrWrongKind)
	}

	set := dm.Channels()
	n := set.Len()
	g := core.NewGraph(core.WithWeighted())

	// Vertices first, so isolated-looking single-channel sets still appear.
	ids := set.Names()
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, id, err)
		}
	}

	for i := 0; i < n; i++ {
		u := ids[i]
		for j := i + 1; j < n; j++ {
			v := ids[j]
			w := dm.At(i, j)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", methodComplete, u, v, w, err)
			}
		}
	}

	return g, nil
}
