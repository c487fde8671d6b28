// SPDX-License-Identifier: MIT

package centrality

import (
	"errors"
	"fmt"
)

// Sentinel errors for centrality computation.
var (
	// ErrNilTree is returned when a nil *mst.Tree is supplied.
	ErrNilTree = errors.New("centrality: tree is nil")

	// ErrOrderMismatch indicates the requested row order is not a permutation
	// of the tree's vertices.
	ErrOrderMismatch = errors.New("centrality: row order does not match tree vertices")

	// ErrOptionViolation indicates an invalid PageRank option.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")

	// ErrNotConverged marks a PageRank run that hit its iteration cap.
	ErrNotConverged = errors.New("centrality: pagerank did not converge")
)

// ConvergenceWarning describes a PageRank run that stopped at MaxIterations
// before the L1 change fell under the threshold. Scores are still usable.
type ConvergenceWarning struct {
	Iterations int
	Delta      float64 // final L1 change between iterates
	Threshold  float64 // n·tolerance
}

// Error implements error.
func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("%v after %d iterations (delta %.3g, threshold %.3g)",
		ErrNotConverged, w.Iterations, w.Delta, w.Threshold)
}

// Unwrap lets errors.Is(w, ErrNotConverged) succeed.
func (w *ConvergenceWarning) Unwrap() error { return ErrNotConverged }
