// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eegmst/mst"
)

// PageRank defaults, matching the reference parameters for MST centrality.
const (
	DefaultAlpha         = 0.85
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

// PageRankOptions configures the power iteration.
type PageRankOptions struct {
	Alpha         float64 // damping factor, 0 < Alpha < 1
	Tolerance     float64 // per-vertex tolerance; the stop threshold is n·Tolerance
	MaxIterations int     // ≥ 1

	err error
}

// PageRankOption mutates PageRankOptions.
type PageRankOption func(*PageRankOptions)

// DefaultPageRankOptions returns α=0.85, tol=1e-6, 100 iterations.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		Alpha:         DefaultAlpha,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithAlpha sets the damping factor; values outside (0,1) are rejected.
func WithAlpha(a float64) PageRankOption {
	return func(o *PageRankOptions) {
		if !(a > 0 && a < 1) {
			o.err = fmt.Errorf("%w: alpha must be in (0,1), got %g", ErrOptionViolation, a)
			return
		}
		o.Alpha = a
	}
}

// WithTolerance sets the per-vertex tolerance; it must be positive and finite.
func WithTolerance(tol float64) PageRankOption {
	return func(o *PageRankOptions) {
		if !(tol > 0) || math.IsInf(tol, 1) {
			o.err = fmt.Errorf("%w: tolerance must be positive, got %g", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations caps the number of power-iteration rounds.
func WithMaxIterations(n int) PageRankOption {
	return func(o *PageRankOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// NewPageRankOptions applies opts over the defaults and reports the first
// invalid option.
func NewPageRankOptions(opts ...PageRankOption) (PageRankOptions, error) {
	o := DefaultPageRankOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return PageRankOptions{}, o.err
	}

	return o, nil
}

// PageRankResult holds the scores and how the iteration ended.
type PageRankResult struct {
	Scores     map[string]float64
	Converged  bool
	Iterations int
	Delta      float64 // L1 change of the last round
	Threshold  float64 // n·tolerance
}

// Warning returns a *ConvergenceWarning when the run did not converge, else nil.
func (r *PageRankResult) Warning() error {
	if r.Converged {
		return nil
	}

	return &ConvergenceWarning{Iterations: r.Iterations, Delta: r.Delta, Threshold: r.Threshold}
}

type arc struct {
	to int
	w  float64
}

// PageRank runs weighted PageRank over t.
//
// Each tree edge {u,v} of weight w becomes arcs u→v and v→u of weight w.
// Row u is normalized by its out-weight S(u); vertices with S(u) = 0 are
// dangling.
//
// Steps (per round, x the previous iterate):
//  1. x' = α·xQ
//  2. x' += α·Σ x[dangling] / n
//  3. x' += (1−α) / n
//  4. stop when ‖x' − x‖₁ < n·tol
//
// Errors: ErrNilTree, ErrOptionViolation. Non-convergence is reported through
// the result, never as an error.
func PageRank(t *mst.Tree, opts ...PageRankOption) (*PageRankResult, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	o, err := NewPageRankOptions(opts...)
	if err != nil {
		return nil, err
	}

	ids := t.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	adj := make([][]arc, n)
	out := make([]float64, n)
	for _, e := range t.Edges() {
		u, v := index[e.From], index[e.To]
		adj[u] = append(adj[u], arc{to: v, w: e.Weight})
		adj[v] = append(adj[v], arc{to: u, w: e.Weight})
		out[u] += e.Weight
		out[v] += e.Weight
	}

	inv := 1 / float64(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = inv
	}
	next := make([]float64, n)
	threshold := float64(n) * o.Tolerance

	res := &PageRankResult{Threshold: threshold}
	for iter := 1; iter <= o.MaxIterations; iter++ {
		var dangling float64
		for i := range next {
			next[i] = 0
		}
		for u := 0; u < n; u++ {
			if out[u] == 0 {
				dangling += x[u]
				continue
			}
			share := o.Alpha * x[u] / out[u]
			for _, a := range adj[u] {
				next[a.to] += share * a.w
			}
		}
		base := o.Alpha*dangling*inv + (1-o.Alpha)*inv
		for i := range next {
			next[i] += base
		}

		res.Delta = floats.Distance(next, x, 1)
		res.Iterations = iter
		x, next = next, x
		if res.Delta < threshold {
			res.Converged = true
			break
		}
	}

	res.Scores = make(map[string]float64, n)
	for i, id := range ids {
		res.Scores[id] = x[i]
	}

	return res, nil
}
