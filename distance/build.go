// SPDX-License-Identifier: MIT
// Package: eegmst/distance
//
// build.go — correlation and correlation-to-distance transform.
//
// Determinism:
//   • Pairs are visited in (i,j), i<j order; each entry is computed once
//     and stored in the upper triangle.
//
// Complexity:
//   • Correlation: O(n² · m) for n channels and m samples.
//   • ToDistance:  O(n²).

package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/eegmst/signal"
)

// Build computes the correlation matrix of t and its distance transform.
func Build(t *signal.Table) (corr, dist *Matrix, err error) {
	corr, err = Correlation(t)
	if err != nil {
		return nil, nil, err
	}
	dist, err = ToDistance(corr)
	if err != nil {
		return nil, nil, err
	}

	return corr, dist, nil
}

// Correlation computes the Pearson correlation of every channel pair.
//
// Steps:
//  1. Reject any channel whose series is constant (*DegenerateSignalError).
//  2. For i<j compute stat.Correlation(x_i, x_j, nil).
//  3. A NaN result is also reported as degenerate, naming the first channel of the pair.
//  4. Clamp to [−1,1]; snap within SnapTolerance of ±1.
func Correlation(t *signal.Table) (*Matrix, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	set := t.Channels()
	n := set.Len()

	for i := 0; i < n; i++ {
		x := t.Series(i)
		if floats.Min(x) == floats.Max(x) {
			return nil, &DegenerateSignalError{Channel: set.Name(i), Index: i}
		}
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		sym.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			r := stat.Correlation(t.Series(i), t.Series(j), nil)
			if math.IsNaN(r) {
				return nil, &DegenerateSignalError{Channel: set.Name(i), Index: i}
			}
			sym.SetSym(i, j, clampCorrelation(r))
		}
	}

	return &Matrix{kind: KindCorrelation, set: set, sym: sym}, nil
}

// ToDistance maps a correlation matrix to d = sqrt(2·(1 − r)).
func ToDistance(c *Matrix) (*Matrix, error) {
	if c == nil {
		return nil, ErrNilMatrix
	}
	if c.kind != KindCorrelation {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrWrongKind, c.kind, KindCorrelation)
	}
	n := c.Len()
	sym := mat.NewSymDense(n, nil) // diagonal stays 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sym.SetSym(i, j, Transform(c.sym.At(i, j)))
		}
	}

	return &Matrix{kind: KindDistance, set: c.set, sym: sym}, nil
}

// Transform maps one correlation coefficient to its distance.
// Inputs outside [−1,1] are clamped first, so the result is always in [0,2].
func Transform(r float64) float64 {
	r = clampCorrelation(r)

	return math.Sqrt(2 * (1 - r))
}

func clampCorrelation(r float64) float64 {
	switch {
	case r >= 1-SnapTolerance:
		return 1
	case r <= -1+SnapTolerance:
		return -1
	default:
		return r
	}
}
