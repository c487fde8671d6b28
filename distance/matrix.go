// SPDX-License-Identifier: MIT
// Package: eegmst/distance
//
// matrix.go — the Matrix value, its Kind, and validation of external distances.
//
// Contract:
//   • Storage is a gonum SymDense; the diagonal is implied by Kind.
//   • Accessors never expose the backing storage.

package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegmst/channels"
)

// Numeric policy.
const (
	// ValidationTolerance bounds asymmetry and diagonal drift on external input.
	ValidationTolerance = 1e-9

	// SnapTolerance is how close to ±1 a correlation must be to snap to ±1.
	SnapTolerance = 1e-12

	// MaxDistance is the distance of two perfectly anti-correlated channels.
	MaxDistance = 2.0
)

// Kind tags what a Matrix holds.
type Kind int

const (
	// KindCorrelation marks a Pearson correlation matrix (diagonal 1).
	KindCorrelation Kind = iota
	// KindDistance marks a correlation distance matrix (diagonal 0).
	KindDistance
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCorrelation:
		return "correlation"
	case KindDistance:
		return "distance"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Matrix is an immutable symmetric matrix indexed by a channel set on both axes.
type Matrix struct {
	kind Kind
	set  channels.Set
	sym  *mat.SymDense
}

// Kind returns what the matrix holds.
func (m *Matrix) Kind() Kind { return m.kind }

// Channels returns the index set.
func (m *Matrix) Channels() channels.Set { return m.set }

// Len returns the matrix order.
func (m *Matrix) Len() int { return m.set.Len() }

// At returns entry (i,j). It panics when an index is out of range, like mat.SymDense.
func (m *Matrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Between returns the entry for two labels.
func (m *Matrix) Between(a, b string) (float64, error) {
	i, ok := m.set.Index(a)
	if !ok {
		return 0, fmt.Errorf("%w: unknown channel %q", channels.ErrStructural, a)
	}
	j, ok := m.set.Index(b)
	if !ok {
		return 0, fmt.Errorf("%w: unknown channel %q", channels.ErrStructural, b)
	}

	return m.sym.At(i, j), nil
}

// Values returns a dense row-major copy.
func (m *Matrix) Values() [][]float64 {
	n := m.Len()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = m.sym.At(i, j)
		}
	}

	return out
}

// Symmetric exposes a copy as a gonum mat.Symmetric for callers doing further linear algebra.
func (m *Matrix) Symmetric() mat.Symmetric {
	n := m.Len()
	c := mat.NewSymDense(n, nil)
	c.CopySym(m.sym)

	return c
}

// NewDistanceMatrix validates values as a distance matrix over set.
//
// Validation order: shape → finiteness → diagonal → symmetry → range.
//
// Errors:
//   - channels.ErrStructural if the order differs from set.Len().
//   - ErrNonSquare, ErrNaNInf, ErrNonZeroDiagonal, ErrAsymmetry, ErrOutOfRange.
//
// Complexity: O(n²).
func NewDistanceMatrix(set channels.Set, values [][]float64) (*Matrix, error) {
	n := set.Len()
	if n == 0 {
		return nil, channels.ErrEmptySet
	}
	if err := set.MatchCount(len(values)); err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := values[i][j]; math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w at (%d,%d)", ErrNaNInf, i, j)
			}
		}
	}
	for i := 0; i < n; i++ {
		if math.Abs(values[i][i]) > ValidationTolerance {
			return nil, fmt.Errorf("%w: (%d,%d) = %g", ErrNonZeroDiagonal, i, i, values[i][i])
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(values[i][j]-values[j][i]) > ValidationTolerance {
				return nil, fmt.Errorf("%w: (%d,%d)=%g vs (%d,%d)=%g",
					ErrAsymmetry, i, j, values[i][j], j, i, values[j][i])
			}
			if v := values[i][j]; v < 0 || v > MaxDistance+ValidationTolerance {
				return nil, fmt.Errorf("%w: (%d,%d) = %g not in [0,%g]", ErrOutOfRange, i, j, v, MaxDistance)
			}
		}
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Average the two triangles so tolerated drift cancels symmetrically.
			sym.SetSym(i, j, math.Min((values[i][j]+values[j][i])/2, MaxDistance))
		}
	}

	return &Matrix{kind: KindDistance, set: set, sym: sym}, nil
}
