// SPDX-License-Identifier: MIT
// Package: eegmst/distance
//
// average.go — element-wise mean of distance matrices over one channel set.

package distance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegmst/channels"
)

// Average returns the element-wise mean of distance matrices over one channel
// set. Summation follows argument order.
//
// Errors:
//   - ErrNoMatrices for an empty argument list.
//   - ErrNilMatrix, ErrWrongKind for a nil or correlation operand.
//   - channels.ErrStructural if the channel sets differ.
//
// Complexity: O(k·n²) for k matrices.
func Average(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, ErrNoMatrices
	}
	for i, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("%w: operand %d", ErrNilMatrix, i)
		}
		if m.kind != KindDistance {
			return nil, fmt.Errorf("%w: operand %d is %s", ErrWrongKind, i, m.kind)
		}
		if !m.set.Equal(ms[0].set) {
			return nil, fmt.Errorf("%w: operand %d channels %v, want %v",
				channels.ErrStructural, i, m.set.Names(), ms[0].set.Names())
		}
	}

	sum := mat.NewSymDense(ms[0].Len(), nil)
	for _, m := range ms {
		sum.AddSym(sum, m.sym)
	}
	sum.ScaleSym(1/float64(len(ms)), sum)

	return &Matrix{kind: KindDistance, set: ms[0].set, sym: sum}, nil
}
