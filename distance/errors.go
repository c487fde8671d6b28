// SPDX-License-Identifier: MIT
// Package: eegmst/distance
//
// errors.go — sentinel errors and the degenerate-signal error type.
//
// Error policy:
//   • Validation failures return a sentinel wrapped with positional context.
//   • Callers branch with errors.Is / errors.As, never on message text.

package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateSignal indicates a zero-variance channel made a correlation undefined.
	ErrDegenerateSignal = errors.New("distance: degenerate signal")

	// ErrNilTable indicates a nil *signal.Table was passed in.
	ErrNilTable = errors.New("distance: table is nil")

	// ErrNilMatrix indicates a nil *Matrix was passed in.
	ErrNilMatrix = errors.New("distance: matrix is nil")

	// ErrWrongKind indicates a correlation matrix was expected but a distance matrix
	// was supplied, or vice versa.
	ErrWrongKind = errors.New("distance: wrong matrix kind")

	// ErrNonSquare indicates the rows of an input matrix differ in length from the row count.
	ErrNonSquare = errors.New("distance: matrix is not square")

	// ErrAsymmetry indicates m[i][j] and m[j][i] differ by more than ValidationTolerance.
	ErrAsymmetry = errors.New("distance: matrix is not symmetric")

	// ErrNonZeroDiagonal indicates a diagonal entry differs from 0 by more than ValidationTolerance.
	ErrNonZeroDiagonal = errors.New("distance: diagonal is not zero")

	// ErrNaNInf indicates a NaN or ±Inf entry.
	ErrNaNInf = errors.New("distance: NaN or Inf entry")

	// ErrNoMatrices indicates Average was called with nothing to average.
	ErrNoMatrices = errors.New("distance: no matrices")

	// ErrOutOfRange indicates a distance outside [0, MaxDistance].
	ErrOutOfRange = errors.New("distance: entry out of range")
)

// DegenerateSignalError reports the channel whose series has zero variance.
type DegenerateSignalError struct {
	Channel string // offending label
	Index   int    // position in the channel set
}

// Error implements error.
func (e *DegenerateSignalError) Error() string {
	return fmt.Sprintf("distance: degenerate signal: channel %q (index %d) has zero variance", e.Channel, e.Index)
}

// Is makes errors.Is(err, ErrDegenerateSignal) true for every DegenerateSignalError.
func (e *DegenerateSignalError) Is(target error) bool { return target == ErrDegenerateSignal }
