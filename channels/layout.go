// SPDX-License-Identifier: MIT
// Package: eegmst/channels
//
// layout.go — immutable label → position table for renderers.
//
// Contract:
//   • A Layout covers every label of its Set, nothing more.
//   • Coordinates must be finite.
//   • Only presentation code reads a Layout.

package channels

import (
	"errors"
	"fmt"
	"math"
)

// ErrLayoutMismatch indicates a layout does not cover its Set exactly.
var ErrLayoutMismatch = errors.New("channels: layout does not match channel set")

// Point is a 2D position on the rendering canvas.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Layout is a read-only mapping from channel label to Point.
type Layout struct {
	set    Set
	coords []Point // coords[i] belongs to set.Name(i)
}

// NewLayout validates positions against set and freezes them.
//
// Errors:
//   - ErrLayoutMismatch if a label of set has no position, if positions name an
//     unknown label, or if a coordinate is NaN/Inf.
func NewLayout(set Set, positions map[string]Point) (Layout, error) {
	if set.Len() == 0 {
		return Layout{}, ErrEmptySet
	}
	coords := make([]Point, set.Len())
	for i, name := range set.names {
		p, ok := positions[name]
		if !ok {
			return Layout{}, fmt.Errorf("%w: no position for %q", ErrLayoutMismatch, name)
		}
		if !finite(p.X) || !finite(p.Y) {
			return Layout{}, fmt.Errorf("%w: non-finite position for %q", ErrLayoutMismatch, name)
		}
		coords[i] = p
	}
	for name := range positions {
		if !set.Contains(name) {
			return Layout{}, fmt.Errorf("%w: unknown label %q", ErrLayoutMismatch, name)
		}
	}

	return Layout{set: set, coords: coords}, nil
}

// Set returns the channel set the layout covers.
func (l Layout) Set() Set { return l.set }

// Position returns the point for name and whether the label is known.
func (l Layout) Position(name string) (Point, bool) {
	i, ok := l.set.Index(name)
	if !ok {
		return Point{}, false
	}

	return l.coords[i], true
}

// Positions returns a copy of the table keyed by label.
func (l Layout) Positions() map[string]Point {
	out := make(map[string]Point, len(l.coords))
	for i, p := range l.coords {
		out[l.set.names[i]] = p
	}

	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
