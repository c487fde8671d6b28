// SPDX-License-Identifier: MIT
// Package: eegmst/mst
//
// order.go — canonical edges and the strict edge order shared by both algorithms.

package mst

import "github.com/katalvlaran/eegmst/core"

// endpoints returns the edge's labels as (lo, hi), lo < hi lexicographically.
func endpoints(e *core.Edge) (string, string) {
	if e.From <= e.To {
		return e.From, e.To
	}

	return e.To, e.From
}

// canonical returns e as a bare endpoint pair with From < To. The graph-local
// ID is dropped so two enumerations of the same tree compare equal.
func canonical(e *core.Edge) core.Edge {
	lo, hi := endpoints(e)

	return core.Edge{From: lo, To: hi, Weight: e.Weight}
}

// edgeLess is the strict total order used by every algorithm in this package:
// weight ascending, then the endpoint pair (lo, hi) lexicographically.
func edgeLess(a, b *core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	alo, ahi := endpoints(a)
	blo, bhi := endpoints(b)
	if alo != blo {
		return alo < blo
	}

	return ahi < bhi
}
