// Package distance turns a signal.Table into the symmetric channel×channel
// matrices the graph stage consumes.
//
// Pipeline:
//
//	Correlation(t)  Pearson r for every unordered pair, diagonal 1.
//	ToDistance(c)   d(i,j) = sqrt(2·(1 − r(i,j))), diagonal 0.
//	Build(t)        both of the above in one call.
//
// The transform is monotone: r = 1 → d = 0, r = 0 → d = √2, r = −1 → d = 2.
// Correlations are clamped to [−1,1] and values within SnapTolerance of ±1
// snap to ±1, so identical series give a distance of exactly 0 instead of a
// rounding residue.
//
// A channel with zero variance has no defined correlation. Correlation fails
// with *DegenerateSignalError naming that channel (errors.Is ErrDegenerateSignal)
// rather than emitting NaN or a default distance.
//
// NewDistanceMatrix accepts an externally computed matrix and validates it:
// square, matching the channel set, finite, symmetric and zero on the
// diagonal within ValidationTolerance, every entry in [0, MaxDistance].
//
// Storage is gonum's mat.SymDense, so the upper triangle is the single source
// of truth once a Matrix exists.
package distance
