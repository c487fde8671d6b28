// Package channels defines the fixed, ordered set of sensor labels shared by
// every pipeline stage, and the separate 2D layout table used only when a
// result is rendered.
//
// What & Why
//
//   - Set is an immutable, ordered list of unique labels. Its order is the
//     index order of every matrix and the row order of every centrality table.
//   - Layout maps a label to a head-surface position. No algorithmic stage
//     reads it; it travels with results to the presentation layer only.
//
// Standard1020 returns the 19-channel 10–20 montage the recordings use:
//
//	Fp1 Fp2 F3 F4 F7 F8 T3 T4 C3 C4 T5 T6 P3 P4 O1 O2 Fz Cz Pz
//
// Errors:
//
//	ErrEmptySet       - a Set needs at least one label.
//	ErrEmptyLabel     - a label is the empty string.
//	ErrDuplicateLabel - the same label appears twice.
//	ErrStructural     - input labels or counts do not match the Set.
package channels
