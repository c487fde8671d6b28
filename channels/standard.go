// SPDX-License-Identifier: MIT
// Package: eegmst/channels
//
// standard.go — the 19-electrode 10–20 montage and its scalp layout.

package channels

// standard1020 lists the 19 scalp electrodes of the 10–20 system in recording order.
var standard1020 = []string{
	"Fp1", "Fp2", "F3", "F4", "F7", "F8", "T3", "T4",
	"C3", "C4", "T5", "T6", "P3", "P4", "O1", "O2",
	"Fz", "Cz", "Pz",
}

// standard1020Layout places each electrode on a unit head circle, nose up.
var standard1020Layout = map[string]Point{
	"Fp1": {-0.300, 0.954}, "Fp2": {0.300, 0.954},
	"F3": {-0.400, 0.510}, "F4": {0.400, 0.510},
	"F7": {-0.800, 0.600}, "F8": {0.800, 0.600},
	"T3": {-1.000, 0.000}, "T4": {1.000, 0.000},
	"C3": {-0.500, 0.000}, "C4": {0.500, 0.000},
	"T5": {-0.800, -0.600}, "T6": {0.800, -0.600},
	"P3": {-0.400, -0.510}, "P4": {0.400, -0.510},
	"O1": {-0.300, -0.954}, "O2": {0.300, -0.954},
	"Fz": {0.000, 0.500}, "Cz": {0.000, 0.000},
	"Pz": {0.000, -0.500},
}

// Standard1020 returns the default 19-channel montage.
func Standard1020() Set { return MustNew(standard1020...) }

// Standard1020Layout returns the head-surface layout for Standard1020.
func Standard1020Layout() Layout {
	l, err := NewLayout(Standard1020(), standard1020Layout)
	if err != nil {
		panic(err)
	}

	return l
}
