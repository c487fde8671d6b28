package mst_test

import (
	"testing"

	"github.com/katalvlaran/eegmst/mst"
)

// BenchmarkKruskal measures a 64-channel complete graph with heavy ties.
func BenchmarkKruskal(b *testing.B) {
	g := buildRandomComplete(64, 42, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mst.Kruskal(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPrim measures the same graph with Prim from the first vertex.
func BenchmarkPrim(b *testing.B) {
	g := buildRandomComplete(64, 42, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mst.Prim(g, "V00"); err != nil {
			b.Fatal(err)
		}
	}
}
