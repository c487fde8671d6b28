package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/eegmst/bfs"
	"github.com/katalvlaran/eegmst/core"
)

// BenchmarkBFS_BinaryTree roots a complete binary tree of 1023 vertices.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1

	g := core.NewGraph(core.WithWeighted())
	for i := 1; i <= nodeCount; i++ {
		_ = g.AddVertex(fmt.Sprintf("%d", i))
	}
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := fmt.Sprintf("%d", i)
		_, _ = g.AddEdge(p, fmt.Sprintf("%d", 2*i), 1)
		_, _ = g.AddEdge(p, fmt.Sprintf("%d", 2*i+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, "1"); err != nil {
			b.Fatal(err)
		}
	}
}
