package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/eegmst/bfs"
	"github.com/katalvlaran/eegmst/core"
)

// ExampleBFS roots a small spanning tree at Cz and reports how many electrodes
// hang below each vertex.
func ExampleBFS() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("Cz", "C3", 0.4)
	g.AddEdge("Cz", "C4", 0.3)
	g.AddEdge("C3", "T3", 0.9)

	res, err := bfs.BFS(g, "Cz")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Order {
		fmt.Printf("%s=%d ", id, res.Size[id])
	}
	fmt.Println()
	// Output: Cz=4 C3=2 C4=1 T3=1
}
