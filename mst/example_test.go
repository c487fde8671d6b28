package mst_test

import (
	"fmt"

	"github.com/katalvlaran/eegmst/core"
	"github.com/katalvlaran/eegmst/mst"
)

// ExampleCompute shows the default Kruskal run on a 3-channel distance graph.
func ExampleCompute() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 2)
	g.AddEdge("B", "C", 1.5)

	tree, err := mst.Compute(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %.1f, Edges:", tree.Weight())
	for _, e := range tree.Edges() {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 2.5, Edges: A-B B-C
}
