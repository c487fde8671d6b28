package centrality_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/eegmst/centrality"
	"github.com/katalvlaran/eegmst/core"
	"github.com/katalvlaran/eegmst/mst"
)

// ExampleAnalyze scores a three-channel chain.
func ExampleAnalyze() {
	tree, _ := mst.NewTree([]string{"Fz", "Cz", "Pz"}, []core.Edge{
		{From: "Fz", To: "Cz", Weight: 0.4},
		{From: "Cz", To: "Pz", Weight: 0.4},
	})
	tab, err := centrality.Analyze(context.Background(), tree, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range tab.Rows {
		fmt.Printf("%s degree=%.2f betweenness=%.2f closeness=%.2f\n", r.Channel, r.Degree, r.Betweenness, r.Closeness)
	}
	// Output:
	// Fz degree=0.50 betweenness=0.00 closeness=0.67
	// Cz degree=1.00 betweenness=1.00 closeness=1.00
	// Pz degree=0.50 betweenness=0.00 closeness=0.67
}
