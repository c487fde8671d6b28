// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/eegmst/mst"
)

// Measure names one column of a Table.
type Measure string

// Table columns, in output order.
const (
	MeasureDegree      Measure = "degree"
	MeasureBetweenness Measure = "betweenness"
	MeasureCloseness   Measure = "closeness"
	MeasurePageRank    Measure = "pagerank"
)

// Measures lists every column in output order.
func Measures() []Measure {
	return []Measure{MeasureDegree, MeasureBetweenness, MeasureCloseness, MeasurePageRank}
}

// Row is one channel's scores.
type Row struct {
	Channel     string  `json:"channel"`
	Degree      float64 `json:"degree"`
	Betweenness float64 `json:"betweenness"`
	Closeness   float64 `json:"closeness"`
	PageRank    float64 `json:"pagerank"`
}

// Value returns the score for m; unknown measures yield 0, false.
func (r Row) Value(m Measure) (float64, bool) {
	switch m {
	case MeasureDegree:
		return r.Degree, true
	case MeasureBetweenness:
		return r.Betweenness, true
	case MeasureCloseness:
		return r.Closeness, true
	case MeasurePageRank:
		return r.PageRank, true
	}

	return 0, false
}

// Table is the per-channel centrality of one tree, rows in the requested order.
type Table struct {
	Rows       []Row `json:"rows"`
	Converged  bool  `json:"pagerank_converged"`
	Iterations int   `json:"pagerank_iterations"`

	warning error
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Row looks up a channel.
func (t *Table) Row(channel string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Channel == channel {
			return r, true
		}
	}

	return Row{}, false
}

// Column returns one measure across all rows, in row order.
func (t *Table) Column(m Measure) []float64 {
	col := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		col[i], _ = r.Value(m)
	}

	return col
}

// Warning returns the *ConvergenceWarning for a non-converged PageRank, else nil.
func (t *Table) Warning() error { return t.warning }

// Analyze computes every measure on tree and lays the rows out in order.
// A nil order uses the tree's vertex order. ctx bounds the tree traversals.
//
// Errors: ErrNilTree, ErrOrderMismatch, ErrOptionViolation, or ctx.Err().
func Analyze(ctx context.Context, tree *mst.Tree, order []string, opts ...PageRankOption) (*Table, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if order == nil {
		order = tree.Vertices()
	}
	if err := checkOrder(tree.Vertices(), order); err != nil {
		return nil, err
	}

	deg, err := Degree(tree)
	if err != nil {
		return nil, err
	}
	btw, err := Betweenness(ctx, tree)
	if err != nil {
		return nil, err
	}
	clo, err := Closeness(ctx, tree)
	if err != nil {
		return nil, err
	}
	pr, err := PageRank(tree, opts...)
	if err != nil {
		return nil, err
	}

	t := &Table{
		Rows:       make([]Row, len(order)),
		Converged:  pr.Converged,
		Iterations: pr.Iterations,
	}
	for i, id := range order {
		t.Rows[i] = Row{
			Channel:     id,
			Degree:      deg[id],
			Betweenness: btw[id],
			Closeness:   clo[id],
			PageRank:    pr.Scores[id],
		}
	}
	if w := pr.Warning(); w != nil {
		t.warning = w
	}

	return t, nil
}

// checkOrder verifies order is a permutation of vertices.
func checkOrder(vertices, order []string) error {
	if len(vertices) != len(order) {
		return fmt.Errorf("%w: %d labels for %d vertices", ErrOrderMismatch, len(order), len(vertices))
	}
	want := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		want[v] = true
	}
	for _, id := range order {
		if !want[id] {
			return fmt.Errorf("%w: %q missing or repeated", ErrOrderMismatch, id)
		}
		delete(want, id)
	}

	return nil
}
