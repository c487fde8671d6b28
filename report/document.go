// SPDX-License-Identifier: MIT

package report

import (
	"errors"

	"github.com/katalvlaran/eegmst/centrality"
	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/mst"
	"github.com/katalvlaran/eegmst/pipeline"
)

// ErrNoDocuments is returned by writers given nothing to write.
var ErrNoDocuments = errors.New("report: no documents")

// Edge is one spanning-tree edge with optional endpoint coordinates.
type Edge struct {
	Source    string          `json:"source"`
	Target    string          `json:"target"`
	Weight    float64         `json:"weight"`
	SourcePos *channels.Point `json:"source_pos,omitempty"`
	TargetPos *channels.Point `json:"target_pos,omitempty"`
}

// Document is the presentation contract for one recording.
type Document struct {
	RecordingID        string           `json:"recording_id"`
	Channels           []string         `json:"channels"`
	TotalWeight        float64          `json:"total_weight"`
	Edges              []Edge           `json:"edges"`
	Centrality         []centrality.Row `json:"centrality"`
	Summary            []Summary        `json:"summary,omitempty"`
	PageRankConverged  bool             `json:"pagerank_converged"`
	PageRankIterations int              `json:"pagerank_iterations"`
	Warning            string           `json:"warning,omitempty"`
}

// EdgeList lists the tree edges in canonical order. Endpoints present in
// layout get their coordinates; a zero Layout yields none.
func EdgeList(tree *mst.Tree, layout channels.Layout) []Edge {
	if tree == nil {
		return nil
	}
	edges := tree.Edges()
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = Edge{Source: e.From, Target: e.To, Weight: e.Weight}
		if p, ok := layout.Position(e.From); ok {
			out[i].SourcePos = &p
		}
		if p, ok := layout.Position(e.To); ok {
			out[i].TargetPos = &p
		}
	}

	return out
}

// Rows returns a copy of the table's rows.
func Rows(t *centrality.Table) []centrality.Row {
	if t == nil {
		return nil
	}

	return append([]centrality.Row(nil), t.Rows...)
}

// NewDocument flattens one pipeline result.
func NewDocument(res *pipeline.Result, layout channels.Layout) (Document, error) {
	doc := Document{
		RecordingID:        res.RecordingID,
		Channels:           res.Channels.Names(),
		TotalWeight:        res.Tree.Weight(),
		Edges:              EdgeList(res.Tree, layout),
		Centrality:         Rows(res.Centrality),
		PageRankConverged:  res.Centrality.Converged,
		PageRankIterations: res.Centrality.Iterations,
	}
	if w := res.Centrality.Warning(); w != nil {
		doc.Warning = w.Error()
	}
	summary, err := Summarize(res.Centrality)
	if err != nil {
		return Document{}, err
	}
	doc.Summary = summary

	return doc, nil
}

// Failure is a batch entry that did not produce a Document.
type Failure struct {
	RecordingID string `json:"recording_id"`
	Error       string `json:"error"`
}

// BatchDocument is the presentation contract for a batch run.
type BatchDocument struct {
	RunID     string     `json:"run_id"`
	Documents []Document `json:"recordings"`
	Failures  []Failure  `json:"failures,omitempty"`
	Pairs     []Pair     `json:"pairs,omitempty"`
	Groups    []Document `json:"groups,omitempty"`
}

// NewBatchDocument flattens a batch, keeping input order.
func NewBatchDocument(b *pipeline.Batch, layout channels.Layout) (BatchDocument, error) {
	out := BatchDocument{RunID: b.RunID}
	for _, o := range b.Outcomes {
		if o.Err != nil {
			out.Failures = append(out.Failures, Failure{RecordingID: o.RecordingID, Error: o.Err.Error()})
			continue
		}
		doc, err := NewDocument(o.Result, layout)
		if err != nil {
			return BatchDocument{}, err
		}
		out.Documents = append(out.Documents, doc)
	}
	out.Pairs = PairConditions(out.Documents)

	return out, nil
}
