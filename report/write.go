// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// WriteJSON writes v (a Document or BatchDocument) as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

// CentralityHeader is the first row written by WriteCentralityCSV.
var CentralityHeader = []string{"recording", "channel", "degree", "betweenness", "closeness", "pagerank"}

// EdgesHeader is the first row written by WriteEdgesCSV.
var EdgesHeader = []string{"recording", "source", "target", "weight", "source_x", "source_y", "target_x", "target_y"}

// WriteCentralityCSV writes one row per channel per document.
func WriteCentralityCSV(w io.Writer, docs ...Document) error {
	if len(docs) == 0 {
		return ErrNoDocuments
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CentralityHeader); err != nil {
		return err
	}
	for _, d := range docs {
		for _, r := range d.Centrality {
			rec := []string{d.RecordingID, r.Channel, ff(r.Degree), ff(r.Betweenness), ff(r.Closeness), ff(r.PageRank)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteEdgesCSV writes one row per tree edge per document. Missing
// coordinates are left empty.
func WriteEdgesCSV(w io.Writer, docs ...Document) error {
	if len(docs) == 0 {
		return ErrNoDocuments
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(EdgesHeader); err != nil {
		return err
	}
	for _, d := range docs {
		for _, e := range d.Edges {
			rec := []string{d.RecordingID, e.Source, e.Target, ff(e.Weight), "", "", "", ""}
			if e.SourcePos != nil {
				rec[4], rec[5] = ff(e.SourcePos.X), ff(e.SourcePos.Y)
			}
			if e.TargetPos != nil {
				rec[6], rec[7] = ff(e.TargetPos.X), ff(e.TargetPos.Y)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

func ff(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
