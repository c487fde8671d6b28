// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Sheet kinds written per recording.
const (
	SheetCentrality = "centrality"
	SheetMST        = "mst"
	SheetSummary    = "summary"
)

const maxSheetName = 31

var sheetReplacer = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_")

// SheetName returns the worksheet name for one recording and kind. A lone
// recording uses the bare kind; otherwise the recording ID is prefixed and
// truncated to fit Excel's 31-character limit. Characters Excel forbids in
// sheet names become underscores.
func SheetName(recordingID, kind string, single bool) string {
	if single {
		return kind
	}
	room := maxSheetName - len(kind) - 1
	id := sheetReplacer.Replace(recordingID)
	for len(id) > room {
		_, size := utf8.DecodeLastRuneInString(id)
		id = id[:len(id)-size]
	}

	return id + " " + kind
}

// WriteXLSX writes a workbook with a centrality and an mst sheet per
// document, followed by one summary sheet.
//
// Steps:
//  1. Rename the default Sheet1 to the first sheet name; add the rest.
//  2. Write a header row and one row per channel (centrality) or edge (mst).
//  3. Write the per-measure summary of every document.
//  4. Stream the workbook to w.
func WriteXLSX(w io.Writer, docs ...Document) error {
	if len(docs) == 0 {
		return ErrNoDocuments
	}
	f := excelize.NewFile()
	defer f.Close()

	single := len(docs) == 1
	first := true
	sheet := func(name string) error {
		if first {
			first = false
			return f.SetSheetName("Sheet1", name)
		}
		_, err := f.NewSheet(name)
		return err
	}

	seen := make(map[string]bool)
	for _, d := range docs {
		cName := SheetName(d.RecordingID, SheetCentrality, single)
		mName := SheetName(d.RecordingID, SheetMST, single)
		if seen[cName] {
			return fmt.Errorf("report: sheet %q repeats; recording IDs collide after truncation", cName)
		}
		seen[cName] = true

		if err := sheet(cName); err != nil {
			return fmt.Errorf("report: sheet %q: %w", cName, err)
		}
		rows := make([][]interface{}, 0, len(d.Centrality))
		for _, r := range d.Centrality {
			rows = append(rows, []interface{}{r.Channel, r.Degree, r.Betweenness, r.Closeness, r.PageRank})
		}
		if err := writeRows(f, cName, CentralityHeader[1:], rows); err != nil {
			return err
		}

		if err := sheet(mName); err != nil {
			return fmt.Errorf("report: sheet %q: %w", mName, err)
		}
		rows = rows[:0]
		for _, e := range d.Edges {
			rows = append(rows, []interface{}{e.Source, e.Target, e.Weight})
		}
		if err := writeRows(f, mName, []string{"source", "target", "weight"}, rows); err != nil {
			return err
		}
	}

	if err := sheet(SheetSummary); err != nil {
		return fmt.Errorf("report: sheet %q: %w", SheetSummary, err)
	}
	var rows [][]interface{}
	for _, d := range docs {
		for _, s := range d.Summary {
			rows = append(rows, []interface{}{d.RecordingID, string(s.Measure), s.Mean, s.Median, s.StdDev, s.Min, s.Max})
		}
	}
	header := []string{"recording", "measure", "mean", "median", "std_dev", "min", "max"}
	if err := writeRows(f, SheetSummary, header, rows); err != nil {
		return err
	}

	if idx, err := f.GetSheetIndex(SheetName(docs[0].RecordingID, SheetCentrality, single)); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write xlsx: %w", err)
	}

	return nil
}

// writeRows writes header at row 1 and rows from row 2.
func writeRows(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}
