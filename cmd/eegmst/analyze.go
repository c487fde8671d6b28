// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eegmst/pipeline"
	"github.com/katalvlaran/eegmst/report"
	"github.com/katalvlaran/eegmst/signal"
)

// Output formats accepted by analyze and batch.
const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

type analyzeFlags struct {
	format string
	out    string
	id     string
	edges  bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	f := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze one recording",
		Long: `Analyze one CSV recording and write its spanning tree and centrality table.

Examples:
  eegmst analyze Subject00_1.csv
  eegmst analyze Subject00_1.csv --format xlsx --out Subject00_1.xlsx
  eegmst analyze Subject00_1.csv --format csv --edges`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, a, f, args[0])
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", formatJSON, "output format: json, csv or xlsx")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&f.id, "id", "", "recording ID (default: file name without extension)")
	cmd.Flags().BoolVar(&f.edges, "edges", false, "with --format csv, write the tree edges instead of centrality")

	return cmd
}

func runAnalyze(cmd *cobra.Command, a *app, f *analyzeFlags, path string) error {
	if err := checkFormat(f.format); err != nil {
		return err
	}
	opts, err := a.cfg.CSVOptions()
	if err != nil {
		return err
	}
	table, err := signal.LoadCSV(path, a.set, opts)
	if err != nil {
		return err
	}
	id := f.id
	if id == "" {
		id = recordingID(path)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := a.pipeline().Run(ctx, pipeline.Recording{ID: id, Table: table})
	if err != nil {
		return err
	}
	doc, err := report.NewDocument(res, a.layout)
	if err != nil {
		return err
	}

	w, closeFn, err := createOutput(cmd, f.out)
	if err != nil {
		return err
	}
	if err := writeDocs(w, f.format, f.edges, doc); err != nil {
		_ = closeFn()
		return err
	}

	return closeFn()
}

func writeDocs(w io.Writer, format string, edges bool, docs ...report.Document) error {
	switch format {
	case formatCSV:
		if edges {
			return report.WriteEdgesCSV(w, docs...)
		}
		return report.WriteCentralityCSV(w, docs...)
	case formatXLSX:
		return report.WriteXLSX(w, docs...)
	default:
		if len(docs) == 1 {
			return report.WriteJSON(w, docs[0])
		}
		return report.WriteJSON(w, docs)
	}
}

func checkFormat(format string) error {
	switch format {
	case formatJSON, formatCSV, formatXLSX:
		return nil
	}

	return fmt.Errorf("unknown format %q (want json, csv or xlsx)", format)
}

// recordingID derives an ID from a file name: data/Subject00_1.csv → Subject00_1.
func recordingID(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
