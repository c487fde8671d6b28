// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eegmst/pipeline"
	"github.com/katalvlaran/eegmst/report"
	"github.com/katalvlaran/eegmst/signal"
)

type batchFlags struct {
	format   string
	out      string
	workers  int
	edges    bool
	noGroups bool
}

func newBatchCmd(a *app) *cobra.Command {
	f := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Analyze many recordings concurrently",
		Long: `Analyze every CSV recording given, at most --workers at a time.

A recording that fails to load or is degenerate is reported and skipped; the
others are still written. The command exits non-zero if any recording failed.

Recordings named *_1 and *_2 are also averaged per condition: the mean
distance matrix of each condition yields one more tree, average_1 or
average_2, written after the individual recordings.

Examples:
  eegmst batch data/*.csv --format xlsx --out report.xlsx
  eegmst batch Subject00_1.csv Subject00_2.csv --workers 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, a, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", formatJSON, "output format: json, csv or xlsx")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "concurrent recordings (default from config, 0 = all CPUs)")
	cmd.Flags().BoolVar(&f.edges, "edges", false, "with --format csv, write the tree edges instead of centrality")
	cmd.Flags().BoolVar(&f.noGroups, "no-groups", false, "skip the average_1/average_2 trees built from each condition's mean distance matrix")

	return cmd
}

func runBatch(cmd *cobra.Command, a *app, f *batchFlags, paths []string) error {
	if err := checkFormat(f.format); err != nil {
		return err
	}
	opts, err := a.cfg.CSVOptions()
	if err != nil {
		return err
	}
	workers := f.workers
	if workers == 0 {
		workers = a.cfg.Batch.Workers
	}

	var (
		recs     []pipeline.Recording
		failures []report.Failure
	)
	for _, p := range paths {
		id := recordingID(p)
		table, err := signal.LoadCSV(p, a.set, opts)
		if err != nil {
			a.log.Error("load failed", "file", p, "err", err)
			failures = append(failures, report.Failure{RecordingID: id, Error: err.Error()})
			continue
		}
		recs = append(recs, pipeline.Recording{ID: id, Table: table})
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pipe := a.pipeline()
	b := pipe.RunBatch(ctx, recs, workers)
	doc, err := report.NewBatchDocument(b, a.layout)
	if err != nil {
		return err
	}
	doc.Failures = append(failures, doc.Failures...)
	if !f.noGroups {
		if doc.Groups, err = report.GroupDocuments(ctx, pipe, b, a.layout); err != nil {
			return err
		}
	}

	if len(doc.Documents) > 0 {
		w, closeFn, err := createOutput(cmd, f.out)
		if err != nil {
			return err
		}
		if f.format == formatJSON {
			err = report.WriteJSON(w, doc)
		} else {
			err = writeDocs(w, f.format, f.edges, append(doc.Documents, doc.Groups...)...)
		}
		if err != nil {
			_ = closeFn()
			return err
		}
		if err := closeFn(); err != nil {
			return err
		}
	}

	if n := len(doc.Failures); n > 0 {
		for _, fl := range doc.Failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", fl.RecordingID, fl.Error)
		}
		return fmt.Errorf("%d of %d recordings failed", n, len(paths))
	}

	return nil
}
