// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/eegmst/builder"
	"github.com/katalvlaran/eegmst/centrality"
	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/distance"
	"github.com/katalvlaran/eegmst/mst"
	"github.com/katalvlaran/eegmst/signal"
)

// ErrNilRecording indicates a recording without a signal table.
var ErrNilRecording = errors.New("pipeline: recording has no signal table")

// Recording is one multichannel recording to analyze.
// An empty ID is replaced by a generated UUID.
type Recording struct {
	ID    string
	Table *signal.Table
}

// Result carries every intermediate artifact of one run.
type Result struct {
	RecordingID string
	Channels    channels.Set
	Correlation *distance.Matrix // nil for RunDistance
	Distance    *distance.Matrix
	Tree        *mst.Tree
	Centrality  *centrality.Table
	Elapsed     time.Duration
}

// Options configures a Pipeline.
type Options struct {
	Logger   *slog.Logger
	Method   mst.Method
	PageRank []centrality.PageRankOption
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMethod selects the MST algorithm.
func WithMethod(m mst.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithPageRank forwards options to centrality.PageRank.
func WithPageRank(opts ...centrality.PageRankOption) Option {
	return func(o *Options) { o.PageRank = append(o.PageRank, opts...) }
}

// DefaultOptions returns Kruskal, default PageRank parameters and slog.Default().
func DefaultOptions() Options {
	return Options{Logger: slog.Default(), Method: mst.MethodKruskal}
}

// Pipeline analyzes recordings over a fixed ChannelSet.
type Pipeline struct {
	set  channels.Set
	opts Options
	log  *slog.Logger
}

// New returns a Pipeline for set.
func New(set channels.Set, opts ...Option) *Pipeline {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Pipeline{set: set, opts: o, log: o.Logger}
}

// Channels returns the ChannelSet the pipeline expects.
func (p *Pipeline) Channels() channels.Set { return p.set }

// Run analyzes one recording.
//
// Steps:
//  1. Check the table's channels against the pipeline's set (channels.ErrStructural).
//  2. Correlation and distance matrices (*distance.DegenerateSignalError on constant series).
//  3. Complete graph, MST, centrality in channel order.
//
// A non-converged PageRank is logged at WARN and exposed via
// Result.Centrality.Warning(); it is not an error.
func (p *Pipeline) Run(ctx context.Context, rec Recording) (*Result, error) {
	if rec.Table == nil {
		return nil, ErrNilRecording
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if got := rec.Table.Channels(); !got.Equal(p.set) {
		return nil, fmt.Errorf("pipeline: %s: %w: got channels %v, want %v",
			rec.ID, channels.ErrStructural, got.Names(), p.set.Names())
	}

	start := time.Now()
	log := p.log.With("recording", rec.ID)
	log.Debug("correlating", "channels", p.set.Len(), "samples", rec.Table.Samples())

	corr, dist, err := distance.Build(rec.Table)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", rec.ID, err)
	}

	res, err := p.fromDistance(ctx, log, rec.ID, dist)
	if err != nil {
		return nil, err
	}
	res.Correlation = corr
	res.Elapsed = time.Since(start)
	log.Debug("done", "elapsed", res.Elapsed)

	return res, nil
}

// RunDistance computes MST and centrality from a precomputed distance matrix.
func (p *Pipeline) RunDistance(ctx context.Context, id string, dm *distance.Matrix) (*Result, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if dm == nil {
		return nil, fmt.Errorf("pipeline: %s: %w", id, builder.ErrNilMatrix)
	}
	if !dm.Channels().Equal(p.set) {
		return nil, fmt.Errorf("pipeline: %s: %w: matrix channels %v, want %v",
			id, channels.ErrStructural, dm.Channels().Names(), p.set.Names())
	}

	start := time.Now()
	res, err := p.fromDistance(ctx, p.log.With("recording", id), id, dm)
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// RunAverage builds one group tree from the element-wise mean of the distance
// matrices behind results, e.g. every "before" recording of a study.
// Nil results are skipped; with none left it returns distance.ErrNoMatrices.
func (p *Pipeline) RunAverage(ctx context.Context, id string, results ...*Result) (*Result, error) {
	ms := make([]*distance.Matrix, 0, len(results))
	for _, r := range results {
		if r != nil {
			ms = append(ms, r.Distance)
		}
	}
	avg, err := distance.Average(ms...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", id, err)
	}
	p.log.Debug("averaged distances", "recording", id, "members", len(ms))

	return p.RunDistance(ctx, id, avg)
}

// fromDistance runs graph → MST → centrality.
func (p *Pipeline) fromDistance(ctx context.Context, log *slog.Logger, id string, dm *distance.Matrix) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, err := builder.Complete(dm)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", id, err)
	}
	log.Debug("complete graph", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	tree, err := mst.Compute(g, mst.WithMethod(p.opts.Method))
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", id, err)
	}
	log.Debug("spanning tree", "method", p.opts.Method, "edges", len(tree.Edges()), "weight", tree.Weight())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table, err := centrality.Analyze(ctx, tree, p.set.Names(), p.opts.PageRank...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", id, err)
	}
	if w := table.Warning(); w != nil {
		log.Warn("pagerank did not converge", "iterations", table.Iterations, "err", w)
	}

	return &Result{
		RecordingID: id,
		Channels:    p.set,
		Distance:    dm,
		Tree:        tree,
		Centrality:  table,
	}, nil
}
