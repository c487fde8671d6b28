// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one recording in a batch; exactly one of Result
// and Err is set.
type Outcome struct {
	Index       int
	RecordingID string
	Result      *Result
	Err         error
}

// Batch is the outcome of RunBatch, in input order.
type Batch struct {
	RunID    string
	Outcomes []Outcome
}

// Failed returns the outcomes that carry an error.
func (b *Batch) Failed() []Outcome {
	var out []Outcome
	for _, o := range b.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}

	return out
}

// Succeeded returns the results of the recordings that completed, in input order.
func (b *Batch) Succeeded() []*Result {
	var out []*Result
	for _, o := range b.Outcomes {
		if o.Err == nil {
			out = append(out, o.Result)
		}
	}

	return out
}

// RunBatch analyzes recs with at most workers concurrent runs; workers ≤ 0
// means GOMAXPROCS. Recordings missing an ID get a UUID before scheduling.
//
// Failures stay in their Outcome. Once ctx is done no further recording is
// scheduled and each unscheduled one reports ctx.Err().
func (p *Pipeline) RunBatch(ctx context.Context, recs []Recording, workers int) *Batch {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	b := &Batch{RunID: uuid.NewString(), Outcomes: make([]Outcome, len(recs))}
	log := p.log.With("run", b.RunID)
	log.Info("batch started", "recordings", len(recs), "workers", workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rec := range recs {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		b.Outcomes[i] = Outcome{Index: i, RecordingID: rec.ID}
		if err := gctx.Err(); err != nil {
			b.Outcomes[i].Err = err
			continue
		}

		i, rec := i, rec
		g.Go(func() error {
			res, err := p.Run(gctx, rec)
			b.Outcomes[i].Result, b.Outcomes[i].Err = res, err
			if err != nil {
				log.Error("recording failed", "recording", rec.ID, "err", err)
			}

			return nil
		})
	}
	_ = g.Wait()

	log.Info("batch finished", "failed", len(b.Failed()))

	return b
}
