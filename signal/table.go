// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eegmst/channels"
)

// MinSamples is the shortest series for which a Pearson correlation is defined.
const MinSamples = 2

// Table is an immutable set of equal-length series, one per channel.
type Table struct {
	set     channels.Set
	series  [][]float64
	samples int
}

// NewTable validates series against set and takes a private copy of the data.
// labels may be nil when the source carried no channel names; the series are
// then assumed to be in set order and only their count is checked.
//
// Errors (all wrap channels.ErrStructural):
//   - channel count or label order differs from set;
//   - series lengths differ, or are shorter than MinSamples;
//   - a sample is NaN or ±Inf.
//
// Complexity: O(channels · samples).
func NewTable(set channels.Set, labels []string, series [][]float64) (*Table, error) {
	if labels != nil {
		if err := set.Match(labels); err != nil {
			return nil, err
		}
	}
	if err := set.MatchCount(len(series)); err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: no channels", channels.ErrStructural)
	}

	samples := len(series[0])
	if samples < MinSamples {
		return nil, fmt.Errorf("%w: %d samples, need at least %d", channels.ErrStructural, samples, MinSamples)
	}

	data := make([][]float64, len(series))
	for i, s := range series {
		if len(s) != samples {
			return nil, fmt.Errorf("%w: channel %q has %d samples, want %d",
				channels.ErrStructural, set.Name(i), len(s), samples)
		}
		for k, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: channel %q sample %d is not finite",
					channels.ErrStructural, set.Name(i), k)
			}
		}
		data[i] = append([]float64(nil), s...)
	}

	return &Table{set: set, series: data, samples: samples}, nil
}

// Channels returns the Set the table is indexed by.
func (t *Table) Channels() channels.Set { return t.set }

// Samples returns the common series length.
func (t *Table) Samples() int { return t.samples }

// Series returns the samples of channel i. The slice is shared; callers must not modify it.
func (t *Table) Series(i int) []float64 { return t.series[i] }

// SeriesByName looks a series up by label.
func (t *Table) SeriesByName(name string) ([]float64, bool) {
	i, ok := t.set.Index(name)
	if !ok {
		return nil, false
	}

	return t.series[i], true
}
