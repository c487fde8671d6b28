// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/eegmst/centrality"
)

// Summary describes one centrality measure across the channels of a recording.
type Summary struct {
	Measure centrality.Measure `json:"measure"`
	Mean    float64            `json:"mean"`
	Median  float64            `json:"median"`
	StdDev  float64            `json:"std_dev"`
	Min     float64            `json:"min"`
	Max     float64            `json:"max"`
}

// Summarize computes population statistics for every measure of t, in
// centrality.Measures() order.
func Summarize(t *centrality.Table) ([]Summary, error) {
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	out := make([]Summary, 0, len(centrality.Measures()))
	for _, m := range centrality.Measures() {
		data := stats.Float64Data(t.Column(m))
		s := Summary{Measure: m}
		var err error
		if s.Mean, err = stats.Mean(data); err != nil {
			return nil, fmt.Errorf("report: %s mean: %w", m, err)
		}
		if s.Median, err = stats.Median(data); err != nil {
			return nil, fmt.Errorf("report: %s median: %w", m, err)
		}
		if s.StdDev, err = stats.StandardDeviationPopulation(data); err != nil {
			return nil, fmt.Errorf("report: %s stddev: %w", m, err)
		}
		if s.Min, err = stats.Min(data); err != nil {
			return nil, fmt.Errorf("report: %s min: %w", m, err)
		}
		if s.Max, err = stats.Max(data); err != nil {
			return nil, fmt.Errorf("report: %s max: %w", m, err)
		}
		out = append(out, s)
	}

	return out, nil
}
