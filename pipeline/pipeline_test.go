package pipeline_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/eegmst/centrality"
	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/distance"
	"github.com/katalvlaran/eegmst/mst"
	"github.com/katalvlaran/eegmst/pipeline"
	"github.com/katalvlaran/eegmst/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func abcd() channels.Set { return channels.MustNew("A", "B", "C", "D") }

func table(t *testing.T, set channels.Set, series ...[]float64) *signal.Table {
	t.Helper()
	tab, err := signal.NewTable(set, nil, series)
	require.NoError(t, err)

	return tab
}

func mixed(t *testing.T) *signal.Table {
	return table(t, abcd(),
		[]float64{1, 2, 3, 4, 5, 6},
		[]float64{2, 4, 6, 8, 10, 12.5},
		[]float64{6, 5, 4, 3, 2, 1},
		[]float64{1, 3, 2, 5, 4, 6},
	)
}

func TestRun_EndToEnd(t *testing.T) {
	p := pipeline.New(abcd(), pipeline.WithLogger(quiet))
	res, err := p.Run(context.Background(), pipeline.Recording{ID: "rec", Table: mixed(t)})
	require.NoError(t, err)

	assert.Equal(t, "rec", res.RecordingID)
	require.NotNil(t, res.Correlation)
	assert.Equal(t, distance.KindCorrelation, res.Correlation.Kind())
	assert.Equal(t, distance.KindDistance, res.Distance.Kind())
	assert.InDelta(t, 2.0, res.Distance.At(0, 2), 1e-9) // A and C are anti-correlated

	require.NoError(t, res.Tree.Validate())
	assert.Len(t, res.Tree.Edges(), 3)

	rows := res.Centrality.Rows
	require.Len(t, rows, 4)
	var sum float64
	for i, r := range rows {
		assert.Equal(t, abcd().Name(i), r.Channel)
		assert.GreaterOrEqual(t, r.Degree, 0.0)
		assert.LessOrEqual(t, r.Degree, 1.0)
		sum += r.PageRank
	}
	assert.InDelta(t, 1.0, sum, 1e-4)
	assert.True(t, res.Centrality.Converged)
}

// TestRun_IdenticalSeries: all distances 0, tree weight 0, finite centrality.
func TestRun_IdenticalSeries(t *testing.T) {
	s := []float64{0.1, -0.4, 0.9, 0.3, -0.2}
	p := pipeline.New(abcd(), pipeline.WithLogger(quiet))
	res, err := p.Run(context.Background(), pipeline.Recording{Table: table(t, abcd(), s, s, s, s)})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RecordingID)
	assert.Equal(t, 0.0, res.Tree.Weight())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, 0.0, res.Distance.At(i, j))
		}
	}
	for _, r := range res.Centrality.Rows {
		assert.InDelta(t, 0.25, r.PageRank, 1e-12)
	}
}

func TestRun_Rejections(t *testing.T) {
	p := pipeline.New(abcd(), pipeline.WithLogger(quiet))

	_, err := p.Run(context.Background(), pipeline.Recording{})
	assert.ErrorIs(t, err, pipeline.ErrNilRecording)

	flat := table(t, abcd(),
		[]float64{1, 2, 3},
		[]float64{5, 5, 5},
		[]float64{3, 1, 2},
		[]float64{0, 1, 0},
	)
	_, err = p.Run(context.Background(), pipeline.Recording{ID: "flat", Table: flat})
	require.ErrorIs(t, err, distance.ErrDegenerateSignal)
	var de *distance.DegenerateSignalError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "B", de.Channel)

	other := channels.MustNew("A", "B", "C", "E")
	_, err = p.Run(context.Background(), pipeline.Recording{Table: table(t, other,
		[]float64{1, 2}, []float64{2, 1}, []float64{1, 3}, []float64{3, 1})})
	assert.ErrorIs(t, err, channels.ErrStructural)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Run(ctx, pipeline.Recording{Table: mixed(t)})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRunDistance reproduces the three-channel example: MST {A–B, B–C}, weight 2.5.
func TestRunDistance(t *testing.T) {
	set := channels.MustNew("A", "B", "C")
	dm, err := distance.NewDistanceMatrix(set, [][]float64{
		{0, 1, 2},
		{1, 0, 1.5},
		{2, 1.5, 0},
	})
	require.NoError(t, err)

	for _, m := range []mst.Method{mst.MethodKruskal, mst.MethodPrim} {
		p := pipeline.New(set, pipeline.WithLogger(quiet), pipeline.WithMethod(m))
		res, err := p.RunDistance(context.Background(), "b", dm)
		require.NoError(t, err)
		assert.Nil(t, res.Correlation)
		assert.Equal(t, 2.5, res.Tree.Weight())
		edges := res.Tree.Edges()
		require.Len(t, edges, 2)
		assert.Equal(t, [2]string{"A", "B"}, [2]string{edges[0].From, edges[0].To})
		assert.Equal(t, [2]string{"B", "C"}, [2]string{edges[1].From, edges[1].To})

		hub, _ := res.Centrality.Row("B")
		assert.InDelta(t, 1.0, hub.Degree, 1e-12)
		assert.InDelta(t, 1.0, hub.Betweenness, 1e-12)
	}

	_, err = pipeline.New(abcd(), pipeline.WithLogger(quiet)).RunDistance(context.Background(), "x", dm)
	assert.ErrorIs(t, err, channels.ErrStructural)
	_, err = pipeline.New(set).RunDistance(context.Background(), "x", nil)
	assert.Error(t, err)
}

// TestRunAverage: the group tree comes from the mean distance matrix.
func TestRunAverage(t *testing.T) {
	set := channels.MustNew("A", "B", "C")
	first, err := distance.NewDistanceMatrix(set, [][]float64{
		{0, 1, 2},
		{1, 0, 1.5},
		{2, 1.5, 0},
	})
	require.NoError(t, err)
	second, err := distance.NewDistanceMatrix(set, [][]float64{
		{0, 2, 0.5},
		{2, 0, 1.5},
		{0.5, 1.5, 0},
	})
	require.NoError(t, err)

	p := pipeline.New(set, pipeline.WithLogger(quiet))
	r1, err := p.RunDistance(context.Background(), "s1_1", first)
	require.NoError(t, err)
	r2, err := p.RunDistance(context.Background(), "s2_1", second)
	require.NoError(t, err)

	// Mean: A-B 1.5, A-C 1.25, B-C 1.5. The tie at 1.5 goes to A-B, giving a
	// tree that matches neither member.
	avg, err := p.RunAverage(context.Background(), "average_1", r1, nil, r2)
	require.NoError(t, err)
	assert.Equal(t, "average_1", avg.RecordingID)
	assert.Equal(t, 1.5, avg.Distance.At(0, 1))
	assert.Equal(t, 1.25, avg.Distance.At(0, 2))
	edges := avg.Tree.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, [2]string{"A", "C"}, [2]string{edges[0].From, edges[0].To})
	assert.Equal(t, [2]string{"A", "B"}, [2]string{edges[1].From, edges[1].To})
	assert.Equal(t, 2.75, avg.Tree.Weight())

	_, err = p.RunAverage(context.Background(), "none")
	assert.ErrorIs(t, err, distance.ErrNoMatrices)
	_, err = p.RunAverage(context.Background(), "none", nil)
	assert.ErrorIs(t, err, distance.ErrNoMatrices)
}

func TestRun_PageRankWarning(t *testing.T) {
	p := pipeline.New(abcd(), pipeline.WithLogger(quiet),
		pipeline.WithPageRank(centrality.WithMaxIterations(1), centrality.WithTolerance(1e-15)))
	res, err := p.Run(context.Background(), pipeline.Recording{Table: mixed(t)})
	require.NoError(t, err)
	assert.False(t, res.Centrality.Converged)
	assert.ErrorIs(t, res.Centrality.Warning(), centrality.ErrNotConverged)
}

// TestRunBatch_Isolation: one degenerate recording fails alone.
func TestRunBatch_Isolation(t *testing.T) {
	flat := table(t, abcd(),
		[]float64{1, 2, 3},
		[]float64{1, 2, 4},
		[]float64{7, 7, 7},
		[]float64{0, 1, 0},
	)
	recs := []pipeline.Recording{
		{ID: "Subject00_1", Table: mixed(t)},
		{ID: "Subject00_2", Table: flat},
		{Table: mixed(t)},
	}

	p := pipeline.New(abcd(), pipeline.WithLogger(quiet))
	b := p.RunBatch(context.Background(), recs, 2)
	require.Len(t, b.Outcomes, 3)
	assert.NotEmpty(t, b.RunID)

	assert.NoError(t, b.Outcomes[0].Err)
	assert.ErrorIs(t, b.Outcomes[1].Err, distance.ErrDegenerateSignal)
	assert.Nil(t, b.Outcomes[1].Result)
	assert.NoError(t, b.Outcomes[2].Err)
	assert.NotEmpty(t, b.Outcomes[2].RecordingID)
	assert.Equal(t, b.Outcomes[2].RecordingID, b.Outcomes[2].Result.RecordingID)

	assert.Len(t, b.Failed(), 1)
	assert.Len(t, b.Succeeded(), 2)
	assert.Equal(t, "Subject00_1", b.Succeeded()[0].RecordingID)

	// Results are identical to a sequential run.
	seq, err := p.Run(context.Background(), recs[0])
	require.NoError(t, err)
	assert.Equal(t, seq.Centrality.Rows, b.Outcomes[0].Result.Centrality.Rows)
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := pipeline.New(abcd(), pipeline.WithLogger(quiet))
	b := p.RunBatch(ctx, []pipeline.Recording{{Table: mixed(t)}, {Table: mixed(t)}}, 0)
	for _, o := range b.Outcomes {
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
}
