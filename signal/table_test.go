package signal_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var abc = channels.MustNew("A", "B", "C")

// TestNewTable_Structural covers every structural rejection.
func TestNewTable_Structural(t *testing.T) {
	good := [][]float64{{1, 2, 3}, {3, 2, 1}, {0, 1, 0}}

	cases := []struct {
		name   string
		labels []string
		series [][]float64
	}{
		{"too few channels", nil, good[:2]},
		{"wrong order", []string{"B", "A", "C"}, good},
		{"ragged", nil, [][]float64{{1, 2, 3}, {1, 2}, {1, 2, 3}}},
		{"one sample", nil, [][]float64{{1}, {2}, {3}}},
		{"nan", nil, [][]float64{{1, math.NaN()}, {1, 2}, {2, 1}}},
		{"inf", nil, [][]float64{{1, 2}, {math.Inf(1), 2}, {2, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := signal.NewTable(abc, tc.labels, tc.series)
			assert.ErrorIs(t, err, channels.ErrStructural)
		})
	}

	tbl, err := signal.NewTable(abc, []string{"A", "B", "C"}, good)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Samples())

	// The table owns a copy of the data.
	good[0][0] = 99
	assert.Equal(t, 1.0, tbl.Series(0)[0])

	b, ok := tbl.SeriesByName("B")
	assert.True(t, ok)
	assert.Equal(t, []float64{3, 2, 1}, b)
}

// TestReadCSV_ChannelsAsRows reads the original export layout: index row first, ';' separated.
func TestReadCSV_ChannelsAsRows(t *testing.T) {
	in := "1;2;3;4\n" +
		"0.1;0.2;0.3;0.4\n" +
		"4;3;2;1\n" +
		"1;0;1;0\n"

	tbl, err := signal.ReadCSV(strings.NewReader(in), abc, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Samples())
	assert.Equal(t, []float64{4, 3, 2, 1}, tbl.Series(1))
}

// TestReadCSV_LabelColumn checks labels read from the first field are validated.
func TestReadCSV_LabelColumn(t *testing.T) {
	opts := &signal.CSVOptions{Orientation: signal.ChannelsAsRows, Delimiter: ',', LabelColumn: true}

	in := "A,1,2\nB,2,1\nC,5,6\n"
	tbl, err := signal.ReadCSV(strings.NewReader(in), abc, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Samples())

	bad := "A,1,2\nC,2,1\nB,5,6\n"
	_, err = signal.ReadCSV(strings.NewReader(bad), abc, opts)
	assert.ErrorIs(t, err, channels.ErrStructural)
}

// TestReadCSV_SamplesAsRows excludes a named index column and transposes.
func TestReadCSV_SamplesAsRows(t *testing.T) {
	opts := &signal.CSVOptions{Orientation: signal.SamplesAsRows, Delimiter: ',', IndexColumn: "time"}
	in := "time,A,B,C\n" +
		"0.000,1,4,7\n" +
		"0.002,2,5,8\n" +
		"0.004,3,6,10\n"

	tbl, err := signal.ReadCSV(strings.NewReader(in), abc, opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8, 10}, tbl.Series(2))

	opts.IndexColumn = "missing"
	_, err = signal.ReadCSV(strings.NewReader(in), abc, opts)
	assert.ErrorIs(t, err, channels.ErrStructural)

	opts.IndexColumn = ""
	opts.SkipIndex = true
	tbl, err = signal.ReadCSV(strings.NewReader(in), abc, opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, tbl.Series(0))
}

// TestReadCSV_ParseErrors distinguishes unparsable input from structural mismatches.
func TestReadCSV_ParseErrors(t *testing.T) {
	_, err := signal.ReadCSV(strings.NewReader(""), abc, nil)
	assert.ErrorIs(t, err, signal.ErrParse)

	_, err = signal.ReadCSV(strings.NewReader("1;2\n1;x\n2;3\n4;5\n"), abc, nil)
	assert.ErrorIs(t, err, signal.ErrParse)
}

// TestParseOrientation accepts aliases and rejects unknown names.
func TestParseOrientation(t *testing.T) {
	o, err := signal.ParseOrientation("samples")
	require.NoError(t, err)
	assert.Equal(t, signal.SamplesAsRows, o)

	o, err = signal.ParseOrientation("")
	require.NoError(t, err)
	assert.Equal(t, signal.ChannelsAsRows, o)

	_, err = signal.ParseOrientation("diagonal")
	assert.Error(t, err)
}
