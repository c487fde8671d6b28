// SPDX-License-Identifier: MIT

package signal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/eegmst/channels"
)

// ErrParse indicates a cell could not be read as a number, or the file is empty.
var ErrParse = errors.New("signal: cannot parse table")

// Orientation tells ReadCSV how channels are laid out in the file.
type Orientation string

const (
	// ChannelsAsRows stores one channel per row (the original CSV export layout).
	ChannelsAsRows Orientation = "channels"

	// SamplesAsRows stores one sample per row under a header of channel labels.
	SamplesAsRows Orientation = "samples"
)

// ParseOrientation maps a user-facing name to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "channels", "rows", "channels-as-rows":
		return ChannelsAsRows, nil
	case "samples", "columns", "samples-as-rows":
		return SamplesAsRows, nil
	default:
		return "", fmt.Errorf("signal: unknown orientation %q", s)
	}
}

// CSVOptions holds options for table loading.
type CSVOptions struct {
	Orientation Orientation // channel layout (default: ChannelsAsRows)
	Delimiter   rune        // field delimiter (default: ';')

	// SkipIndex drops the sample index: the first row for ChannelsAsRows,
	// the first column for SamplesAsRows.
	SkipIndex bool

	// IndexColumn names a header column to exclude (SamplesAsRows only).
	// It takes precedence over SkipIndex.
	IndexColumn string

	// LabelColumn reads the first field of each row as the channel label
	// (ChannelsAsRows only). Labels are then checked against the Set.
	LabelColumn bool
}

// DefaultCSVOptions returns the layout written by the EDF export: ';'-delimited,
// channels as rows, leading sample-index row.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Orientation: ChannelsAsRows,
		Delimiter:   ';',
		SkipIndex:   true,
	}
}

// LoadCSV reads a Table from a file.
func LoadCSV(filename string, set channels.Set, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file, set, opts)
}

// ReadCSV reads a Table from r according to opts (nil means DefaultCSVOptions).
//
// Errors:
//   - ErrParse for empty input or non-numeric cells.
//   - channels.ErrStructural for count/order/length mismatches.
func ReadCSV(r io.Reader, set channels.Set, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ';'
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // lengths are checked by NewTable with better messages

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	records = dropBlank(records)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrParse)
	}

	switch opts.Orientation {
	case ChannelsAsRows, "":
		return readChannelRows(records, set, opts)
	case SamplesAsRows:
		return readSampleRows(records, set, opts)
	default:
		return nil, fmt.Errorf("signal: unknown orientation %q", opts.Orientation)
	}
}

func readChannelRows(records [][]string, set channels.Set, opts *CSVOptions) (*Table, error) {
	if opts.SkipIndex {
		records = records[1:]
	}

	var labels []string
	if opts.LabelColumn {
		labels = make([]string, len(records))
	}
	series := make([][]float64, len(records))
	for i, rec := range records {
		if opts.LabelColumn {
			if len(rec) == 0 {
				return nil, fmt.Errorf("%w: row %d has no label", ErrParse, i+1)
			}
			labels[i] = unquote(rec[0])
			rec = rec[1:]
		}
		row, err := parseRow(rec, i+1)
		if err != nil {
			return nil, err
		}
		series[i] = row
	}

	return NewTable(set, labels, series)
}

func readSampleRows(records [][]string, set channels.Set, opts *CSVOptions) (*Table, error) {
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = unquote(h)
	}

	skip := -1
	switch {
	case opts.IndexColumn != "":
		for i, h := range header {
			if h == opts.IndexColumn {
				skip = i
				break
			}
		}
		if skip < 0 {
			return nil, fmt.Errorf("%w: index column %q not in header", channels.ErrStructural, opts.IndexColumn)
		}
	case opts.SkipIndex:
		skip = 0
	}

	labels := make([]string, 0, len(header))
	cols := make([]int, 0, len(header))
	for i, h := range header {
		if i == skip {
			continue
		}
		labels = append(labels, h)
		cols = append(cols, i)
	}
	if err := set.Match(labels); err != nil {
		return nil, err
	}

	rows := records[1:]
	series := make([][]float64, len(cols))
	for c := range series {
		series[c] = make([]float64, 0, len(rows))
	}
	for r, rec := range rows {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				channels.ErrStructural, r+2, len(rec), len(header))
		}
		for c, col := range cols {
			v, err := parseCell(rec[col])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %q: %v", ErrParse, r+2, header[col], err)
			}
			series[c] = append(series[c], v)
		}
	}

	return NewTable(set, labels, series)
}

func parseRow(rec []string, line int) ([]float64, error) {
	out := make([]float64, len(rec))
	for k, cell := range rec {
		v, err := parseCell(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d field %d: %v", ErrParse, line, k+1, err)
		}
		out[k] = v
	}

	return out, nil
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(unquote(s), 64)
}

func unquote(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\""))
}

// dropBlank removes rows that hold nothing but whitespace (trailing newlines in exports).
func dropBlank(records [][]string) [][]string {
	out := records[:0]
	for _, rec := range records {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		out = append(out, rec)
	}

	return out
}
