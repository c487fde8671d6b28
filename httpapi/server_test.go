package httpapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/httpapi"
	"github.com/katalvlaran/eegmst/pipeline"
	"github.com/katalvlaran/eegmst/report"
)

var abcd = channels.MustNew("A", "B", "C", "D")

// channelRows is the default layout: index row, then one row per channel.
const channelRows = `0;1;2;3;4;5
1;2;3;4;5;6
2;4;6;8;10;12.5
6;5;4;3;2;1
1;3;2;5;4;6
`

func newServer(t *testing.T) *httpapi.Server {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	layout, err := channels.NewLayout(abcd, map[string]channels.Point{
		"A": {X: 0, Y: 0}, "B": {X: 1, Y: 0}, "C": {X: 0, Y: 1}, "D": {X: 1, Y: 1},
	})
	require.NoError(t, err)
	s, err := httpapi.New(httpapi.Config{
		Pipeline: pipeline.New(abcd, pipeline.WithLogger(quiet)),
		Layout:   layout,
		Logger:   quiet,
	})
	require.NoError(t, err)

	return s
}

func do(s http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	return rec
}

func TestNew_RequiresPipeline(t *testing.T) {
	_, err := httpapi.New(httpapi.Config{})
	assert.ErrorIs(t, err, httpapi.ErrNoPipeline)
}

func TestHealthAndChannels(t *testing.T) {
	s := newServer(t)

	rec := do(s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = do(s, http.MethodGet, "/v1/channels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Channels []string                  `json:"channels"`
		Layout   map[string]channels.Point `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"A", "B", "C", "D"}, body.Channels)
	assert.Equal(t, channels.Point{X: 1, Y: 1}, body.Layout["D"])

	rec = do(s, http.MethodGet, "/v1/analyze", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyze_ChannelRows(t *testing.T) {
	rec := do(newServer(t), http.MethodPost, "/v1/analyze?id=Subject00_1", channelRows)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc report.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Subject00_1", doc.RecordingID)
	assert.Len(t, doc.Edges, 3)
	require.Len(t, doc.Centrality, 4)
	assert.Equal(t, "A", doc.Centrality[0].Channel)
	require.NotNil(t, doc.Edges[0].SourcePos)
	assert.True(t, doc.PageRankConverged)
}

func TestAnalyze_SampleRows(t *testing.T) {
	body := "t,A,B,C,D\n0,1,2,6,1\n1,2,4,5,3\n2,3,6,4,2\n3,4,8,3,5\n"
	rec := do(newServer(t), http.MethodPost, "/v1/analyze?orientation=samples&delimiter=,&skip_index=true", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var doc report.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.NotEmpty(t, doc.RecordingID)
	assert.Len(t, doc.Centrality, 4)
}

func TestAnalyze_Errors(t *testing.T) {
	s := newServer(t)
	cases := []struct {
		name, target, body string
		status             int
	}{
		{"bad orientation", "/v1/analyze?orientation=diagonal", channelRows, http.StatusBadRequest},
		{"bad delimiter", "/v1/analyze?delimiter=%3B%3B", channelRows, http.StatusBadRequest},
		{"bad skip_index", "/v1/analyze?skip_index=maybe", channelRows, http.StatusBadRequest},
		{"empty body", "/v1/analyze", "", http.StatusBadRequest},
		{"not a number", "/v1/analyze", "0;1\n1;x\n2;3\n4;5\n6;7\n", http.StatusBadRequest},
		{"too few channels", "/v1/analyze", "0;1;2\n1;2;3\n3;2;1\n", http.StatusUnprocessableEntity},
		{"constant channel", "/v1/analyze", "0;1;2\n1;2;3\n5;5;5\n3;2;1\n1;3;2\n", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		rec := do(s, http.MethodPost, tc.target, tc.body)
		assert.Equal(t, tc.status, rec.Code, tc.name)
		var eb map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eb), tc.name)
		assert.NotEmpty(t, eb["error"], tc.name)
	}
}

func TestAnalyze_BodyLimit(t *testing.T) {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := httpapi.New(httpapi.Config{
		Pipeline:     pipeline.New(abcd, pipeline.WithLogger(quiet)),
		Logger:       quiet,
		MaxBodyBytes: 16,
	})
	require.NoError(t, err)
	rec := do(s, http.MethodPost, "/v1/analyze", channelRows)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
