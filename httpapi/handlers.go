// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/distance"
	"github.com/katalvlaran/eegmst/pipeline"
	"github.com/katalvlaran/eegmst/report"
	"github.com/katalvlaran/eegmst/signal"
)

// errBadRequest marks query parameter problems.
var errBadRequest = errors.New("httpapi: bad request")

type errorBody struct {
	Error string `json:"error"`
}

type channelsBody struct {
	Channels []string                  `json:"channels"`
	Layout   map[string]channels.Point `json:"layout,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChannels(w http.ResponseWriter, _ *http.Request) {
	body := channelsBody{Channels: s.cfg.Pipeline.Channels().Names()}
	if s.cfg.Layout.Set().Len() > 0 {
		body.Layout = s.cfg.Layout.Positions()
	}
	writeJSON(w, http.StatusOK, body)
}

// handleAnalyze parses the CSV body and runs one recording.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	opts, err := s.csvOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	table, err := signal.ReadCSV(body, s.cfg.Pipeline.Channels(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.cfg.Pipeline.Run(r.Context(), pipeline.Recording{ID: r.URL.Query().Get("id"), Table: table})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	doc, err := report.NewDocument(res, s.cfg.Layout)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// csvOptions overlays query parameters on the server defaults.
func (s *Server) csvOptions(r *http.Request) (*signal.CSVOptions, error) {
	opts := *s.cfg.CSV
	q := r.URL.Query()
	if v := q.Get("orientation"); v != "" {
		o, err := signal.ParseOrientation(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		opts.Orientation = o
	}
	if v := q.Get("delimiter"); v != "" {
		if utf8.RuneCountInString(v) != 1 {
			return nil, fmt.Errorf("%w: delimiter %q must be one character", errBadRequest, v)
		}
		opts.Delimiter, _ = utf8.DecodeRuneInString(v)
	}
	if v := q.Get("skip_index"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: skip_index %q", errBadRequest, v)
		}
		opts.SkipIndex = b
	}
	if v := q.Get("index_column"); v != "" {
		opts.IndexColumn = v
	}

	return &opts, nil
}

// fail maps an error to a status code and writes it.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("analyze failed", "err", err, "path", r.URL.Path)
	} else {
		s.log.Debug("request rejected", "status", status, "err", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadRequest), errors.Is(err, signal.ErrParse):
		return http.StatusBadRequest
	case errors.Is(err, channels.ErrStructural), errors.Is(err, distance.ErrDegenerateSignal):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
