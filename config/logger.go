// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps debug/info/warn/error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("config: log level %q", s)
	}

	return l, nil
}

// NewLogger returns a slog.Logger writing to w at level in format.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("config: log format %q", format)
	}
}

// Logger builds the logger described by the log section.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	return NewLogger(w, c.Log.Level, c.Log.Format)
}
