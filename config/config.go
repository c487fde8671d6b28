// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eegmst/centrality"
	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/mst"
	"github.com/katalvlaran/eegmst/pipeline"
	"github.com/katalvlaran/eegmst/signal"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by Load.
const (
	EnvLogLevel    = "EEGMST_LOG_LEVEL"
	EnvLogFormat   = "EEGMST_LOG_FORMAT"
	EnvWorkers     = "EEGMST_WORKERS"
	EnvAddr        = "EEGMST_ADDR"
	EnvDelimiter   = "EEGMST_DELIMITER"
	EnvOrientation = "EEGMST_ORIENTATION"
)

// Config is the complete application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
	Input    InputConfig    `yaml:"input"`
	Batch    BatchConfig    `yaml:"batch"`
	MST      MSTConfig      `yaml:"mst"`
	PageRank PageRankConfig `yaml:"pagerank"`

	// Layout overrides individual electrode positions of the 10–20 layout.
	Layout map[string]channels.Point `yaml:"layout,omitempty"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// InputConfig describes the CSV files.
type InputConfig struct {
	Delimiter   string `yaml:"delimiter"`
	Orientation string `yaml:"orientation"`
	SkipIndex   bool   `yaml:"skip_index"`
	IndexColumn string `yaml:"index_column,omitempty"`
	LabelColumn bool   `yaml:"label_column,omitempty"`
}

// BatchConfig bounds batch concurrency; 0 means GOMAXPROCS.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// MSTConfig selects the spanning-tree algorithm.
type MSTConfig struct {
	Method string `yaml:"method"`
}

// PageRankConfig holds the power-iteration parameters.
type PageRankConfig struct {
	Alpha         float64 `yaml:"alpha"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{Addr: ":8080"},
		Input: InputConfig{
			Delimiter:   ";",
			Orientation: string(signal.ChannelsAsRows),
			SkipIndex:   true,
		},
		MST: MSTConfig{Method: string(mst.MethodKruskal)},
		PageRank: PageRankConfig{
			Alpha:         centrality.DefaultAlpha,
			Tolerance:     centrality.DefaultTolerance,
			MaxIterations: centrality.DefaultMaxIterations,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and environment overrides, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays EEGMST_* variables.
func (c *Config) applyEnv() {
	c.Log.Level = getEnvOrDefault(EnvLogLevel, c.Log.Level)
	c.Log.Format = getEnvOrDefault(EnvLogFormat, c.Log.Format)
	c.Server.Addr = getEnvOrDefault(EnvAddr, c.Server.Addr)
	c.Input.Delimiter = getEnvOrDefault(EnvDelimiter, c.Input.Delimiter)
	c.Input.Orientation = getEnvOrDefault(EnvOrientation, c.Input.Orientation)
	c.Batch.Workers = getEnvIntOrDefault(EnvWorkers, c.Batch.Workers)
}

// Validate checks every field that can be checked without I/O.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := c.CSVOptions(); err != nil {
		return err
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Batch.Workers)
	}
	switch mst.Method(c.MST.Method) {
	case mst.MethodKruskal, mst.MethodPrim:
	default:
		return fmt.Errorf("%w: mst method %q", ErrInvalidConfig, c.MST.Method)
	}
	if _, err := centrality.NewPageRankOptions(c.PageRankOptions()...); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.ChannelLayout(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// CSVOptions converts the input section.
func (c *Config) CSVOptions() (*signal.CSVOptions, error) {
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return nil, fmt.Errorf("%w: delimiter %q must be a single character", ErrInvalidConfig, c.Input.Delimiter)
	}
	delim, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	orient, err := signal.ParseOrientation(c.Input.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &signal.CSVOptions{
		Orientation: orient,
		Delimiter:   delim,
		SkipIndex:   c.Input.SkipIndex,
		IndexColumn: c.Input.IndexColumn,
		LabelColumn: c.Input.LabelColumn,
	}, nil
}

// PageRankOptions converts the pagerank section.
func (c *Config) PageRankOptions() []centrality.PageRankOption {
	return []centrality.PageRankOption{
		centrality.WithAlpha(c.PageRank.Alpha),
		centrality.WithTolerance(c.PageRank.Tolerance),
		centrality.WithMaxIterations(c.PageRank.MaxIterations),
	}
}

// PipelineOptions returns the pipeline settings of this configuration.
func (c *Config) PipelineOptions(log *slog.Logger) []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithLogger(log),
		pipeline.WithMethod(mst.Method(c.MST.Method)),
		pipeline.WithPageRank(c.PageRankOptions()...),
	}
}

// ChannelLayout returns the 10–20 layout with any configured overrides applied.
func (c *Config) ChannelLayout() (channels.Layout, error) {
	base := channels.Standard1020Layout()
	if len(c.Layout) == 0 {
		return base, nil
	}
	merged := base.Positions()
	for name, p := range c.Layout {
		merged[name] = p
	}

	return channels.NewLayout(base.Set(), merged)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
