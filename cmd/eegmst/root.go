// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/config"
	"github.com/katalvlaran/eegmst/pipeline"
)

// app carries state shared by subcommands once the root has loaded config.
type app struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	log    *slog.Logger
	set    channels.Set
	layout channels.Layout
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "eegmst",
		Short: "Correlation MST and centrality for multichannel EEG",
		Long: `eegmst computes Pearson correlations between EEG channels, turns them into
distances sqrt(2(1-r)), extracts the minimum spanning tree of the complete
channel graph and scores every channel by degree, betweenness, closeness
and PageRank on that tree.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "text or json (overrides config)")

	root.AddCommand(
		newAnalyzeCmd(a),
		newBatchCmd(a),
		newServeCmd(a),
		newChannelsCmd(a),
	)

	return root
}

// load runs before every subcommand.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	log, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	layout, err := cfg.ChannelLayout()
	if err != nil {
		return err
	}

	a.cfg, a.log, a.layout = cfg, log, layout
	a.set = channels.Standard1020()

	return nil
}

func (a *app) pipeline() *pipeline.Pipeline {
	return pipeline.New(a.set, a.cfg.PipelineOptions(a.log)...)
}

// createOutput opens path for writing; "" or "-" means stdout.
func createOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
