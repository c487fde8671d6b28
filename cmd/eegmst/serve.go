// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eegmst/httpapi"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyze API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			opts, err := a.cfg.CSVOptions()
			if err != nil {
				return err
			}
			srv, err := httpapi.New(httpapi.Config{
				Pipeline: a.pipeline(),
				Layout:   a.layout,
				CSV:      opts,
				Logger:   a.log,
			})
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := ossignal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
