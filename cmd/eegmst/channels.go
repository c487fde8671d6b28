// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eegmst/report"
)

func newChannelsCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "Print the channel set and electrode layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return report.WriteJSON(cmd.OutOrStdout(), struct {
					Channels []string    `json:"channels"`
					Layout   interface{} `json:"layout"`
				}{a.set.Names(), a.layout.Positions()})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tCHANNEL\tX\tY")
			for i, name := range a.set.Names() {
				p, _ := a.layout.Position(name)
				fmt.Fprintf(tw, "%d\t%s\t%g\t%g\n", i+1, name, p.X, p.Y)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
