// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nocgen/config"
	"github.com/katalvlaran/nocgen/stats"
	"github.com/katalvlaran/nocgen/verify"
)

func (a *app) newStats() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report hop statistics and invariant violations of a topology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := a.graph(cmd, file)
			if err != nil {
				return err
			}
			st, err := stats.Compute(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			render(out, []string{"Metric", "Value"}, [][]string{
				{"family", string(st.Family)},
				{"routers", strconv.Itoa(st.Routers)},
				{"external links", strconv.Itoa(st.ExternalLinks)},
				{"internal links", strconv.Itoa(st.InternalLinks)},
				{"max endpoints per router", strconv.Itoa(st.MaxEndpoints)},
				{"diameter", strconv.Itoa(st.Diameter)},
				{"mean hops", strconv.FormatFloat(st.MeanHops, 'f', 3, 64)},
				{"strongly connected", strconv.FormatBool(st.StronglyConnected)},
				{"components", strconv.Itoa(st.Components)},
			})

			violations := verify.Violations(g)
			for _, v := range violations {
				fmt.Fprintln(out, v)
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d invariant violations", len(violations))
			}
			return nil
		},
	}
	config.BindFlags(cmd.Flags())
	cmd.Flags().StringVarP(&file, "descriptor", "d", "", "read the graph from a descriptor file instead of generating it")
	return cmd
}
