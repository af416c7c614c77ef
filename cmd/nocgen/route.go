// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nocgen/config"
	"github.com/katalvlaran/nocgen/routing"
)

func (a *app) newRoute() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "route <src> <dst>",
		Short: "Trace the deterministic route between two routers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("source router: %w", err)
			}
			dst, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("destination router: %w", err)
			}
			cmd.SilenceUsage = true

			g, err := a.graph(cmd, file)
			if err != nil {
				return err
			}
			tbl, err := routing.NewTable(g)
			if err != nil {
				return err
			}
			r, err := tbl.Trace(src, dst)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d -> %d: %d hops\n", src, dst, r.Links())
			rows := make([][]string, 0, len(r))
			for _, h := range r {
				link := "-"
				if h.Link >= 0 {
					link = strconv.Itoa(h.Link)
				}
				rows = append(rows, []string{strconv.Itoa(h.Router), string(h.Inport), string(h.Outport), link})
			}
			render(out, []string{"Router", "In", "Out", "Link"}, rows)
			return nil
		},
	}
	config.BindFlags(cmd.Flags())
	cmd.Flags().StringVarP(&file, "descriptor", "d", "", "read the graph from a descriptor file instead of generating it")
	return cmd
}
