// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/nocgen/config"
	"github.com/katalvlaran/nocgen/descriptor"
	"github.com/katalvlaran/nocgen/fsconfig"
	"github.com/katalvlaran/nocgen/routing"
	"github.com/katalvlaran/nocgen/verify"
)

func (a *app) newGenerate() *cobra.Command {
	var nodes bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a topology, verify it and optionally write its descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.params(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			g, err := p.Build(a.logger)
			if err != nil {
				return err
			}
			if err := verify.Check(g); err != nil {
				return err
			}
			mem, err := p.MemBytes()
			if err != nil {
				return err
			}
			var reg fsconfig.Table
			if err := fsconfig.RegisterTopology(&reg, p.NumCPUs, mem); err != nil {
				return err
			}
			if p.Output != "" {
				if err := descriptor.WriteFile(p.Output, g); err != nil {
					return err
				}
				a.logger.Info("descriptor written", zap.String("file", p.Output),
					zap.Int("links", g.NumLinks()))
			}

			tbl, err := routing.NewTable(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d routers, %d external links, %d internal links\n",
				g.Family, g.NumRouters(), len(g.ExtLinks), len(g.IntLinks))
			rows := make([][]string, 0, g.NumRouters())
			for _, r := range g.Routers {
				var names []string
				for _, l := range g.Attached(r.ID) {
					names = append(names, l.NodeName)
				}
				var ports []string
				for _, port := range tbl.Ports(r.ID) {
					l, _ := tbl.Link(r.ID, port)
					ports = append(ports, fmt.Sprintf("%s->%d", port, l.Dst))
				}
				rows = append(rows, []string{
					strconv.Itoa(r.ID),
					strings.Join(names, " "),
					strings.Join(ports, " "),
				})
			}
			render(out, []string{"Router", "Endpoints", "Outports"}, rows)

			if nodes {
				rows = rows[:0]
				for _, n := range reg.Nodes {
					rows = append(rows, []string{
						strconv.Itoa(n.ID),
						fmt.Sprint(n.CPUs),
						fsconfig.FormatSize(n.MemBytes),
					})
				}
				render(out, []string{"Node", "CPUs", "Memory"}, rows)
			}
			return nil
		},
	}
	config.BindFlags(cmd.Flags())
	cmd.Flags().BoolVar(&nodes, "nodes", false, "also print the per-node memory registration")
	return cmd
}

// render prints a borderless, left-aligned table.
func render(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}
