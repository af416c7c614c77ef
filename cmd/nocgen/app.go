// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/nocgen/config"
	"github.com/katalvlaran/nocgen/descriptor"
	"github.com/katalvlaran/nocgen/topology"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configFile string
	verbose    bool
	logger     *zap.Logger
	// newLogger builds the logger once flags are parsed.
	newLogger func(verbose bool) (*zap.Logger, error)
}

func newApp() *app {
	return &app{newLogger: defaultLogger}
}

func defaultLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nocgen",
		Short: "Network-on-chip topology generator",
		Args:  cobra.NoArgs,
		// Errors are printed by main.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (yaml, toml or json)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "development logging at debug level")

	cmd.AddCommand(
		a.newGenerate(),
		a.newRoute(),
		a.newStats(),
		newVersion(),
	)
	return cmd
}

// params resolves the generation parameters for cmd.
func (a *app) params(cmd *cobra.Command) (config.Params, error) {
	return config.Load(viper.New(), cmd.Flags(), a.configFile)
}

// graph reads the descriptor file if one is given, otherwise generates the
// graph from the parameters.
func (a *app) graph(cmd *cobra.Command, descriptorFile string) (*topology.Graph, error) {
	if descriptorFile != "" {
		g, err := descriptor.ReadFile(descriptorFile)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("descriptor loaded", zap.String("file", descriptorFile),
			zap.Int("routers", g.NumRouters()))
		return g, nil
	}
	p, err := a.params(cmd)
	if err != nil {
		return nil, err
	}
	return p.Build(a.logger)
}
