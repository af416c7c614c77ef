// SPDX-License-Identifier: MIT
// Package: nocgen/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "go.uber.org/zap"

// BuilderOption customizes a generation run by mutating a builderConfig
// before any record is created.
type BuilderOption func(*builderConfig)

// WithLinkLatency sets the latency of every external and internal link.
// Panics on negative values.
func WithLinkLatency(latency int) BuilderOption {
	if latency < 0 {
		panic("builder: WithLinkLatency(negative)")
	}
	return func(c *builderConfig) {
		c.linkLatency = latency
	}
}

// WithRouterLatency sets the latency of every router.
// Panics on negative values.
func WithRouterLatency(latency int) BuilderOption {
	if latency < 0 {
		panic("builder: WithRouterLatency(negative)")
	}
	return func(c *builderConfig) {
		c.routerLatency = latency
	}
}

// WithLogger routes the generator's debug output to l. Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
