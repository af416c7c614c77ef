// SPDX-License-Identifier: MIT
// Package: nocgen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • linkLatency   = DefaultLinkLatency   (1)
//   • routerLatency = DefaultRouterLatency (1)
//   • logger        = zap.NewNop()

package builder

import "go.uber.org/zap"

// builderConfig aggregates all knobs used by the generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	linkLatency   int
	routerLatency int
	logger        *zap.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		linkLatency:   DefaultLinkLatency,
		routerLatency: DefaultRouterLatency,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
