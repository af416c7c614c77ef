// SPDX-License-Identifier: MIT
// Package: nocgen/builder
//
// api.go - thin public entry-point: the Topology Descriptor Emitter.
//
// Design contract (strict):
//   • One orchestrator: Build(nodes, numRouters, family, opts...).
//   • One LinkCounter per call; IDs run 0.. over external links (uniform,
//     then remainder) and then internal links in family emission order.
//   • Every validation runs before the first record is created, so an error
//     never leaves a half-built graph behind. Nothing is returned on error.
//   • Determinism: same inputs and options ⇒ identical graphs.

package builder

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/nocgen/topology"
)

// Build generates the complete topology for nodes attached to numRouters
// routers of the given family.
//
// Stages:
//  1. Validate family, router count and node handles.
//  2. Router Lattice Builder: family layout (torus shape derivation).
//  3. Node Partitioner, then remainder capability check.
//  4. Routers, external links, internal links; one shared counter.
//
// Errors (match with errors.Is):
//   - ErrNilFamily, ErrNilEndpoint, ErrInvalidRouterCount: caller input.
//   - ErrInvalidShape: torus extents do not factor numRouters.
//   - ErrRemainderNotDMA: a trailing node that does not divide evenly is not DMA.
//   - ErrInternalConsistency: generator bug; should be unreachable.
//
// Concurrency: Build keeps all state local; concurrent calls are safe as long
// as they do not share a node slice that is being mutated.
//
// Complexity: O(N + R) time and space.
func Build(nodes []topology.Endpoint, numRouters int, family Family, opts ...BuilderOption) (*topology.Graph, error) {
	cfg := newBuilderConfig(opts...)

	if family.wire == nil || family.layout == nil {
		return nil, builderErrorf(MethodBuild, ErrNilFamily, "zero Family value")
	}
	if numRouters <= 0 {
		return nil, builderErrorf(MethodBuild, ErrInvalidRouterCount, "numRouters=%d", numRouters)
	}
	for i, node := range nodes {
		if node == nil {
			return nil, builderErrorf(MethodBuild, ErrNilEndpoint, "node %d", i)
		}
	}

	shape, err := family.layout(numRouters)
	if err != nil {
		return nil, err
	}

	p, err := Partition(nodes, numRouters)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("nodes partitioned",
		zap.String("family", string(family.name)),
		zap.Int("routers", numRouters),
		zap.Stringer("partition", p))

	a := &assembly{cfg: cfg, shape: shape}
	a.placeRouters(numRouters)

	if err := a.attachEndpoints(p); err != nil {
		return nil, err
	}
	if err := family.wire(a, family.method); err != nil {
		return nil, err
	}

	g := &topology.Graph{
		Family:   family.name,
		Shape:    shape,
		Routers:  a.routers,
		ExtLinks: a.extLinks,
		IntLinks: a.intLinks,
	}
	cfg.logger.Debug("topology built",
		zap.String("family", string(g.Family)),
		zap.Int("routers", g.NumRouters()),
		zap.Int("ext_links", len(g.ExtLinks)),
		zap.Int("int_links", len(g.IntLinks)),
		zap.Int("link_ids", a.counter.Issued()))
	return g, nil
}

// BuildRing is shorthand for Build(nodes, numRouters, Ring(), opts...).
func BuildRing(nodes []topology.Endpoint, numRouters int, opts ...BuilderOption) (*topology.Graph, error) {
	return Build(nodes, numRouters, Ring(), opts...)
}

// BuildTorusXYZ is shorthand for Build(nodes, numRouters, TorusXYZ(numXs, numYs), opts...).
func BuildTorusXYZ(nodes []topology.Endpoint, numRouters, numXs, numYs int, opts ...BuilderOption) (*topology.Graph, error) {
	return Build(nodes, numRouters, TorusXYZ(numXs, numYs), opts...)
}
