// SPDX-License-Identifier: MIT
// Package: nocgen/builder
//
// family.go - network families and the per-run assembly they wire into.
//
// A Family bundles two steps:
//   • layout: validate the router count for this family and derive its shape
//     (Router Lattice Builder). Runs before any record is created.
//   • wire:   emit the internal links into the assembly (Internal Link
//     Generator). Runs after routers and external links exist.

package builder

import (
	"github.com/katalvlaran/nocgen/lattice"
	"github.com/katalvlaran/nocgen/topology"
)

// Family describes one network family. Obtain values from Ring or TorusXYZ;
// the zero Family is rejected by Build with ErrNilFamily. method prefixes the
// errors its layout and wiring report.
type Family struct {
	name   topology.Family
	method string
	layout func(numRouters int) (*lattice.Shape, error)
	wire   func(a *assembly, method string) error
}

// Name returns the family tag recorded in the Graph.
func (f Family) Name() topology.Family { return f.name }

// assembly is the mutable state of one generation run. It owns the link
// counter, so two runs never share identifiers.
type assembly struct {
	cfg     builderConfig
	counter topology.LinkCounter
	shape   *lattice.Shape

	routers  []topology.Router
	extLinks []topology.ExternalLink
	intLinks []topology.InternalLink
}

// placeRouters creates routers 0..n-1 with the configured latency.
func (a *assembly) placeRouters(n int) {
	a.routers = make([]topology.Router, n)
	for i := range a.routers {
		a.routers[i] = topology.Router{ID: i, Latency: a.cfg.routerLatency}
	}
}

// connect appends one internal link src→dst leaving through out and entering
// through in. Indices outside the router set are ErrInternalConsistency.
func (a *assembly) connect(method string, src, dst int, out, in topology.PortDirection) error {
	n := len(a.routers)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return builderErrorf(method, ErrInternalConsistency,
			"link %d->%d (%s->%s) outside [0,%d)", src, dst, out, in, n)
	}
	a.intLinks = append(a.intLinks, topology.InternalLink{
		ID:         a.counter.Next(),
		Src:        src,
		Dst:        dst,
		SrcOutport: out,
		DstInport:  in,
		Latency:    a.cfg.linkLatency,
		Weight:     DefaultLinkWeight,
	})
	return nil
}
