// SPDX-License-Identifier: MIT
// Package: nocgen/builder
//
// impl_external.go - External Link Builder.
//
// Contract:
//   • Uniform node i goes to router i mod R at level i div R; level must stay
//     below PerRouter (else ErrInternalConsistency).
//   • Remainder node j goes to RemainderRouterID and must be a DMA controller
//     (else ErrRemainderNotDMA). All remainder nodes are checked before the
//     first link is created, so a bad remainder leaves the counter untouched.
//   • Exactly N links, IDs from the shared counter, uniform before remainder.
//
// Complexity:
//   • Time: O(N). Space: O(N) for the link slice.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/nocgen/topology"
)

// checkRemainder validates every remainder node up front.
func checkRemainder(p Partitioning[topology.Endpoint]) error {
	base := len(p.Uniform)
	for j, node := range p.Rest {
		if node.Type() != RemainderNodeType {
			return builderErrorf(MethodAttach, ErrRemainderNotDMA,
				"node %d (%s) has type %q", base+j, nodeName(node, base+j), node.Type())
		}
	}
	return nil
}

// attachEndpoints appends one external link per node to a.extLinks.
func (a *assembly) attachEndpoints(p Partitioning[topology.Endpoint]) error {
	if err := checkRemainder(p); err != nil {
		return err
	}

	numRouters := len(a.routers)
	a.extLinks = make([]topology.ExternalLink, 0, len(p.Uniform)+len(p.Rest))

	for i, node := range p.Uniform {
		level, routerID := i/numRouters, i%numRouters
		if level >= p.PerRouter {
			return builderErrorf(MethodAttach, ErrInternalConsistency,
				"node %d at level %d, only %d per router", i, level, p.PerRouter)
		}
		if err := a.attach(i, node, routerID); err != nil {
			return err
		}
	}

	base := len(p.Uniform)
	for j, node := range p.Rest {
		if j >= p.Remainder {
			return builderErrorf(MethodAttach, ErrInternalConsistency,
				"remainder index %d ≥ remainder %d", j, p.Remainder)
		}
		if err := a.attach(base+j, node, RemainderRouterID); err != nil {
			return err
		}
	}

	a.cfg.logger.Debug("endpoints attached",
		zap.Int("uniform", len(p.Uniform)),
		zap.Int("remainder", len(p.Rest)),
		zap.Int("per_router", p.PerRouter))
	return nil
}

// attach creates the external link for the node at index idx.
func (a *assembly) attach(idx int, node topology.Endpoint, routerID int) error {
	if routerID < 0 || routerID >= len(a.routers) {
		return builderErrorf(MethodAttach, ErrInternalConsistency,
			"router %d not in [0,%d)", routerID, len(a.routers))
	}
	a.extLinks = append(a.extLinks, topology.ExternalLink{
		ID:        a.counter.Next(),
		NodeIndex: idx,
		NodeType:  node.Type(),
		NodeName:  nodeName(node, idx),
		RouterID:  routerID,
		Latency:   a.cfg.linkLatency,
	})
	return nil
}

// nodeName labels a node for links and messages: its String() if it has
// one, "<type>@<index>" otherwise.
func nodeName(node topology.Endpoint, idx int) string {
	if s, ok := node.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%s@%d", node.Type(), idx)
}
