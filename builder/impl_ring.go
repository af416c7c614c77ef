// SPDX-License-Identifier: MIT
// Package: nocgen/builder
//
// impl_ring.go - Ring family.
//
// Contract:
//   • Any router count ≥ 1 is accepted; no shape is recorded.
//   • Pass 1, i = 0..R-1: i → (i+1) mod R, outport Right, inport Left.
//   • Pass 2, i = 0..R-1: (i+1) mod R → i, outport Left, inport Right.
//   • Weight DefaultLinkWeight on every link; 2R links in total.
//
// With R = 1 both passes emit a self-link on router 0, and with R = 2 the two
// Right links form a pair of opposite channels; both are kept as emitted so
// that every router always owns exactly one Right and one Left outport.
//
// Deadlock freedom on the ring is left to the consumer's virtual-channel
// policy; the link structure carries no escape mechanism.
//
// Complexity:
//   • Time: O(R). Space: O(R) links.

package builder

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/nocgen/lattice"
	"github.com/katalvlaran/nocgen/topology"
)

// Ring returns the 1-D ring family.
func Ring() Family {
	return Family{
		name:   topology.FamilyRing,
		method: MethodRing,
		layout: func(int) (*lattice.Shape, error) { return nil, nil },
		wire:   wireRing,
	}
}

// wireRing emits the two ring passes.
func wireRing(a *assembly, method string) error {
	n := len(a.routers)

	// Right output to Left input.
	for i := 0; i < n; i++ {
		if err := a.connect(method, i, (i+1)%n, topology.Right, topology.Left); err != nil {
			return err
		}
	}

	// Left output to Right input.
	for i := 0; i < n; i++ {
		if err := a.connect(method, (i+1)%n, i, topology.Left, topology.Right); err != nil {
			return err
		}
	}

	a.cfg.logger.Debug("ring wired", zap.Int("routers", n), zap.Int("int_links", len(a.intLinks)))
	return nil
}
