// SPDX-License-Identifier: MIT
// Package: nocgen/builder
//
// impl_torus.go - 3-D Torus family for X→Y→Z dimension-order routing.
//
// Contract:
//   • Shape: xs > 0, ys > 0, xs*ys ≤ R, zs = R/(xs*ys), xs*ys*zs == R
//     (else ErrInvalidShape, before any record is created).
//   • Router (x,y,z) has index z*xs*ys + y*xs + x.
//   • Axes are wired in the fixed order X, Y, Z; each axis gets two passes
//     over every cell (table below), coordinates wrap modulo the extent.
//
//	axis  pass 1                 pass 2                 cell loops (outer→inner)
//	X     Front→Back  x → x+1    Back→Front  x+1 → x    z, y, x
//	Y     Left→Right  y+1 → y    Right→Left  y → y+1    z, x, y
//	Z     Up→Down     z → z+1    Down→Up     z+1 → z    y, x, z
//
//   • Front, Right and Up always lead toward +1 on their axis.
//   • 6*xs*ys*zs links; each router owns one outport of each label.
//
// The emission order is canonical, but routing order is not enforced here:
// deadlock freedom holds only if the consuming router model routes X before
// Y before Z (see package routing for that side of the contract).
//
// Complexity:
//   • Time: O(R). Space: O(R) links.

package builder

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/nocgen/lattice"
	"github.com/katalvlaran/nocgen/topology"
)

// axisPass is one sweep of links along an axis.
type axisPass struct {
	out, in topology.PortDirection
	forward bool // true: c → c+1; false: c+1 → c
}

// axisPlan fixes the loop nesting and the two passes of one axis.
type axisPlan struct {
	axis   lattice.Axis
	order  [3]lattice.Axis
	passes [2]axisPass
}

// torusPlan lists the axes in priority order. Changing it changes link IDs.
var torusPlan = [3]axisPlan{
	{
		axis:  lattice.X,
		order: [3]lattice.Axis{lattice.Z, lattice.Y, lattice.X},
		passes: [2]axisPass{
			{out: topology.Front, in: topology.Back, forward: true},
			{out: topology.Back, in: topology.Front, forward: false},
		},
	},
	{
		axis:  lattice.Y,
		order: [3]lattice.Axis{lattice.Z, lattice.X, lattice.Y},
		passes: [2]axisPass{
			{out: topology.Left, in: topology.Right, forward: false},
			{out: topology.Right, in: topology.Left, forward: true},
		},
	},
	{
		axis:  lattice.Z,
		order: [3]lattice.Axis{lattice.Y, lattice.X, lattice.Z},
		passes: [2]axisPass{
			{out: topology.Up, in: topology.Down, forward: true},
			{out: topology.Down, in: topology.Up, forward: false},
		},
	},
}

// TorusXYZ returns the 3-D torus family with numXs × numYs routers per
// Z-plane; the Z extent is derived from the router count passed to Build.
func TorusXYZ(numXs, numYs int) Family {
	return Family{
		name:   topology.FamilyTorusXYZ,
		method: MethodTorusXYZ,
		layout: func(numRouters int) (*lattice.Shape, error) {
			s, err := lattice.Derive(numXs, numYs, numRouters)
			if err != nil {
				return nil, builderErrorf(MethodTorusXYZ, err, "xs=%d ys=%d routers=%d", numXs, numYs, numRouters)
			}
			return &s, nil
		},
		wire: wireTorus,
	}
}

// wireTorus emits all axes in torusPlan order.
func wireTorus(a *assembly, method string) error {
	if a.shape == nil {
		return builderErrorf(method, ErrInternalConsistency, "no lattice shape")
	}
	s := *a.shape

	for _, plan := range torusPlan {
		before := len(a.intLinks)
		for _, pass := range plan.passes {
			err := s.Walk(plan.order, func(c lattice.Coord) error {
				return a.connectStep(method, s, plan.axis, c, pass)
			})
			if err != nil {
				return err
			}
		}
		a.cfg.logger.Debug("torus axis wired",
			zap.Stringer("axis", plan.axis),
			zap.Int("links", len(a.intLinks)-before))
	}
	return nil
}

// connectStep emits the pass link between c and its +1 neighbor on axis.
func (a *assembly) connectStep(method string, s lattice.Shape, axis lattice.Axis, c lattice.Coord, pass axisPass) error {
	here, err := s.Index(c)
	if err != nil {
		return builderErrorf(method, ErrInternalConsistency, "%v", err)
	}
	next, err := s.Index(s.Step(c, axis, 1))
	if err != nil {
		return builderErrorf(method, ErrInternalConsistency, "%v", err)
	}
	if pass.forward {
		return a.connect(method, here, next, pass.out, pass.in)
	}
	return a.connect(method, next, here, pass.out, pass.in)
}
