// SPDX-License-Identifier: MIT
// Package routing implements the consumer side of the generated topologies:
// the deterministic outport selection a router performs for each family, and
// a Table that follows those decisions hop by hop over a topology.Graph.
//
// Ring: a packet takes the shorter way around; ties go Right.
//
// Torus_XYZ: dimension-order routing. X is resolved first, then Y, then Z.
// Per axis the positive outport (Front, Right, Up) is taken when the forward
// distance is at most half the extent, the negative one otherwise.
//
// Turn rules: a packet may leave through an outport only if it entered
// through Local, through a port of an axis resolved earlier, or through the
// opposite of that outport (i.e. it keeps going the same way). Anything else
// is a turn the deadlock-freedom argument forbids and yields ErrTurnViolation.
package routing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nocgen/lattice"
	"github.com/katalvlaran/nocgen/topology"
)

var (
	// ErrTurnViolation indicates a packet would leave through a port its
	// inport does not allow.
	ErrTurnViolation = errors.New("routing: turn violation")

	// ErrNoRoute indicates the destination cannot be reached: out-of-range
	// router, missing link, unknown family or a forwarding loop.
	ErrNoRoute = errors.New("routing: no route")
)

// RingOutport returns the outport router my uses toward dest on a ring of
// numRouters routers, given the port the packet arrived on.
func RingOutport(numRouters, my, dest int, inport topology.PortDirection) (topology.PortDirection, error) {
	if numRouters < 1 || my < 0 || my >= numRouters || dest < 0 || dest >= numRouters {
		return "", fmt.Errorf("%w: ring of %d, %d -> %d", ErrNoRoute, numRouters, my, dest)
	}
	if my == dest {
		return topology.Local, nil
	}

	half := numRouters / 2
	var out topology.PortDirection
	if dest > my {
		out = topology.Left
		if dest-my <= half {
			out = topology.Right
		}
	} else {
		out = topology.Right
		if my-dest <= half {
			out = topology.Left
		}
	}

	if inport != topology.Local && inport != out.Opposite() {
		return "", fmt.Errorf("%w: router %d cannot send %s after entering via %s", ErrTurnViolation, my, out, inport)
	}
	return out, nil
}

// axisPositive reports whether the positive port of an axis of extent n
// is the one to take from my toward dest (my != dest).
func axisPositive(n, my, dest int) bool {
	return (my > dest && my-dest > n/2) || (my < dest && dest-my <= n/2)
}

// XYZOutport returns the outport router my uses toward dest on a torus of
// the given shape, given the port the packet arrived on.
func XYZOutport(shape lattice.Shape, my, dest int, inport topology.PortDirection) (topology.PortDirection, error) {
	mc, err := shape.CoordOf(my)
	if err != nil {
		return "", fmt.Errorf("%w: source: %v", ErrNoRoute, err)
	}
	dc, err := shape.CoordOf(dest)
	if err != nil {
		return "", fmt.Errorf("%w: destination: %v", ErrNoRoute, err)
	}

	for _, a := range lattice.Axes {
		m, d := mc.Get(a), dc.Get(a)
		if m == d {
			continue
		}
		plus, minus := topology.AxisPorts(a)
		out := minus
		if axisPositive(shape.Extent(a), m, d) {
			out = plus
		}
		if !turnAllowed(a, out, inport) {
			return "", fmt.Errorf("%w: router %d cannot send %s after entering via %s", ErrTurnViolation, my, out, inport)
		}
		return out, nil
	}
	return topology.Local, nil
}

// turnAllowed applies the dimension-order turn rule for an outport on axis a.
func turnAllowed(a lattice.Axis, out, inport topology.PortDirection) bool {
	if inport == topology.Local || inport == out.Opposite() {
		return true
	}
	b, _, ok := topology.AxisOf(inport)
	return ok && b < a
}
