// SPDX-License-Identifier: MIT
// Package: nocgen/topology
//
// ports.go - port direction labels and their axis bindings.

package topology

import "github.com/katalvlaran/nocgen/lattice"

// PortDirection labels a router port. Links always pair an outport with the
// opposite inport: a link leaving through "Right" enters through "Left".
type PortDirection string

// Port direction labels understood by the consuming router model.
const (
	Local PortDirection = "Local"
	Left  PortDirection = "Left"
	Right PortDirection = "Right"
	Up    PortDirection = "Up"
	Down  PortDirection = "Down"
	Front PortDirection = "Front"
	Back  PortDirection = "Back"
)

// Opposite returns the label a link leaving through p enters with.
// Local and unknown labels map to themselves.
func (p PortDirection) Opposite() PortDirection {
	switch p {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	case Front:
		return Back
	case Back:
		return Front
	default:
		return p
	}
}

// AxisPorts returns the outport that moves a packet one step in the positive
// direction of axis a, and the one that moves it in the negative direction.
//
//	X: Front (+) / Back (-)
//	Y: Right (+) / Left (-)
//	Z: Up    (+) / Down (-)
//
// The ring uses the Y pair: Right leads from router i to i+1.
func AxisPorts(a lattice.Axis) (plus, minus PortDirection) {
	switch a {
	case lattice.X:
		return Front, Back
	case lattice.Y:
		return Right, Left
	default:
		return Up, Down
	}
}

// AxisOf reports which torus axis a port belongs to. ok is false for Local
// and unknown labels.
func AxisOf(p PortDirection) (a lattice.Axis, positive bool, ok bool) {
	switch p {
	case Front:
		return lattice.X, true, true
	case Back:
		return lattice.X, false, true
	case Right:
		return lattice.Y, true, true
	case Left:
		return lattice.Y, false, true
	case Up:
		return lattice.Z, true, true
	case Down:
		return lattice.Z, false, true
	default:
		return 0, false, false
	}
}
