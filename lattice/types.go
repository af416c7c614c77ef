// SPDX-License-Identifier: MIT
// Package: nocgen/lattice
//
// types.go - shape, coordinate and axis types plus sentinel errors.

package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations.
var (
	// ErrInvalidShape indicates that the requested extents cannot describe
	// a lattice of the given router count (non-positive extents, or a
	// product that does not factor the router count exactly).
	ErrInvalidShape = errors.New("lattice: invalid shape")

	// ErrOutOfRange indicates a coordinate or router index outside the lattice.
	ErrOutOfRange = errors.New("lattice: index out of range")
)

// Axis names one lattice dimension. The declaration order X, Y, Z is the
// dimension priority used for link emission and dimension-order routing.
type Axis int

const (
	// X is the first (innermost) dimension.
	X Axis = iota
	// Y is the second dimension.
	Y
	// Z is the third (outermost) dimension.
	Z
)

// Axes lists all dimensions in priority order.
var Axes = [3]Axis{X, Y, Z}

// String returns "X", "Y" or "Z".
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Coord is a position in the lattice.
type Coord struct {
	X, Y, Z int
}

// Get returns the component of c along axis a.
func (c Coord) Get(a Axis) int {
	switch a {
	case X:
		return c.X
	case Y:
		return c.Y
	default:
		return c.Z
	}
}

// With returns a copy of c whose component along a is set to v.
func (c Coord) With(a Axis, v int) Coord {
	switch a {
	case X:
		c.X = v
	case Y:
		c.Y = v
	default:
		c.Z = v
	}
	return c
}

// String formats c as "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Shape holds the extents of a 3-D lattice. Shapes are immutable values;
// a valid Shape has every extent ≥ 1.
type Shape struct {
	Xs int `json:"xs" yaml:"xs"`
	Ys int `json:"ys" yaml:"ys"`
	Zs int `json:"zs" yaml:"zs"`
}
