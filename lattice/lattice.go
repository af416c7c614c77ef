// SPDX-License-Identifier: MIT
// Package lattice maps 3-D router coordinates onto flat router indices.
//
// A router at (x, y, z) in a lattice of extents Xs×Ys×Zs has the index
//
//	z*Xs*Ys + y*Xs + x
//
// and every wrap-around link formula in the torus generator relies on this
// exact mapping. The package performs pure integer arithmetic; it never
// allocates per router and never panics on caller input.
package lattice

import "fmt"

// Derive computes the Z extent from the X and Y extents and the total router
// count, the way the torus generator is configured: only X and Y are given,
// Z is whatever remains.
//
// Requirements: xs > 0, ys > 0, xs*ys ≤ numRouters and xs*ys*zs == numRouters.
// Any violation returns ErrInvalidShape with the offending values.
// Complexity: O(1).
func Derive(xs, ys, numRouters int) (Shape, error) {
	if xs <= 0 || ys <= 0 {
		return Shape{}, fmt.Errorf("%w: xs=%d, ys=%d must be positive", ErrInvalidShape, xs, ys)
	}
	plane := xs * ys
	if plane > numRouters {
		return Shape{}, fmt.Errorf("%w: xs*ys=%d exceeds %d routers", ErrInvalidShape, plane, numRouters)
	}
	zs := numRouters / plane
	if plane*zs != numRouters {
		return Shape{}, fmt.Errorf("%w: xs*ys=%d does not divide %d routers", ErrInvalidShape, plane, numRouters)
	}

	return Shape{Xs: xs, Ys: ys, Zs: zs}, nil
}

// NewShape validates explicit extents. Every extent must be ≥ 1.
func NewShape(xs, ys, zs int) (Shape, error) {
	if xs <= 0 || ys <= 0 || zs <= 0 {
		return Shape{}, fmt.Errorf("%w: extents %dx%dx%d must be positive", ErrInvalidShape, xs, ys, zs)
	}
	return Shape{Xs: xs, Ys: ys, Zs: zs}, nil
}

// Size returns the number of routers in the lattice.
func (s Shape) Size() int {
	return s.Xs * s.Ys * s.Zs
}

// Extent returns the number of routers along axis a.
func (s Shape) Extent(a Axis) int {
	switch a {
	case X:
		return s.Xs
	case Y:
		return s.Ys
	default:
		return s.Zs
	}
}

// InBounds reports whether c lies inside the lattice.
// Complexity: O(1).
func (s Shape) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.Xs &&
		c.Y >= 0 && c.Y < s.Ys &&
		c.Z >= 0 && c.Z < s.Zs
}

// Index flattens c into a router index. Out-of-bounds coordinates return
// ErrOutOfRange instead of aliasing another router.
func (s Shape) Index(c Coord) (int, error) {
	if !s.InBounds(c) {
		return 0, fmt.Errorf("%w: %s not in %dx%dx%d", ErrOutOfRange, c, s.Xs, s.Ys, s.Zs)
	}
	return c.Z*s.Xs*s.Ys + c.Y*s.Xs + c.X, nil
}

// CoordOf is the inverse of Index.
func (s Shape) CoordOf(id int) (Coord, error) {
	if id < 0 || id >= s.Size() {
		return Coord{}, fmt.Errorf("%w: router %d not in [0,%d)", ErrOutOfRange, id, s.Size())
	}
	x := id % s.Xs
	y := (id / s.Xs) % s.Ys
	z := id / (s.Xs * s.Ys)

	return Coord{X: x, Y: y, Z: z}, nil
}

// Step moves c by delta along axis a, wrapping around the torus.
// Negative deltas are allowed.
func (s Shape) Step(c Coord, a Axis, delta int) Coord {
	n := s.Extent(a)
	v := (c.Get(a) + delta) % n
	if v < 0 {
		v += n
	}
	return c.With(a, v)
}

// Walk visits every coordinate once. order names the loop nesting from the
// outermost to the innermost axis, e.g. [Z, Y, X] visits in router-index order.
// order must be a permutation of X, Y, Z. Walk stops at the first error
// returned by fn and returns it unchanged.
// Complexity: O(Size()).
func (s Shape) Walk(order [3]Axis, fn func(c Coord) error) error {
	if !isPermutation(order) {
		return fmt.Errorf("%w: walk order %v is not a permutation of X,Y,Z", ErrInvalidShape, order)
	}
	outer, middle, inner := order[0], order[1], order[2]
	var c Coord
	for i := 0; i < s.Extent(outer); i++ {
		c = c.With(outer, i)
		for j := 0; j < s.Extent(middle); j++ {
			c = c.With(middle, j)
			for k := 0; k < s.Extent(inner); k++ {
				c = c.With(inner, k)
				if err := fn(c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// isPermutation reports whether order names each axis exactly once.
func isPermutation(order [3]Axis) bool {
	var seen [3]bool
	for _, a := range order {
		if a < X || a > Z || seen[a] {
			return false
		}
		seen[a] = true
	}
	return true
}
