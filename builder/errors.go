// SPDX-License-Identifier: MIT
// Package: nocgen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`; sentinels carry no parameters.
//   • Every error is fatal for the run: Build returns no partial Graph.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nocgen/lattice"
)

// ErrInvalidRouterCount indicates numRouters ≤ 0: nodes cannot be partitioned.
// Usage: if errors.Is(err, ErrInvalidRouterCount) { /* fix num_cpus */ }.
var ErrInvalidRouterCount = errors.New("builder: router count must be positive")

// ErrRemainderNotDMA indicates a node that falls into the remainder subset
// (the trailing N mod R nodes pinned to router 0) is not a DMA controller.
// Detected before any link is emitted.
var ErrRemainderNotDMA = errors.New("builder: remainder node is not a DMA controller")

// ErrInvalidShape indicates torus extents that cannot factor the router count.
// It is the lattice sentinel, re-exported so callers need one import.
var ErrInvalidShape = lattice.ErrInvalidShape

// ErrInternalConsistency indicates a structural check that cannot fail for
// valid arithmetic did fail (router index out of range, a router receiving
// more uniform nodes than PerRouter). It signals a generator bug, not bad input.
var ErrInternalConsistency = errors.New("builder: internal consistency violated")

// ErrNilFamily indicates Build was called with a zero Family value.
var ErrNilFamily = errors.New("builder: family is required")

// ErrNilEndpoint indicates a nil entry in the node list.
var ErrNilEndpoint = errors.New("builder: nil endpoint")

// builderErrorf wraps sentinel err with method context:
// "<method>: <formatted message>: <err>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
