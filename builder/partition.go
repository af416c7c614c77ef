// SPDX-License-Identifier: MIT
// Package: nocgen/builder
//
// partition.go - Node Partitioner.
//
// Contract:
//   • numRouters ≥ 1 (else ErrInvalidRouterCount).
//   • PerRouter = N div R, Remainder = N mod R.
//   • Uniform = first N-Remainder nodes, Rest = trailing Remainder nodes,
//     both in input order; Uniform ++ Rest == nodes.
//   • N < R is legal: PerRouter = 0 and every node lands in Rest.
//
// Complexity:
//   • Time: O(N) (one copy of the input).
//   • Space: O(N).

package builder

import "fmt"

// Partitioning is the result of splitting a node list over a router count.
type Partitioning[T any] struct {
	// PerRouter is how many uniform nodes each router receives.
	PerRouter int
	// Remainder is len(Rest): nodes that do not divide evenly.
	Remainder int
	// Uniform holds the nodes distributed round-robin over all routers.
	Uniform []T
	// Rest holds the nodes pinned to router 0.
	Rest []T
}

// Partition splits nodes into the uniformly distributed subset and the
// remainder subset. It is a pure function; the result does not alias nodes.
func Partition[T any](nodes []T, numRouters int) (Partitioning[T], error) {
	if numRouters <= 0 {
		return Partitioning[T]{}, builderErrorf(MethodPartition, ErrInvalidRouterCount, "numRouters=%d", numRouters)
	}

	n := len(nodes)
	perRouter, remainder := n/numRouters, n%numRouters
	cut := n - remainder

	// One backing array; the two subsets are disjoint windows of it.
	all := make([]T, n)
	copy(all, nodes)

	return Partitioning[T]{
		PerRouter: perRouter,
		Remainder: remainder,
		Uniform:   all[:cut:cut],
		Rest:      all[cut:],
	}, nil
}

// String summarizes the partition sizes, e.g. "uniform=8 (2/router) rest=1".
func (p Partitioning[T]) String() string {
	return fmt.Sprintf("uniform=%d (%d/router) rest=%d", len(p.Uniform), p.PerRouter, p.Remainder)
}
