package verify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nocgen/builder"
	"github.com/katalvlaran/nocgen/topology"
	"github.com/katalvlaran/nocgen/verify"
)

func nodes(kinds ...string) []topology.Endpoint {
	out := make([]topology.Endpoint, 0, len(kinds))
	for i, k := range kinds {
		out = append(out, topology.Controller{Kind: k, Version: i})
	}
	return out
}

func repeat(kind string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = kind
	}
	return out
}

func ring(t *testing.T, n, r int) *topology.Graph {
	t.Helper()
	g, err := builder.BuildRing(nodes(repeat(topology.L1CacheController, n)...), r)
	require.NoError(t, err)
	return g
}

func torus(t *testing.T, r, xs, ys int) *topology.Graph {
	t.Helper()
	g, err := builder.BuildTorusXYZ(nodes(repeat(topology.L1CacheController, 2*r)...), r, xs, ys)
	require.NoError(t, err)
	return g
}

func TestCheck_BuiltGraphsPass(t *testing.T) {
	for _, r := range []int{1, 2, 3, 8, 16} {
		assert.NoError(t, verify.Check(ring(t, 2*r, r)), "ring R=%d", r)
	}
	for _, tc := range []struct{ r, xs, ys int }{
		{1, 1, 1}, {8, 2, 2}, {24, 4, 3}, {60, 3, 4}, {16, 4, 4},
	} {
		assert.NoError(t, verify.Check(torus(t, tc.r, tc.xs, tc.ys)), "torus %+v", tc)
	}
}

func TestCheck_RemainderPolicy(t *testing.T) {
	kinds := append(repeat(topology.L1CacheController, 8), topology.DMAController, topology.DMAController)
	g, err := builder.BuildRing(nodes(kinds...), 4)
	require.NoError(t, err)
	require.NoError(t, verify.Check(g))

	bad := g.Clone()
	bad.ExtLinks[9].NodeType = topology.DirectoryController
	err = verify.Check(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, verify.ErrInvariant))
	assert.Contains(t, err.Error(), "remainder node 9")

	bad = g.Clone()
	bad.ExtLinks[8].RouterID = 2
	assert.ErrorIs(t, verify.Check(bad), verify.ErrInvariant)
}

func TestCheck_DetectsMisplacedNode(t *testing.T) {
	g := ring(t, 8, 4)
	g.ExtLinks[5].RouterID = 0
	err := verify.Check(g)
	require.ErrorIs(t, err, verify.ErrInvariant)
	assert.Contains(t, err.Error(), "node 5 on router 0, want 1")
}

func TestCheck_DetectsDuplicateNodeIndex(t *testing.T) {
	g := ring(t, 8, 4)
	g.ExtLinks[3].NodeIndex = 7
	g.ExtLinks[3].RouterID = 3
	err := verify.Check(g)
	require.ErrorIs(t, err, verify.ErrInvariant)
	assert.Contains(t, err.Error(), "not a permutation")
}

func TestCheck_DetectsLinkIDGap(t *testing.T) {
	g := ring(t, 4, 4)
	g.IntLinks[2].ID += 10
	errs := verify.Violations(g)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "int link at position 6")
}

func TestCheck_DetectsRouterID(t *testing.T) {
	g := ring(t, 4, 4)
	g.Routers[1].ID = 7
	assert.ErrorIs(t, verify.Check(g), verify.ErrInvariant)
}

func TestCheck_DetectsPortMismatch(t *testing.T) {
	g := torus(t, 8, 2, 2)
	g.IntLinks[0].DstInport = topology.Front
	err := verify.Check(g)
	require.ErrorIs(t, err, verify.ErrInvariant)
	assert.Contains(t, err.Error(), "pairs Front with Front")
}

func TestCheck_DetectsWrongNeighbor(t *testing.T) {
	g := ring(t, 5, 5)
	// Right link of router 0 redirected to router 2.
	g.IntLinks[0].Dst = 2
	err := verify.Check(g)
	require.ErrorIs(t, err, verify.ErrInvariant)
	assert.Contains(t, err.Error(), "router 0 Right leads to 2, want 1")
}

func TestCheck_DetectsMissingLinkAndUnreachable(t *testing.T) {
	g := ring(t, 4, 4)
	g.IntLinks = g.IntLinks[:0]
	err := verify.Check(g)
	require.ErrorIs(t, err, verify.ErrInvariant)
	assert.Contains(t, err.Error(), "has 0 links, want 8")
	assert.Contains(t, err.Error(), "unreachable from router 0")
}

func TestCheck_TorusShape(t *testing.T) {
	g := torus(t, 8, 2, 2)
	g.Shape = nil
	assert.ErrorIs(t, verify.Check(g), verify.ErrInvariant)

	g = torus(t, 8, 2, 2)
	g.Shape.Zs = 3
	err := verify.Check(g)
	require.ErrorIs(t, err, verify.ErrInvariant)
	assert.Contains(t, err.Error(), "does not match 8 routers")
}

func TestCheck_NilAndUnknownFamily(t *testing.T) {
	assert.ErrorIs(t, verify.Check(nil), verify.ErrInvariant)

	g := ring(t, 4, 4)
	g.Family = "Mesh"
	err := verify.Check(g)
	require.ErrorIs(t, err, verify.ErrInvariant)
	assert.Contains(t, err.Error(), `unknown family "Mesh"`)
}
