package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nocgen/builder"
	"github.com/katalvlaran/nocgen/stats"
	"github.com/katalvlaran/nocgen/topology"
)

func endpoints(n int) []topology.Endpoint {
	out := make([]topology.Endpoint, n)
	for i := range out {
		out[i] = topology.Controller{Kind: topology.L1CacheController, Version: i}
	}
	return out
}

func TestCompute_Ring(t *testing.T) {
	g, err := builder.BuildRing(endpoints(16), 8)
	require.NoError(t, err)

	st, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, topology.FamilyRing, st.Family)
	assert.Equal(t, 8, st.Routers)
	assert.Equal(t, 16, st.InternalLinks)
	assert.Equal(t, 16, st.ExternalLinks)
	assert.Equal(t, 4, st.Diameter)
	// From any router: 1,1,2,2,3,3,4 hops.
	assert.InDelta(t, 16.0/7.0, st.MeanHops, 1e-9)
	assert.True(t, st.StronglyConnected)
	assert.Equal(t, 1, st.Components)
	assert.Zero(t, st.Unreachable)
	assert.Equal(t, 2, st.MaxEndpoints)
}

func TestCompute_Torus(t *testing.T) {
	g, err := builder.BuildTorusXYZ(endpoints(8), 8, 2, 2)
	require.NoError(t, err)

	st, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 48, st.InternalLinks)
	assert.Equal(t, 3, st.Diameter)
	// 3 neighbors at 1 hop, 3 at 2, 1 at 3.
	assert.InDelta(t, 12.0/7.0, st.MeanHops, 1e-9)
	assert.True(t, st.StronglyConnected)

	g, err = builder.BuildTorusXYZ(endpoints(60), 60, 3, 4)
	require.NoError(t, err)
	st, err = stats.Compute(g)
	require.NoError(t, err)
	// 1 (x of 3) + 2 (y of 4) + 2 (z of 5).
	assert.Equal(t, 5, st.Diameter)
}

func TestCompute_SingleRouter(t *testing.T) {
	g, err := builder.BuildRing(endpoints(3), 1)
	require.NoError(t, err)

	st, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 2, st.InternalLinks)
	assert.Zero(t, st.Diameter)
	assert.Zero(t, st.MeanHops)
	assert.True(t, st.StronglyConnected)
	assert.Equal(t, 3, st.MaxEndpoints)
}

func TestCompute_Disconnected(t *testing.T) {
	g, err := builder.BuildRing(endpoints(4), 4)
	require.NoError(t, err)
	g.IntLinks = g.IntLinks[:4] // Right links only: still a directed cycle

	st, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Diameter)
	assert.True(t, st.StronglyConnected)

	g.IntLinks = g.IntLinks[:3] // break the cycle between 3 and 0
	st, err = stats.Compute(g)
	require.NoError(t, err)
	assert.False(t, st.StronglyConnected)
	assert.Equal(t, 4, st.Components)
	assert.Equal(t, 6, st.Unreachable)
}

func TestCompute_Errors(t *testing.T) {
	_, err := stats.Compute(nil)
	assert.ErrorIs(t, err, stats.ErrBadGraph)

	g, err := builder.BuildRing(endpoints(4), 4)
	require.NoError(t, err)
	g.IntLinks[0].Dst = 9
	_, err = stats.Compute(g)
	assert.ErrorIs(t, err, stats.ErrBadGraph)
}
