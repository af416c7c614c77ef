package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nocgen/bfs"
	"github.com/katalvlaran/nocgen/builder"
	"github.com/katalvlaran/nocgen/topology"
)

// ring returns an n-router ring without endpoints.
func ring(t *testing.T, n int) *topology.Graph {
	t.Helper()
	g, err := builder.BuildRing(nil, n)
	require.NoError(t, err)
	return g
}

// TestBFS_RingDepths checks shortest hop counts on a bidirectional ring.
func TestBFS_RingDepths(t *testing.T) {
	g := ring(t, 8)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 3, 2, 1}, res.Depth)
	assert.Empty(t, res.Missing())
	assert.Len(t, res.Order, 8)
	assert.Equal(t, 0, res.Order[0])
	assert.Equal(t, bfs.Unreached, res.Parent[0])
}

// TestBFS_OneDirection follows only Right links: depth equals clockwise distance.
func TestBFS_OneDirection(t *testing.T) {
	g := ring(t, 5)
	res, err := bfs.BFS(g, 2, bfs.WithPorts(topology.Right))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 0, 1, 2}, res.Depth)

	path, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 0, 1}, path)
}

// TestBFS_TorusAxisFilter explores one X ring of a torus.
func TestBFS_TorusAxisFilter(t *testing.T) {
	g, err := builder.BuildTorusXYZ(nil, 24, 4, 3)
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, bfs.WithPorts(topology.Front, topology.Back))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, res.Order)
	assert.Len(t, res.Missing(), 20)
	assert.False(t, res.Reached(4))

	_, err = res.PathTo(4)
	assert.Error(t, err)
}

// TestBFS_ViaRecordsLinks checks Via holds the link used to enter each router.
func TestBFS_ViaRecordsLinks(t *testing.T) {
	g := ring(t, 4)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	byID := make(map[int]topology.InternalLink)
	for _, l := range g.IntLinks {
		byID[l.ID] = l
	}
	for id := 1; id < 4; id++ {
		l := byID[res.Via[id]]
		assert.Equal(t, id, l.Dst)
		assert.Equal(t, res.Parent[id], l.Src)
	}
}

// TestBFS_MaxDepth limits exploration.
func TestBFS_MaxDepth(t *testing.T) {
	g := ring(t, 10)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 9, 2, 8}, res.Order)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Errors covers invalid inputs, hook errors and cancellation.
func TestBFS_Errors(t *testing.T) {
	g := ring(t, 3)

	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(g, 3)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	bad := g.Clone()
	bad.IntLinks[0].Dst = 7
	_, err = bfs.BFS(bad, 0)
	assert.ErrorIs(t, err, bfs.ErrDanglingLink)
}
