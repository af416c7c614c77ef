package fsconfig_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nocgen/fsconfig"
)

func TestRegisterTopology_EqualShares(t *testing.T) {
	var tbl fsconfig.Table
	require.NoError(t, fsconfig.RegisterTopology(&tbl, 4, 512<<20))

	require.Len(t, tbl.Nodes, 4)
	for i, n := range tbl.Nodes {
		assert.Equal(t, i, n.ID)
		assert.Equal(t, []int{i}, n.CPUs)
		assert.Equal(t, uint64(128<<20), n.MemBytes)
	}
	assert.Equal(t, uint64(512<<20), tbl.Total())
}

func TestRegisterTopology_DropsRemainder(t *testing.T) {
	var tbl fsconfig.Table
	require.NoError(t, fsconfig.RegisterTopology(&tbl, 3, 10))
	assert.Equal(t, uint64(3), tbl.Nodes[2].MemBytes)
	assert.Equal(t, uint64(9), tbl.Total())
}

func TestRegisterTopology_Errors(t *testing.T) {
	var tbl fsconfig.Table
	assert.ErrorIs(t, fsconfig.RegisterTopology(&tbl, 0, 1024), fsconfig.ErrInvalidCount)
	assert.Empty(t, tbl.Nodes)

	require.NoError(t, tbl.RegisterNode([]int{1}, 1, 1))
	err := fsconfig.RegisterTopology(&tbl, 2, 1024)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fsconfig.ErrDuplicateNode))
	assert.Contains(t, err.Error(), "register node 1")
}

func TestParseSize(t *testing.T) {
	cases := map[string]uint64{
		"512MiB":  512 << 20,
		"512 MiB": 512 << 20,
		"2GB":     2_000_000_000,
		"1024":    1024,
		"1KiB":    1024,
	}
	for in, want := range cases {
		got, err := fsconfig.ParseSize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := fsconfig.ParseSize("lots")
	assert.ErrorIs(t, err, fsconfig.ErrInvalidSize)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 MiB", fsconfig.FormatSize(512<<20))
	assert.Equal(t, "128 MiB", fsconfig.FormatSize(128<<20))
}
