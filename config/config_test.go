package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nocgen/config"
	"github.com/katalvlaran/nocgen/topology"
	"github.com/katalvlaran/nocgen/verify"
)

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	p, err := config.Load(viper.New(), flags(t), "")
	require.NoError(t, err)

	assert.Equal(t, config.TopologyRing, p.Topology)
	assert.Equal(t, config.DefaultNumCPUs, p.NumCPUs)
	assert.Equal(t, 1, p.LinkLatency)
	assert.Equal(t, 1, p.RouterLatency)
	assert.Equal(t, "512MiB", p.MemSize)
	assert.Equal(t, config.DefaultControllers(config.DefaultNumCPUs), p.Controllers)

	mem, err := p.MemBytes()
	require.NoError(t, err)
	assert.Equal(t, uint64(512<<20), mem)
}

func TestLoad_Precedence(t *testing.T) {
	file := writeFile(t, "nocgen.yaml", "num_cpus: 6\nlink_latency: 2\ntopology: Torus\n")

	p, err := config.Load(viper.New(), flags(t), file)
	require.NoError(t, err)
	assert.Equal(t, 6, p.NumCPUs)
	assert.Equal(t, 2, p.LinkLatency)
	assert.Equal(t, config.TopologyTorus, p.Topology)

	t.Setenv("NOCGEN_NUM_CPUS", "7")
	p, err = config.Load(viper.New(), flags(t), file)
	require.NoError(t, err)
	assert.Equal(t, 7, p.NumCPUs)
	assert.Equal(t, 2, p.LinkLatency)

	p, err = config.Load(viper.New(), flags(t, "--num-cpus=8", "--link-latency", "5"), file)
	require.NoError(t, err)
	assert.Equal(t, 8, p.NumCPUs)
	assert.Equal(t, 5, p.LinkLatency)
}

func TestLoad_ControllersFromFile(t *testing.T) {
	file := writeFile(t, "nocgen.json", `{
  "num_cpus": 2,
  "controllers": [
    {"type": "L1Cache_Controller", "count": 2},
    {"type": "Directory_Controller", "count": 2},
    {"type": "DMA_Controller", "count": 1}
  ]
}`)
	p, err := config.Load(viper.New(), nil, file)
	require.NoError(t, err)

	eps := p.Endpoints()
	require.Len(t, eps, 5)
	assert.Equal(t, topology.Controller{Kind: topology.DirectoryController, Version: 1}, eps[3])
	assert.Equal(t, topology.DMAController, eps[4].Type())

	g, err := p.Build(nil)
	require.NoError(t, err)
	assert.NoError(t, verify.Check(g))
	assert.Equal(t, 0, g.ExtLinks[4].RouterID)
}

func TestLoad_TorusBuild(t *testing.T) {
	p, err := config.Load(viper.New(), flags(t,
		"--topology=torus", "--num-cpus=8", "--torus-xs=2", "--torus-ys=2", "--router-latency=3"), "")
	require.NoError(t, err)

	g, err := p.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, topology.FamilyTorusXYZ, g.Family)
	assert.Len(t, g.IntLinks, 48)
	assert.Equal(t, 3, g.Routers[0].Latency)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(viper.New(), nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cases := [][]string{
		{"--topology=mesh"},
		{"--num-cpus=0"},
		{"--link-latency=-1"},
		{"--router-latency=-2"},
		{"--topology=torus", "--torus-xs=0"},
		{"--mem-size=plenty"},
	}
	for _, args := range cases {
		_, err := config.Load(viper.New(), flags(t, args...), "")
		assert.ErrorIs(t, err, config.ErrInvalidParams, "%v", args)
	}
}

func TestEndpoints_VersionsPerKind(t *testing.T) {
	p := config.Params{Controllers: []config.Controller{
		{Type: topology.L1CacheController, Count: 1},
		{Type: topology.DMAController, Count: 1},
		{Type: topology.L1CacheController, Count: 2},
	}}
	eps := p.Endpoints()
	require.Len(t, eps, 4)
	assert.Equal(t, "L1Cache_Controller[2]", eps[3].(topology.Controller).String())
	assert.Equal(t, "DMA_Controller[0]", eps[1].(topology.Controller).String())
}

func TestValidate_Controllers(t *testing.T) {
	p := config.Params{
		Topology:    config.TopologyRing,
		NumCPUs:     1,
		MemSize:     "1GiB",
		Controllers: []config.Controller{{Type: "", Count: 1}},
	}
	assert.ErrorIs(t, p.Validate(), config.ErrInvalidParams)

	p.Controllers = []config.Controller{{Type: topology.L1CacheController, Count: 1}}
	assert.NoError(t, p.Validate())
}
