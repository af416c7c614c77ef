// SPDX-License-Identifier: MIT
// Package config assembles the generation parameters from, in rising
// precedence: built-in defaults, a config file (yaml, toml or json), NOCGEN_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/nocgen/builder"
	"github.com/katalvlaran/nocgen/fsconfig"
	"github.com/katalvlaran/nocgen/topology"
)

// ErrInvalidParams is wrapped by every validation failure.
var ErrInvalidParams = errors.New("config: invalid parameters")

// EnvPrefix prefixes every environment override, e.g. NOCGEN_NUM_CPUS.
const EnvPrefix = "NOCGEN"

// Configuration keys.
const (
	KeyTopology      = "topology"
	KeyNumCPUs       = "num_cpus"
	KeyLinkLatency   = "link_latency"
	KeyRouterLatency = "router_latency"
	KeyTorusXs       = "torus_xs"
	KeyTorusYs       = "torus_ys"
	KeyMemSize       = "mem_size"
	KeyControllers   = "controllers"
	KeyOutput        = "output"
)

// Topology names accepted by KeyTopology.
const (
	TopologyRing  = "ring"
	TopologyTorus = "torus"
)

// Defaults.
const (
	DefaultTopology = TopologyRing
	DefaultNumCPUs  = 4
	DefaultTorusXs  = 1
	DefaultTorusYs  = 1
	DefaultMemSize  = "512MiB"
)

// Controller requests Count controllers of one kind.
type Controller struct {
	Type  string `mapstructure:"type" json:"type" yaml:"type"`
	Count int    `mapstructure:"count" json:"count" yaml:"count"`
}

// Params are the resolved generation parameters.
type Params struct {
	Topology      string       `mapstructure:"topology"`
	NumCPUs       int          `mapstructure:"num_cpus"`
	LinkLatency   int          `mapstructure:"link_latency"`
	RouterLatency int          `mapstructure:"router_latency"`
	TorusXs       int          `mapstructure:"torus_xs"`
	TorusYs       int          `mapstructure:"torus_ys"`
	MemSize       string       `mapstructure:"mem_size"`
	Controllers   []Controller `mapstructure:"controllers"`
	Output        string       `mapstructure:"output"`
}

// flagKeys maps each flag registered by BindFlags to its configuration key.
var flagKeys = map[string]string{
	"topology":       KeyTopology,
	"num-cpus":       KeyNumCPUs,
	"link-latency":   KeyLinkLatency,
	"router-latency": KeyRouterLatency,
	"torus-xs":       KeyTorusXs,
	"torus-ys":       KeyTorusYs,
	"mem-size":       KeyMemSize,
	"output":         KeyOutput,
}

// SetDefaults installs the built-in defaults into v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTopology, DefaultTopology)
	v.SetDefault(KeyNumCPUs, DefaultNumCPUs)
	v.SetDefault(KeyLinkLatency, builder.DefaultLinkLatency)
	v.SetDefault(KeyRouterLatency, builder.DefaultRouterLatency)
	v.SetDefault(KeyTorusXs, DefaultTorusXs)
	v.SetDefault(KeyTorusYs, DefaultTorusYs)
	v.SetDefault(KeyMemSize, DefaultMemSize)
	v.SetDefault(KeyOutput, "")
}

// BindFlags registers the parameter flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("topology", DefaultTopology, "network family: ring or torus")
	fs.Int("num-cpus", DefaultNumCPUs, "number of CPUs, which is also the number of routers")
	fs.Int("link-latency", builder.DefaultLinkLatency, "latency of every link")
	fs.Int("router-latency", builder.DefaultRouterLatency, "latency of every router")
	fs.Int("torus-xs", DefaultTorusXs, "torus extent along X")
	fs.Int("torus-ys", DefaultTorusYs, "torus extent along Y")
	fs.String("mem-size", DefaultMemSize, "total memory split evenly across nodes")
	fs.StringP("output", "o", "", "descriptor file (.yaml, .yml or .json); empty prints a summary only")
}

// Load resolves Params. file may be empty. fs may be nil, otherwise only the
// flags BindFlags registered on it are consulted.
func Load(v *viper.Viper, fs *pflag.FlagSet, file string) (Params, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Params{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Params{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var p Params
	if err := v.Unmarshal(&p); err != nil {
		return Params{}, fmt.Errorf("config: %w", err)
	}
	p.Topology = strings.ToLower(strings.TrimSpace(p.Topology))
	if len(p.Controllers) == 0 {
		p.Controllers = DefaultControllers(p.NumCPUs)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// DefaultControllers returns one L1 cache and one directory controller per CPU.
func DefaultControllers(numCPUs int) []Controller {
	return []Controller{
		{Type: topology.L1CacheController, Count: numCPUs},
		{Type: topology.DirectoryController, Count: numCPUs},
	}
}

// Validate reports the first problem found, wrapped in ErrInvalidParams.
func (p Params) Validate() error {
	switch {
	case p.Topology != TopologyRing && p.Topology != TopologyTorus:
		return fmt.Errorf("%w: unknown topology %q", ErrInvalidParams, p.Topology)
	case p.NumCPUs <= 0:
		return fmt.Errorf("%w: num_cpus must be positive, got %d", ErrInvalidParams, p.NumCPUs)
	case p.LinkLatency < 0:
		return fmt.Errorf("%w: negative link_latency %d", ErrInvalidParams, p.LinkLatency)
	case p.RouterLatency < 0:
		return fmt.Errorf("%w: negative router_latency %d", ErrInvalidParams, p.RouterLatency)
	case p.Topology == TopologyTorus && (p.TorusXs <= 0 || p.TorusYs <= 0):
		return fmt.Errorf("%w: torus extents must be positive, got %dx%d", ErrInvalidParams, p.TorusXs, p.TorusYs)
	}
	for i, c := range p.Controllers {
		if c.Type == "" || c.Count < 0 {
			return fmt.Errorf("%w: controllers[%d] = %+v", ErrInvalidParams, i, c)
		}
	}
	if _, err := p.MemBytes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// MemBytes parses MemSize.
func (p Params) MemBytes() (uint64, error) {
	return fsconfig.ParseSize(p.MemSize)
}

// Endpoints expands Controllers in listed order. Versions count per kind, so
// a kind listed twice continues where its first entry stopped.
func (p Params) Endpoints() []topology.Endpoint {
	next := make(map[string]int)
	var out []topology.Endpoint
	for _, c := range p.Controllers {
		for i := 0; i < c.Count; i++ {
			out = append(out, topology.Controller{Kind: c.Type, Version: next[c.Type]})
			next[c.Type]++
		}
	}
	return out
}

// Family returns the builder family selected by Topology.
func (p Params) Family() (builder.Family, error) {
	switch p.Topology {
	case TopologyRing:
		return builder.Ring(), nil
	case TopologyTorus:
		return builder.TorusXYZ(p.TorusXs, p.TorusYs), nil
	default:
		return builder.Family{}, fmt.Errorf("%w: unknown topology %q", ErrInvalidParams, p.Topology)
	}
}

// Options returns the builder options these parameters imply.
func (p Params) Options(logger *zap.Logger) []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithLinkLatency(p.LinkLatency),
		builder.WithRouterLatency(p.RouterLatency),
	}
	if logger != nil {
		opts = append(opts, builder.WithLogger(logger))
	}
	return opts
}

// Build generates the graph these parameters describe.
func (p Params) Build(logger *zap.Logger) (*topology.Graph, error) {
	fam, err := p.Family()
	if err != nil {
		return nil, err
	}
	return builder.Build(p.Endpoints(), p.NumCPUs, fam, p.Options(logger)...)
}
