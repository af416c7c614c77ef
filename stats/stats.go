// SPDX-License-Identifier: MIT
// Package stats computes hop metrics of a generated interconnect by lifting
// its routers and internal links into a gonum directed graph.
//
// Each internal link becomes an edge of weight 1, so shortest path weights
// are hop counts. Self-loops (single-router families) and parallel links
// (two-router rings, extent-2 torus axes) collapse; neither changes a hop
// count.
//
// Complexity: O(R^3) time and O(R^2) memory (Floyd-Warshall).
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/nocgen/topology"
)

// ErrBadGraph indicates a graph that cannot be measured.
var ErrBadGraph = errors.New("stats: malformed graph")

// Stats summarizes one graph.
type Stats struct {
	Family        topology.Family `json:"family" yaml:"family"`
	Routers       int             `json:"routers" yaml:"routers"`
	InternalLinks int             `json:"internal_links" yaml:"internal_links"`
	ExternalLinks int             `json:"external_links" yaml:"external_links"`
	// Diameter is the longest shortest path, in hops, over reachable pairs.
	Diameter int `json:"diameter" yaml:"diameter"`
	// MeanHops averages the shortest path over ordered reachable pairs u != v.
	MeanHops float64 `json:"mean_hops" yaml:"mean_hops"`
	// Unreachable counts ordered pairs u != v with no path.
	Unreachable       int  `json:"unreachable" yaml:"unreachable"`
	StronglyConnected bool `json:"strongly_connected" yaml:"strongly_connected"`
	Components        int  `json:"components" yaml:"components"`
	// MaxEndpoints is the largest number of endpoints on one router.
	MaxEndpoints int `json:"max_endpoints" yaml:"max_endpoints"`
}

// Compute measures g.
func Compute(g *topology.Graph) (Stats, error) {
	if g == nil {
		return Stats{}, fmt.Errorf("%w: graph is nil", ErrBadGraph)
	}
	r := g.NumRouters()
	st := Stats{
		Family:        g.Family,
		Routers:       r,
		InternalLinks: len(g.IntLinks),
		ExternalLinks: len(g.ExtLinks),
	}
	if r == 0 {
		return st, nil
	}

	dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < r; i++ {
		dg.AddNode(simple.Node(i))
	}
	for _, l := range g.IntLinks {
		if l.Src < 0 || l.Src >= r || l.Dst < 0 || l.Dst >= r {
			return Stats{}, fmt.Errorf("%w: link %d %d->%d outside [0,%d)", ErrBadGraph, l.ID, l.Src, l.Dst, r)
		}
		if l.Src == l.Dst {
			continue
		}
		dg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(l.Src), T: simple.Node(l.Dst), W: 1})
	}

	perRouter := make([]int, r)
	for _, l := range g.ExtLinks {
		if l.RouterID < 0 || l.RouterID >= r {
			return Stats{}, fmt.Errorf("%w: ext link %d targets router %d", ErrBadGraph, l.ID, l.RouterID)
		}
		perRouter[l.RouterID]++
		if perRouter[l.RouterID] > st.MaxEndpoints {
			st.MaxEndpoints = perRouter[l.RouterID]
		}
	}

	all, _ := path.FloydWarshall(dg)
	var sum float64
	var pairs int
	for u := 0; u < r; u++ {
		for v := 0; v < r; v++ {
			if u == v {
				continue
			}
			w := all.Weight(int64(u), int64(v))
			if math.IsInf(w, 1) {
				st.Unreachable++
				continue
			}
			hops := int(w)
			if hops > st.Diameter {
				st.Diameter = hops
			}
			sum += w
			pairs++
		}
	}
	if pairs > 0 {
		st.MeanHops = sum / float64(pairs)
	}

	st.Components = len(topo.TarjanSCC(dg))
	st.StronglyConnected = st.Components == 1
	return st, nil
}
