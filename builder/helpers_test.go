package builder_test

import (
	"github.com/katalvlaran/nocgen/topology"
)

// controllers returns count controllers of kind, versions 0..count-1.
func controllers(kind string, count int) []topology.Endpoint {
	out := make([]topology.Endpoint, 0, count)
	for v := 0; v < count; v++ {
		out = append(out, topology.Controller{Kind: kind, Version: v})
	}
	return out
}

// concat joins endpoint lists in order.
func concat(lists ...[]topology.Endpoint) []topology.Endpoint {
	var out []topology.Endpoint
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// portKey identifies a router port.
type portKey struct {
	router int
	port   topology.PortDirection
}

// outports indexes internal links by (src, outport), counting duplicates.
func outports(g *topology.Graph) (map[portKey]topology.InternalLink, map[portKey]int) {
	links := make(map[portKey]topology.InternalLink)
	counts := make(map[portKey]int)
	for _, l := range g.IntLinks {
		k := portKey{l.Src, l.SrcOutport}
		links[k] = l
		counts[k]++
	}
	return links, counts
}

// inports counts internal links by (dst, inport).
func inports(g *topology.Graph) map[portKey]int {
	counts := make(map[portKey]int)
	for _, l := range g.IntLinks {
		counts[portKey{l.Dst, l.DstInport}]++
	}
	return counts
}

// bareType is an Endpoint without a String method.
type bareType string

func (b bareType) Type() string { return string(b) }
