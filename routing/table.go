// SPDX-License-Identifier: MIT
// Package: nocgen/routing
//
// table.go - link lookup by (router, outport) and hop-by-hop tracing.
//
// Complexity:
//   - NewTable: O(E)
//   - Trace:    O(hops), bounded by R+1

package routing

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/nocgen/topology"
)

// Hop is one step of a traced route. The last hop of a route sits at the
// destination with Outport Local and Link -1.
type Hop struct {
	Router  int                    `json:"router" yaml:"router"`
	Inport  topology.PortDirection `json:"inport" yaml:"inport"`
	Outport topology.PortDirection `json:"outport" yaml:"outport"`
	Link    int                    `json:"link" yaml:"link"`
}

// Route is the ordered list of hops from source to destination.
type Route []Hop

// Links returns the number of internal links the route traverses.
func (r Route) Links() int {
	if len(r) == 0 {
		return 0
	}
	return len(r) - 1
}

type portKey struct {
	router int
	port   topology.PortDirection
}

// Table resolves outports with the family's routing function and maps them to
// the links of one graph.
type Table struct {
	g     *topology.Graph
	links map[portKey]topology.InternalLink
}

// NewTable indexes the internal links of g. If a router carries the same
// outport label twice, the first emitted link wins.
func NewTable(g *topology.Graph) (*Table, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrNoRoute)
	}
	switch g.Family {
	case topology.FamilyRing:
	case topology.FamilyTorusXYZ:
		if g.Shape == nil || g.Shape.Size() != g.NumRouters() {
			return nil, fmt.Errorf("%w: torus shape does not cover %d routers", ErrNoRoute, g.NumRouters())
		}
	default:
		return nil, fmt.Errorf("%w: unknown family %q", ErrNoRoute, g.Family)
	}

	t := &Table{g: g, links: make(map[portKey]topology.InternalLink, len(g.IntLinks))}
	for _, l := range g.IntLinks {
		k := portKey{l.Src, l.SrcOutport}
		if _, dup := t.links[k]; !dup {
			t.links[k] = l
		}
	}
	return t, nil
}

// Outport returns the port router my sends a packet for dest through.
func (t *Table) Outport(my, dest int, inport topology.PortDirection) (topology.PortDirection, error) {
	if t.g.Family == topology.FamilyRing {
		return RingOutport(t.g.NumRouters(), my, dest, inport)
	}
	return XYZOutport(*t.g.Shape, my, dest, inport)
}

// Link returns the internal link leaving router id through port.
func (t *Table) Link(id int, port topology.PortDirection) (topology.InternalLink, bool) {
	l, ok := t.links[portKey{id, port}]
	return l, ok
}

// Ports lists the outport labels router id carries, sorted by label.
func (t *Table) Ports(id int) []topology.PortDirection {
	var out []topology.PortDirection
	for k := range t.links {
		if k.router == id {
			out = append(out, k.port)
		}
	}
	slices.Sort(out)
	return out
}

// Trace follows the routing decisions from src to dst. The packet starts on
// the Local inport of src.
func (t *Table) Trace(src, dst int) (Route, error) {
	var route Route
	cur, in := src, topology.Local
	for steps := 0; steps <= t.g.NumRouters(); steps++ {
		out, err := t.Outport(cur, dst, in)
		if err != nil {
			return nil, fmt.Errorf("trace %d -> %d: %w", src, dst, err)
		}
		if out == topology.Local {
			return append(route, Hop{Router: cur, Inport: in, Outport: out, Link: -1}), nil
		}
		l, ok := t.Link(cur, out)
		if !ok {
			return nil, fmt.Errorf("trace %d -> %d: %w: router %d has no %s link", src, dst, ErrNoRoute, cur, out)
		}
		route = append(route, Hop{Router: cur, Inport: in, Outport: out, Link: l.ID})
		cur, in = l.Dst, l.DstInport
	}
	return nil, fmt.Errorf("trace %d -> %d: %w: no arrival after %d hops", src, dst, ErrNoRoute, t.g.NumRouters()+1)
}
