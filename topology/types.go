// SPDX-License-Identifier: MIT
// Package topology defines the plain data records that make up a generated
// interconnect: endpoints, routers, external links and internal links, plus
// the Graph that aggregates them.
//
// All records are arena-style: routers are addressed by their index, links
// by their link ID, endpoints by their position in the caller's node list.
// Nothing here holds a pointer to another record, so a Graph can be copied,
// compared and serialized as is.
package topology

import (
	"fmt"

	"github.com/katalvlaran/nocgen/lattice"
)

// Controller kind tags. DMAController is the only kind allowed among the
// remainder nodes that are pinned to router 0.
const (
	L1CacheController   = "L1Cache_Controller"
	L2CacheController   = "L2Cache_Controller"
	DirectoryController = "Directory_Controller"
	DMAController       = "DMA_Controller"
)

// Endpoint is an opaque handle for a controller attached to the network.
// The generator only inspects its capability tag.
type Endpoint interface {
	// Type returns the capability tag, e.g. "DMA_Controller".
	Type() string
}

// Controller is the stock Endpoint: a kind tag plus a per-kind version number,
// so the third directory controller is Controller{DirectoryController, 2}.
type Controller struct {
	Kind    string `json:"type" yaml:"type"`
	Version int    `json:"version" yaml:"version"`
}

// Type implements Endpoint.
func (c Controller) Type() string { return c.Kind }

// String returns "<kind>[<version>]".
func (c Controller) String() string {
	return fmt.Sprintf("%s[%d]", c.Kind, c.Version)
}

// Family names a network family.
type Family string

const (
	// FamilyRing is the 1-D bidirectional ring.
	FamilyRing Family = "Ring"
	// FamilyTorusXYZ is the 3-D torus intended for X→Y→Z dimension-order routing.
	FamilyTorusXYZ Family = "Torus_XYZ"
)

// Router is a switching node. ID is also its index in Graph.Routers.
type Router struct {
	ID      int `json:"router_id" yaml:"router_id"`
	Latency int `json:"latency" yaml:"latency"`
}

// ExternalLink attaches one endpoint to one router.
type ExternalLink struct {
	ID        int    `json:"link_id" yaml:"link_id"`
	NodeIndex int    `json:"node_index" yaml:"node_index"`
	NodeType  string `json:"node_type" yaml:"node_type"`
	NodeName  string `json:"node_name" yaml:"node_name"`
	RouterID  int    `json:"router_id" yaml:"router_id"`
	Latency   int    `json:"latency" yaml:"latency"`
}

// InternalLink is a directed router-to-router channel leaving Src through
// SrcOutport and entering Dst through DstInport.
type InternalLink struct {
	ID         int           `json:"link_id" yaml:"link_id"`
	Src        int           `json:"src_router" yaml:"src_router"`
	Dst        int           `json:"dst_router" yaml:"dst_router"`
	SrcOutport PortDirection `json:"src_outport" yaml:"src_outport"`
	DstInport  PortDirection `json:"dst_inport" yaml:"dst_inport"`
	Latency    int           `json:"latency" yaml:"latency"`
	Weight     int           `json:"weight" yaml:"weight"`
}

// Graph is the complete output of one generation run.
//
// Invariants (established by the builder, checked by package verify):
//   - Routers[i].ID == i.
//   - Link IDs over ExtLinks followed by IntLinks are exactly 0,1,2,...
//   - Every input endpoint appears in exactly one external link.
type Graph struct {
	Family   Family         `json:"family" yaml:"family"`
	Shape    *lattice.Shape `json:"shape,omitempty" yaml:"shape,omitempty"`
	Routers  []Router       `json:"routers" yaml:"routers"`
	ExtLinks []ExternalLink `json:"ext_links" yaml:"ext_links"`
	IntLinks []InternalLink `json:"int_links" yaml:"int_links"`
}

// NumRouters returns len(g.Routers).
func (g *Graph) NumRouters() int { return len(g.Routers) }

// NumLinks returns the combined number of external and internal links.
func (g *Graph) NumLinks() int { return len(g.ExtLinks) + len(g.IntLinks) }

// Outgoing returns the internal links leaving router id, in emission order.
// Complexity: O(E).
func (g *Graph) Outgoing(id int) []InternalLink {
	var out []InternalLink
	for _, l := range g.IntLinks {
		if l.Src == id {
			out = append(out, l)
		}
	}
	return out
}

// Attached returns the external links that terminate at router id.
// Complexity: O(N).
func (g *Graph) Attached(id int) []ExternalLink {
	var out []ExternalLink
	for _, l := range g.ExtLinks {
		if l.RouterID == id {
			out = append(out, l)
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Family:   g.Family,
		Routers:  append([]Router(nil), g.Routers...),
		ExtLinks: append([]ExternalLink(nil), g.ExtLinks...),
		IntLinks: append([]InternalLink(nil), g.IntLinks...),
	}
	if g.Shape != nil {
		s := *g.Shape
		c.Shape = &s
	}
	return c
}
