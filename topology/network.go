// SPDX-License-Identifier: MIT
// Package: nocgen/topology
//
// network.go - handing a finished Graph to the consuming simulation engine.
//
// Two hand-off styles are supported:
//   - Install: the consumer's network object receives the plain records.
//   - Materialize: a consumer Factory turns each record into its own object
//     type; relationships are resolved through the arena indices.

package topology

import (
	"errors"
	"fmt"
)

// ErrDanglingReference indicates a link that refers to a router or endpoint
// index the Graph (or the supplied node list) does not have.
var ErrDanglingReference = errors.New("topology: dangling reference")

// Network is the consumer-side network object that receives a topology.
type Network interface {
	SetRouters(routers []Router)
	SetExtLinks(links []ExternalLink)
	SetIntLinks(links []InternalLink)
}

// Install passes the router list, external-link list and internal-link list
// to n, in that order. n receives copies; later changes to n's slices do not
// affect g.
func (g *Graph) Install(n Network) {
	c := g.Clone()
	n.SetRouters(c.Routers)
	n.SetExtLinks(c.ExtLinks)
	n.SetIntLinks(c.IntLinks)
}

// Factory builds consumer objects from topology records. R, E and I are the
// consumer's router, external-link and internal-link types.
type Factory[R, E, I any] interface {
	NewRouter(r Router) R
	NewExtLink(l ExternalLink, node Endpoint, router R) E
	NewIntLink(l InternalLink, src, dst R) I
}

// Objects holds the consumer objects produced by Materialize, index-aligned
// with the Graph's records.
type Objects[R, E, I any] struct {
	Routers  []R
	ExtLinks []E
	IntLinks []I
}

// Materialize resolves g against the node list it was built from and asks f
// for one object per record, routers first. It returns ErrDanglingReference
// if a link points outside the router set or the node list.
// Complexity: O(R + N + E).
func Materialize[R, E, I any](g *Graph, nodes []Endpoint, f Factory[R, E, I]) (Objects[R, E, I], error) {
	var out Objects[R, E, I]

	out.Routers = make([]R, len(g.Routers))
	for i, r := range g.Routers {
		out.Routers[i] = f.NewRouter(r)
	}

	out.ExtLinks = make([]E, len(g.ExtLinks))
	for i, l := range g.ExtLinks {
		if l.NodeIndex < 0 || l.NodeIndex >= len(nodes) {
			return Objects[R, E, I]{}, fmt.Errorf("%w: ext link %d node %d of %d", ErrDanglingReference, l.ID, l.NodeIndex, len(nodes))
		}
		if l.RouterID < 0 || l.RouterID >= len(out.Routers) {
			return Objects[R, E, I]{}, fmt.Errorf("%w: ext link %d router %d", ErrDanglingReference, l.ID, l.RouterID)
		}
		out.ExtLinks[i] = f.NewExtLink(l, nodes[l.NodeIndex], out.Routers[l.RouterID])
	}

	out.IntLinks = make([]I, len(g.IntLinks))
	for i, l := range g.IntLinks {
		if l.Src < 0 || l.Src >= len(out.Routers) || l.Dst < 0 || l.Dst >= len(out.Routers) {
			return Objects[R, E, I]{}, fmt.Errorf("%w: int link %d %d->%d", ErrDanglingReference, l.ID, l.Src, l.Dst)
		}
		out.IntLinks[i] = f.NewIntLink(l, out.Routers[l.Src], out.Routers[l.Dst])
	}

	return out, nil
}
