// SPDX-License-Identifier: MIT
// Package verify checks a topology.Graph against the structural invariants
// every generated interconnect must satisfy, independently of how the graph
// was produced (freshly built, decoded from a descriptor file, or edited).
//
// Checked invariants:
//   - Routers[i].ID == i.
//   - Link IDs over ExtLinks then IntLinks are exactly 0,1,2,...
//   - Every node index 0..N-1 has exactly one external link.
//   - Uniform node i sits on router i mod R; the trailing N mod R nodes sit
//     on router 0 and are DMA controllers.
//   - Every internal link pairs an outport with its opposite inport, carries
//     a positive weight and stays inside the router set.
//   - Port discipline per family: one outport per label per router, leading
//     to the ring or torus neighbor that label names.
//   - Every router is reachable from router 0 over internal links.
package verify

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/nocgen/bfs"
	"github.com/katalvlaran/nocgen/lattice"
	"github.com/katalvlaran/nocgen/topology"
)

// ErrInvariant is wrapped by every violation reported by this package.
var ErrInvariant = errors.New("verify: invariant violated")

// remainderType is the only node type allowed in the remainder subset.
const remainderType = topology.DMAController

// Check runs every invariant and returns nil, or all violations joined with
// errors.Join. errors.Is(err, ErrInvariant) holds for any non-nil result.
func Check(g *topology.Graph) error {
	return errors.Join(Violations(g)...)
}

// Violations runs every invariant and returns one error per violation, in
// a stable order. A nil graph is a single violation.
// Complexity: O(R + N + E).
func Violations(g *topology.Graph) []error {
	if g == nil {
		return []error{violation("graph is nil")}
	}
	var errs []error
	errs = append(errs, checkRouters(g)...)
	errs = append(errs, checkLinkIDs(g)...)
	errs = append(errs, checkExternal(g)...)
	errs = append(errs, checkInternal(g)...)
	if len(errs) > 0 {
		// Port and reachability checks assume in-range endpoints.
		return errs
	}
	switch g.Family {
	case topology.FamilyRing:
		errs = append(errs, checkRing(g)...)
	case topology.FamilyTorusXYZ:
		errs = append(errs, checkTorus(g)...)
	default:
		errs = append(errs, violation("unknown family %q", g.Family))
	}
	errs = append(errs, checkReachable(g)...)
	return errs
}

// violation formats one ErrInvariant-wrapping error.
func violation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

func checkRouters(g *topology.Graph) []error {
	var errs []error
	if g.NumRouters() == 0 {
		errs = append(errs, violation("no routers"))
	}
	for i, r := range g.Routers {
		if r.ID != i {
			errs = append(errs, violation("router at index %d has id %d", i, r.ID))
		}
	}
	return errs
}

func checkLinkIDs(g *topology.Graph) []error {
	var errs []error
	want := 0
	for _, l := range g.ExtLinks {
		if l.ID != want {
			errs = append(errs, violation("ext link at position %d has id %d", want, l.ID))
		}
		want++
	}
	for _, l := range g.IntLinks {
		if l.ID != want {
			errs = append(errs, violation("int link at position %d has id %d", want, l.ID))
		}
		want++
	}
	return errs
}

func checkExternal(g *topology.Graph) []error {
	var errs []error
	n, r := len(g.ExtLinks), g.NumRouters()
	if r == 0 {
		return errs
	}
	cut := n - n%r

	indices := make([]int, 0, n)
	for _, l := range g.ExtLinks {
		indices = append(indices, l.NodeIndex)
		if l.RouterID < 0 || l.RouterID >= r {
			errs = append(errs, violation("ext link %d targets router %d of %d", l.ID, l.RouterID, r))
			continue
		}
		switch {
		case l.NodeIndex < cut && l.RouterID != l.NodeIndex%r:
			errs = append(errs, violation("node %d on router %d, want %d", l.NodeIndex, l.RouterID, l.NodeIndex%r))
		case l.NodeIndex >= cut && l.RouterID != 0:
			errs = append(errs, violation("remainder node %d on router %d, want 0", l.NodeIndex, l.RouterID))
		case l.NodeIndex >= cut && l.NodeType != remainderType:
			errs = append(errs, violation("remainder node %d has type %q, want %q", l.NodeIndex, l.NodeType, remainderType))
		}
	}

	slices.Sort(indices)
	for i, idx := range indices {
		if idx != i {
			errs = append(errs, violation("node indices are not a permutation of 0..%d: %v", n-1, indices))
			break
		}
	}
	return errs
}

func checkInternal(g *topology.Graph) []error {
	var errs []error
	r := g.NumRouters()
	for _, l := range g.IntLinks {
		if l.Src < 0 || l.Src >= r || l.Dst < 0 || l.Dst >= r {
			errs = append(errs, violation("int link %d %d->%d outside [0,%d)", l.ID, l.Src, l.Dst, r))
		}
		if l.DstInport != l.SrcOutport.Opposite() || l.SrcOutport == topology.Local {
			errs = append(errs, violation("int link %d pairs %s with %s", l.ID, l.SrcOutport, l.DstInport))
		}
		if l.Weight < 1 {
			errs = append(errs, violation("int link %d has weight %d", l.ID, l.Weight))
		}
	}
	return errs
}

// checkPorts verifies each router has exactly one outport per label and
// that it leads to next(router, label).
func checkPorts(g *topology.Graph, labels []topology.PortDirection, next func(id int, p topology.PortDirection) int) []error {
	type key struct {
		id   int
		port topology.PortDirection
	}
	dst := make(map[key][]int)
	for _, l := range g.IntLinks {
		if !slices.Contains(labels, l.SrcOutport) {
			return []error{violation("int link %d uses outport %s, not valid for %s", l.ID, l.SrcOutport, g.Family)}
		}
		k := key{l.Src, l.SrcOutport}
		dst[k] = append(dst[k], l.Dst)
	}

	var errs []error
	for id := 0; id < g.NumRouters(); id++ {
		for _, p := range labels {
			got := dst[key{id, p}]
			if len(got) != 1 {
				errs = append(errs, violation("router %d has %d %s outports", id, len(got), p))
				continue
			}
			if want := next(id, p); got[0] != want {
				errs = append(errs, violation("router %d %s leads to %d, want %d", id, p, got[0], want))
			}
		}
	}
	return errs
}

func checkRing(g *topology.Graph) []error {
	r := g.NumRouters()
	if len(g.IntLinks) != 2*r {
		return []error{violation("ring of %d routers has %d links, want %d", r, len(g.IntLinks), 2*r)}
	}
	labels := []topology.PortDirection{topology.Right, topology.Left}
	return checkPorts(g, labels, func(id int, p topology.PortDirection) int {
		if p == topology.Right {
			return (id + 1) % r
		}
		return (id - 1 + r) % r
	})
}

func checkTorus(g *topology.Graph) []error {
	if g.Shape == nil {
		return []error{violation("torus has no shape")}
	}
	s := *g.Shape
	if s.Size() != g.NumRouters() || s.Xs < 1 || s.Ys < 1 || s.Zs < 1 {
		return []error{violation("shape %dx%dx%d does not match %d routers", s.Xs, s.Ys, s.Zs, g.NumRouters())}
	}
	if len(g.IntLinks) != 6*s.Size() {
		return []error{violation("torus of %d routers has %d links, want %d", s.Size(), len(g.IntLinks), 6*s.Size())}
	}

	var labels []topology.PortDirection
	for _, a := range lattice.Axes {
		plus, minus := topology.AxisPorts(a)
		labels = append(labels, plus, minus)
	}
	return checkPorts(g, labels, func(id int, p topology.PortDirection) int {
		axis, positive, _ := topology.AxisOf(p)
		step := -1
		if positive {
			step = 1
		}
		c, _ := s.CoordOf(id)
		next, _ := s.Index(s.Step(c, axis, step))
		return next
	})
}

func checkReachable(g *topology.Graph) []error {
	res, err := bfs.BFS(g, 0)
	if err != nil {
		return []error{violation("reachability: %v", err)}
	}
	if missing := res.Missing(); len(missing) > 0 {
		return []error{violation("routers %v unreachable from router 0", missing)}
	}
	return nil
}
