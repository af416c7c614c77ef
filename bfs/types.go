// Package bfs provides tunable options and error definitions
// for breadth-first search over a topology.Graph's internal links.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/nocgen/topology"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start router does not exist.
	ErrStartOutOfRange = errors.New("bfs: start router out of range")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrDanglingLink is returned when an internal link names a router
	// outside the graph.
	ErrDanglingLink = errors.New("bfs: link endpoint out of range")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a router. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterLink can skip links by returning false, e.g. to explore a
	// single torus axis by its port labels.
	FilterLink func(l topology.InternalLink) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all links followed)
//   - no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(int, int) error { return nil },
		MaxDepth:   0,
		FilterLink: func(topology.InternalLink) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterLink skips links when fn returns false.
func WithFilterLink(fn func(l topology.InternalLink) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterLink = fn
		}
	}
}

// WithPorts follows only links leaving through one of the given outports.
func WithPorts(ports ...topology.PortDirection) Option {
	allowed := make(map[topology.PortDirection]bool, len(ports))
	for _, p := range ports {
		allowed[p] = true
	}
	return WithFilterLink(func(l topology.InternalLink) bool { return allowed[l.SrcOutport] })
}

// Unreached marks routers absent from a Result in Depth, Parent and Via.
const Unreached = -1

// Result holds the outcome of a BFS traversal. Slices are indexed by router ID.
//   - Order:  routers visited, in visit sequence.
//   - Depth:  hop count from the start, Unreached if not reached.
//   - Parent: predecessor in the BFS tree, Unreached for the start.
//   - Via:    ID of the link used to reach the router, Unreached for the start.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
	Via    []int
}

// Reached reports whether id was visited.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] != Unreached
}

// Missing lists the routers that were not reached, ascending.
func (r *Result) Missing() []int {
	var out []int
	for id, d := range r.Depth {
		if d == Unreached {
			out = append(out, id)
		}
	}
	return out
}

// PathTo reconstructs the router sequence from the start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to router %d", dest)
	}
	path := []int{}
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
