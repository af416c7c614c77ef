// Package bfs provides breadth-first search over the internal links of a
// topology.Graph, returning hop distances, parent links, and visit order.
//
// Links are followed in the direction they carry traffic (Src → Dst), and
// neighbors are enqueued in link emission order, so the visit sequence is
// fully reproducible for a given graph.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nocgen/topology"
)

// queueItem pairs a router ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]topology.InternalLink
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g's internal links starting from router
// start, applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, ErrDanglingLink for links that point
// outside the router set, or any user-supplied hook error.
// Complexity: O(R + E).
func BFS(g *topology.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NumRouters()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	adj, err := adjacency(g, o.FilterLink)
	if err != nil {
		return nil, err
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  filled(n, Unreached),
			Parent: filled(n, Unreached),
			Via:    filled(n, Unreached),
		},
	}

	w.enqueue(start, 0, Unreached, Unreached)
	return w.res, w.loop()
}

// adjacency groups the accepted links by source router.
func adjacency(g *topology.Graph, keep func(topology.InternalLink) bool) ([][]topology.InternalLink, error) {
	n := g.NumRouters()
	adj := make([][]topology.InternalLink, n)
	for _, l := range g.IntLinks {
		if l.Src < 0 || l.Src >= n || l.Dst < 0 || l.Dst >= n {
			return nil, fmt.Errorf("%w: link %d %d->%d", ErrDanglingLink, l.ID, l.Src, l.Dst)
		}
		if keep(l) {
			adj[l.Src] = append(adj[l.Src], l)
		}
	}
	return adj, nil
}

// enqueue marks id reached at depth d and adds it to the queue.
func (w *walker) enqueue(id, d, parent, via int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.res.Via[id] = via
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at router %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, l := range w.adj[item.id] {
			if w.res.Depth[l.Dst] == Unreached {
				w.enqueue(l.Dst, next, item.id, l.ID)
			}
		}
	}
	return nil
}

// filled returns a slice of n copies of v.
func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}
