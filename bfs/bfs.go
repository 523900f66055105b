// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order, with
// the same step-tracing surface as the dfs package.
//
// BFS explores vertices in increasing distance from the start vertex.
// Where the depth-first exercise reports its pop trace with backtracking
// detours, BFS is the corrective counterpart: Result.PathTo reconstructs
// the actual shortest route from the parent links.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs

import (
	"fmt"

	"github.com/abelikov/searchlab/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	seen    map[string]bool
	visited []string
	res     *Result
}

// Search runs breadth-first search on g from start, stopping as soon as
// dest is dequeued. An unreachable destination is a normal Found == false
// outcome, not an error.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrDestVertexNotFound,
// context cancellation, or any error returned by OnVisit.
func Search(g *core.Graph, start, dest string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(dest) {
		return nil, ErrDestVertexNotFound
	}

	return w.res, w.run(dest, true)
}

// Traverse runs a destination-free breadth-first traversal from start.
// Result.Found is always false; Result.Order is the complete dequeue
// order.
func Traverse(g *core.Graph, start string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.run("", false)
}

// newWalker validates input, applies options, and seeds the queue with
// the start vertex.
func newWalker(g *core.Graph, start string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		seen:    make(map[string]bool, n),
		visited: make([]string, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0)

	return w, nil
}

// enqueue marks id visited at depth d and adds it to the back of the
// queue. Parent is recorded by the caller at discovery time.
func (w *walker) enqueue(id string, d int) {
	w.seen[id] = true
	w.visited = append(w.visited, id)
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// run processes the queue until empty, found, error, or cancellation.
func (w *walker) run(dest string, hasDest bool) error {
	for len(w.queue) > 0 {
		// Cancellation check, once per dequeue.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.emitStep()

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(item.id, item.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit hook for %q: %w", item.id, err)
			}
		}

		if hasDest && item.id == dest {
			w.res.Found = true
			return nil
		}

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors discovers item's unseen neighbors in declaration order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: NeighborIDs(%q): %w", item.id, err)
	}

	for _, nbr := range neighbors {
		if w.seen[nbr] {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, item.depth+1)
	}

	return nil
}

// emitStep hands a defensive copy of the current state to the OnStep hook.
func (w *walker) emitStep() {
	if w.opts.OnStep == nil {
		return
	}
	ids := make([]string, len(w.queue))
	for i, item := range w.queue {
		ids[i] = item.id
	}
	w.opts.OnStep(Step{
		Queue:   ids,
		Visited: append([]string(nil), w.visited...),
		Order:   append([]string(nil), w.res.Order...),
	})
}
