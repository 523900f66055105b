// Package dfs implements iterative, stack-based depth-first search over a
// core.Graph, recording the full pop trace the way the course hand-outs
// present it: the frontier stack, the visited set, and the walk including
// every dead-end detour.
//
// Key entry points:
//
//   - Search(g, start, dest, opts...): explore until dest is reached
//   - Traverse(g, start, opts...): explore everything reachable from start
//
// Complexity:
//
//   - Time:   O(V + E), every vertex is pushed at most once.
//   - Memory: O(V) for the stack, visited set, and trace.
//
// The destination check: the original exercise only recognizes dest at
// the moment it is first discovered as a fresh neighbor. If dest has
// already been visited by the time an edge to it is scanned, the search
// silently drains and reports "not found" even on a connected graph.
// Search treats that as a bug and additionally checks each popped vertex
// against dest, which never changes the documented traces (there dest is
// always found fresh). WithDiscoveryFoundOnly restores the old behavior.
package dfs

import (
	"fmt"

	"github.com/abelikov/searchlab/core"
)

// walker encapsulates mutable traversal state.
type walker struct {
	graph *core.Graph
	opts  Options
	stack []string
	seen  map[string]bool
	res   *Result
}

// Search performs a depth-first search on g from start, stopping as soon
// as dest is reached. The returned Result carries the pop trace (with
// backtracking detours), the visited order, and the parent map; Found
// reports reachability. An unreachable destination is a normal outcome,
// not an error.
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

// Traverse performs a destination-free depth-first traversal from start,
// visiting everything reachable. Result.Found is always false; Result.Path
// is the complete pop order.
func Traverse(g *core.Graph, start string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.run("", false)
}

// newWalker validates common input, applies options, and seeds the stack
// with the start vertex (pushed and marked visited before the loop, as
// the exercise specifies).
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
		graph: g,
		opts:  o,
		stack: make([]string, 0, n),
		seen:  make(map[string]bool, n),
		res: &Result{
			Path:    make([]string, 0, n),
			Visited: make([]string, 0, n),
			Parent:  make(map[string]string, n),
		},
	}
	w.push(start)

	return w, nil
}

// push marks id visited and places it on top of the stack.
func (w *walker) push(id string) {
	w.seen[id] = true
	w.res.Visited = append(w.res.Visited, id)
	w.stack = append(w.stack, id)
}

// run drives the pop loop until the stack drains, the destination is
// found (hasDest), the context is cancelled, or a hook aborts.
func (w *walker) run(dest string, hasDest bool) error {
	for len(w.stack) > 0 {
		// Cancellation check, once per pop.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.emitStep()

		// Pop the top of the stack and record it in the walk.
		curr := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.res.Path = append(w.res.Path, curr)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(curr); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", curr, err)
			}
		}

		// Corrected destination check: a popped vertex can match even if
		// it was discovered long before this iteration.
		if hasDest && !w.opts.DiscoveryFoundOnly && curr == dest {
			w.res.Found = true
			return nil
		}

		found, err := w.scanNeighbors(curr, dest, hasDest)
		if err != nil {
			return err
		}
		if found {
			return nil
		}
	}

	return nil
}

// scanNeighbors walks curr's neighbor list in declaration order, pushing
// fresh vertices and watching for the destination at discovery time.
// It reports found == true when dest was discovered fresh.
func (w *walker) scanNeighbors(curr, dest string, hasDest bool) (bool, error) {
	nbs, err := w.graph.NeighborIDs(curr)
	if err != nil {
		return false, fmt.Errorf("dfs: NeighborIDs(%q): %w", curr, err)
	}

	for _, nbr := range nbs {
		// Last scanned edge wins, even for already-visited neighbors.
		w.res.Parent[nbr] = curr

		if w.seen[nbr] {
			continue
		}
		w.push(nbr)

		if hasDest && nbr == dest {
			// Found at discovery: record dest in the walk and stop
			// immediately without draining the stack.
			w.res.Path = append(w.res.Path, nbr)
			w.res.Found = true

			return true, nil
		}
	}

	return false, nil
}

// emitStep hands a defensive copy of the current state to the OnStep hook.
func (w *walker) emitStep() {
	if w.opts.OnStep == nil {
		return
	}
	w.opts.OnStep(Step{
		Stack:   append([]string(nil), w.stack...),
		Visited: append([]string(nil), w.res.Visited...),
		Path:    append([]string(nil), w.res.Path...),
	})
}
