// This file defines the option set, tracing hooks, and sentinel errors
// for the breadth-first traversal.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrDestVertexNotFound is returned when the destination ID is absent.
	// An unreachable (but existing) destination yields Found == false.
	ErrDestVertexNotFound = errors.New("bfs: destination vertex not found")
)

// Step is a snapshot of the traversal state at the top of one loop
// iteration, taken before the next vertex is dequeued. All slices are
// fresh copies.
type Step struct {
	// Queue holds the frontier, front to back. The first element is the
	// vertex about to be dequeued.
	Queue []string

	// Visited lists every vertex discovered so far, in enqueue order.
	Visited []string

	// Order lists every vertex dequeued so far, in dequeue order.
	Order []string
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to
	// context.Background(). Observed once per dequeue.
	Ctx context.Context

	// OnStep, if non-nil, receives a state snapshot at the top of every
	// iteration.
	OnStep func(Step)

	// OnVisit, if non-nil, is called when a vertex is dequeued. If it
	// returns an error, BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnStep:  nil,
		OnVisit: nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback receiving a snapshot of the queue,
// visited set, and dequeue order at the top of every iteration.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithOnVisit registers a callback to run on every dequeue; returning an
// error from the callback stops the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result holds the outcome of a breadth-first traversal.
type Result struct {
	// Found reports whether the destination was dequeued. Always false
	// for Traverse.
	Found bool

	// Order records vertices in dequeue sequence. Unlike the DFS pop
	// trace, a breadth-first order contains no backtracking artifacts.
	Order []string

	// Depth maps each discovered vertex to its distance (#edges) from the
	// start.
	Depth map[string]int

	// Parent maps each discovered vertex to the vertex that first
	// discovered it. The start vertex has no entry.
	Parent map[string]string
}

// PathTo reconstructs the shortest route from the start vertex to dest by
// following Parent links. Returns an error if dest was never discovered.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}

	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// Reverse in place: start → dest.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
