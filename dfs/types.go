// This file defines the option set, tracing hooks, and sentinel errors
// for the depth-first traversal.

package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Search
	// or Traverse.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not
	// exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrDestVertexNotFound indicates that the destination vertex ID does
	// not exist in the graph. An existing-but-unreachable destination is
	// not an error; it yields Found == false.
	ErrDestVertexNotFound = errors.New("dfs: destination vertex not found")
)

// Step is a snapshot of the traversal state at the top of one loop
// iteration, taken before the next vertex is popped. All slices are fresh
// copies; hooks may retain them.
type Step struct {
	// Stack holds the frontier, bottom to top. The last element is the
	// vertex about to be popped.
	Stack []string

	// Visited lists every vertex discovered so far, in push order.
	Visited []string

	// Path lists every vertex popped so far, in pop order.
	Path []string
}

// Option configures optional behavior of the traversal.
// Use with Search(g, start, dest, opts...) or Traverse(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for the traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancellation is observed once per pop.
	Ctx context.Context

	// OnStep, if non-nil, receives a state snapshot at the top of every
	// iteration. This is the trace surface the exercise prints from.
	OnStep func(Step)

	// OnVisit, if non-nil, is invoked when a vertex is popped (pre-order).
	// Returning an error aborts the traversal with that error.
	OnVisit func(id string) error

	// DiscoveryFoundOnly restores the hand-out's original semantics: the
	// destination is detected only at the moment it is first discovered
	// as a fresh neighbor. With this set, a destination that was already
	// visited when re-encountered is silently ignored and the search may
	// report "not found" on a connected graph. Kept for trace parity;
	// see Search for the corrected default.
	DiscoveryFoundOnly bool
}

// DefaultOptions returns Options with a background context, no hooks,
// and the corrected destination check enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		OnStep:             nil,
		OnVisit:            nil,
		DiscoveryFoundOnly: false,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback receiving a snapshot of the stack,
// visited set, and pop trace at the top of every iteration.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithOnVisit registers a pre-order hook invoked on every pop; returning
// an error from the hook aborts the traversal.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithDiscoveryFoundOnly switches Search to the original hand-out
// behavior, where only freshly discovered neighbors can match the
// destination. Use it when a byte-identical replay of the documented
// traces is required.
func WithDiscoveryFoundOnly() Option {
	return func(o *Options) {
		o.DiscoveryFoundOnly = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Found reports whether the destination was reached. Always false for
	// Traverse.
	Found bool

	// Path records every vertex popped from the stack, in pop order,
	// including dead-end detours taken before backtracking. When the
	// destination is found at discovery time it is appended as the final
	// element even though it was never popped. This is the full walk, not
	// the shortest route.
	Path []string

	// Visited lists every discovered vertex in push order. A vertex
	// appears at most once.
	Visited []string

	// Parent maps each vertex to the vertex that most recently scanned it
	// as a neighbor. The last scanned edge wins, even for vertices that
	// were already visited, so this is diagnostic information and does
	// not reconstruct Path.
	Parent map[string]string
}
