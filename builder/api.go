package builder

import (
	"fmt"

	"github.com/abelikov/searchlab/core"
)

// Constructor applies a deterministic graph mutation. Constructors must
// validate parameters early, return sentinel errors (no panics), respect
// the graph's mode flags, and emit edges in a stable documented order.
type Constructor func(g *core.Graph) error

// Build creates a new core.Graph with the given graph options and applies
// all constructors in order. The first constructor error is wrapped with
// "Build: %w" and returned immediately; no partial cleanup is attempted.
func Build(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// edgeWeight resolves the fixed-weight policy shared by all fixture
// constructors: constant 1 on weighted graphs, 0 otherwise.
func edgeWeight(g *core.Graph) int64 {
	if g.Weighted() {
		return 1
	}

	return 0
}

// addEdgeOnce declares from-to unless it already exists, keeping
// constructors idempotent and composable.
func addEdgeOnce(g *core.Graph, from, to string, w int64) error {
	if g.HasEdge(from, to) {
		return nil
	}

	return g.AddEdge(from, to, w)
}
