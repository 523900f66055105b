package builder

import (
	"fmt"
	"strconv"

	"github.com/abelikov/searchlab/core"
)

// Minimum sizes for the generic topologies.
const (
	minPathVertices  = 2
	minCycleVertices = 3
	minStarVertices  = 2
)

// starCenterID is the fixed hub vertex of Star topologies.
const starCenterID = "Center"

// Edges returns a Constructor declaring the given endpoint pairs in
// order, with the fixture weight policy applied. Endpoints are created on
// demand.
func Edges(pairs [][2]string) Constructor {
	return func(g *core.Graph) error {
		w := edgeWeight(g)
		for i, p := range pairs {
			if err := addEdgeOnce(g, p[0], p[1], w); err != nil {
				return fmt.Errorf("Edges: pair %d (%s-%s): %w", i, p[0], p[1], err)
			}
		}

		return nil
	}
}

// Path builds a simple path P_n with decimal IDs "0"…"n-1" and edges
// i-i+1 declared in increasing order. Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minPathVertices {
			return fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
		}
		w := edgeWeight(g)
		for i := 0; i < n-1; i++ {
			if err := addEdgeOnce(g, strconv.Itoa(i), strconv.Itoa(i+1), w); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle builds a simple cycle C_n with decimal IDs, closing n-1-0 last.
// Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleVertices {
			return fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		w := edgeWeight(g)
		for i := 0; i < n; i++ {
			from, to := strconv.Itoa(i), strconv.Itoa((i+1)%n)
			if err := addEdgeOnce(g, from, to, w); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Star builds a star with hub "Center" and leaves "0"…"n-2", spokes
// declared in leaf order. Requires n ≥ 2 total vertices.
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minStarVertices {
			return fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
		}
		w := edgeWeight(g)
		for i := 0; i < n-1; i++ {
			if err := addEdgeOnce(g, starCenterID, strconv.Itoa(i), w); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}
