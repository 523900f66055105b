package builder

import (
	"fmt"

	"github.com/abelikov/searchlab/core"
)

// demoEdges is the classroom graph in its canonical declaration order.
// The order is load-bearing: the depth-first traces documented in the
// exercise depend on each vertex enumerating its neighbors exactly as
// listed here (A sees B, C, D; I sees G, K, J; and so on).
var demoEdges = [][2]string{
	{"A", "B"},
	{"A", "C"},
	{"A", "D"},
	{"B", "E"},
	{"C", "D"},
	{"D", "F"},
	{"E", "J"},
	{"F", "G"},
	{"G", "I"},
	{"I", "K"},
	{"I", "J"},
}

// demoSeveredEdge is the edge removed for the second part of the
// exercise, forcing the search to backtrack through K, C, B and E.
var demoSeveredEdge = [2]string{"I", "J"}

// Demo builds the ten-vertex classroom graph (A…K, no H) used by the
// depth-first search exercise. Undirected; edge weight follows the
// fixture policy (1 when the graph is weighted, 0 otherwise).
//
// Adjacency, in enumeration order:
//
//	A: B C D    B: A E    C: A D    D: A C F    E: B J
//	F: D G      G: F I    I: G K J  J: E I      K: I
func Demo() Constructor {
	return func(g *core.Graph) error {
		if err := Edges(demoEdges)(g); err != nil {
			return fmt.Errorf("Demo: %w", err)
		}

		return nil
	}
}

// DemoSevered builds the same classroom graph with the I–J edge removed.
// A search from A to J must now dead-end at K and work back through the
// untouched frontier before reaching J via E.
func DemoSevered() Constructor {
	return func(g *core.Graph) error {
		if err := Demo()(g); err != nil {
			return fmt.Errorf("DemoSevered: %w", err)
		}
		if err := g.RemoveEdge(demoSeveredEdge[0], demoSeveredEdge[1]); err != nil {
			return fmt.Errorf("DemoSevered: %w", err)
		}

		return nil
	}
}
