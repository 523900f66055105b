package core

// Clone returns a deep copy of g: same flags, same vertices and edges,
// same insertion order everywhere. The clone shares no mutable state with
// the original, so deriving variant fixtures (clone, then RemoveEdge) is
// safe.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:    g.directed,
		weighted:    g.weighted,
		allowLoops:  g.allowLoops,
		vertices:    make(map[string]*Vertex, len(g.vertices)),
		vertexOrder: make([]string, len(g.vertexOrder)),
		adjacency:   make(map[string][]neighbor, len(g.adjacency)),
	}

	copy(c.vertexOrder, g.vertexOrder)
	for id := range g.vertices {
		c.vertices[id] = &Vertex{ID: id}
	}
	for id, list := range g.adjacency {
		cloned := make([]neighbor, len(list))
		copy(cloned, list)
		c.adjacency[id] = cloned
	}

	return c
}
