package core

// Neighbors returns the edges incident to id, enumerated from id's side
// (Edge.From == id), in the order the edges were declared.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	list := g.adjacency[id]
	edges := make([]Edge, len(list))
	for i, n := range list {
		edges[i] = Edge{From: id, To: n.to, Weight: n.weight}
	}

	return edges, nil
}

// NeighborIDs returns the IDs adjacent to id in declaration order.
// This is the iteration order every traversal in this module observes.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	list := g.adjacency[id]
	ids := make([]string, len(list))
	for i, n := range list {
		ids[i] = n.to
	}

	return ids, nil
}
