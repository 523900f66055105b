package core

// This file implements all mutating and querying methods on Graph.
// Every method that enumerates vertices or neighbors does so in
// insertion order; nothing here sorts.

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op (idempotent).
// Returns ErrEmptyVertexID if id is "".
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id if absent. Caller must hold g.mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.vertexOrder = append(g.vertexOrder, id)
	g.adjacency[id] = nil
}

// AddEdge declares an edge from → to with the given weight, creating
// missing endpoint vertices automatically. For undirected graphs the edge
// is recorded in both adjacency lists, in declaration order on each side.
//
// Errors:
//   - ErrEmptyVertexID       if either endpoint is "".
//   - ErrBadWeight           if weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed      if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the edge already exists.
//
// Complexity: O(deg(from)) for the duplicate check.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if weight != 0 && !g.weighted {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if g.hasEdgeLocked(from, to) {
		return ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.adjacency[from] = append(g.adjacency[from], neighbor{to: to, weight: weight})
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], neighbor{to: from, weight: weight})
	}

	return nil
}

// RemoveEdge deletes the edge from → to (and its mirror entry for
// undirected graphs). Neighbor order of the remaining entries is
// preserved. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasEdgeLocked(from, to) {
		return ErrEdgeNotFound
	}

	g.adjacency[from] = removeNeighbor(g.adjacency[from], to)
	if !g.directed && from != to {
		g.adjacency[to] = removeNeighbor(g.adjacency[to], from)
	}

	return nil
}

// removeNeighbor returns list without the first entry pointing at to,
// keeping the relative order of everything else.
func removeNeighbor(list []neighbor, to string) []neighbor {
	for i, n := range list {
		if n.to == to {
			return append(list[:i:i], list[i+1:]...)
		}
	}

	return list
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether an edge from → to exists. For undirected graphs
// this is symmetric in its arguments.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// hasEdgeLocked reports edge existence. Caller must hold g.mu.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, n := range g.adjacency[from] {
		if n.to == to {
			return true
		}
	}

	return false
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}

// EdgeCount returns the number of declared edges. An undirected edge
// counts once even though it appears in two adjacency lists.
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, list := range g.adjacency {
		total += len(list)
	}
	if g.directed {
		return total
	}

	// Mirrored entries double-count everything except self-loops.
	loops := 0
	for id, list := range g.adjacency {
		for _, n := range list {
			if n.to == id {
				loops++
			}
		}
	}

	return (total-loops)/2 + loops
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a fresh copy; the caller may mutate it freely.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}
