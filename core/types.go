// Package core defines the central Graph, Vertex, and Edge types used by
// every traversal in searchlab.
//
// Unlike a plain map-of-maps adjacency, core keeps neighbor lists in
// *insertion order*: the order in which edges were declared is the order
// in which Neighbors and NeighborIDs enumerate them. Step-by-step search
// traces depend on that order, so it is part of the package contract.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a duplicate edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents a connection between two vertices as seen from one side:
// From → To. For undirected graphs each declared edge is observable from
// both endpoints, with From/To swapped accordingly.
type Edge struct {
	// From is the vertex the edge is enumerated from.
	From string

	// To is the neighbor on the other side.
	To string

	// Weight is the cost of the edge. The uninformed traversals in this
	// module never read it; it exists so fixtures can carry the constant
	// weights the exercise declares.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected). Default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// neighbor is one stored adjacency entry: the far endpoint plus weight.
type neighbor struct {
	to     string
	weight int64
}

// Graph is the in-memory graph data structure.
//
// Storage is an insertion-ordered adjacency list: vertexOrder preserves
// AddVertex order, and adjacency[v] preserves the order in which edges
// incident to v were declared. A single RWMutex guards all state; the
// structure is safe for concurrent use, although the exercises themselves
// are single-threaded.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags, immutable after construction.
	directed   bool
	weighted   bool
	allowLoops bool

	// Storage.
	vertices    map[string]*Vertex    // vertex ID → Vertex
	vertexOrder []string              // insertion order of vertex IDs
	adjacency   map[string][]neighbor // vertex ID → ordered neighbor list
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected, unweighted, and loop-free.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string][]neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
// If false, AddEdge(v, v, ...) returns ErrLoopNotAllowed.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
