// Package searchlab is a small laboratory for classic uninformed search,
// built for working through the course practicals in Go.
//
// What's inside:
//
//	core/    - ordered-adjacency Graph, Vertex & Edge primitives
//	dfs/     - iterative depth-first search with a full step-by-step trace
//	bfs/     - breadth-first search with the same tracing surface
//	builder/ - deterministic graph constructors and the classroom fixtures
//	vacuum/  - the two-square vacuum-world agent simulator (AIMA, p. 38)
//
// The traversals record everything a student needs to replay a run by
// hand: the frontier, the visited set, and the pop/dequeue trace at every
// iteration. Neighbor iteration follows edge declaration order, so every
// run of the same program prints the same trace.
//
// Quick ASCII sketch - the classroom demo graph (builder.Demo):
//
//	A───B───E
//	│\      │
//	│ C     J
//	│ │     │
//	D─┘     │
//	│       │
//	F───G───I───K
//
// A depth-first search from A to J walks A D F G I and finds J; sever the
// I–J edge and the same search must backtrack through K, C, B and E first.
//
// The searchlab command (cmd/searchlab) runs either exercise from the
// terminal.
package searchlab
