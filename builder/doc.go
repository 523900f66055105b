// Package builder provides deterministic constructors for core.Graph
// fixtures: the small generic topologies used in tests and benchmarks,
// the two classroom graphs from the depth-first search exercise, and a
// YAML loader for user-supplied graphs.
//
// Everything here is order-preserving by contract. A Constructor declares
// its edges in a documented, stable order, and core.Graph keeps adjacency
// in declaration order, so any two runs over the same fixture replay the
// same traversal traces.
//
// Usage:
//
//	g, err := builder.Build(nil, builder.Demo())
//	g, err := builder.Build([]core.GraphOption{core.WithWeighted()},
//	        builder.Path(10), builder.Edges([][2]string{{"0", "5"}}))
//
// Errors are package-level sentinels (errors.go); branch with errors.Is.
package builder
