package dfs_test

import (
	"testing"

	"github.com/abelikov/searchlab/builder"
	"github.com/abelikov/searchlab/dfs"
)

// BenchmarkSearch_Chain10000 measures Search on a linear chain of 10,000
// vertices with the destination at the far end, so every vertex is popped
// exactly once. The graph is built once; the timer excludes construction.
func BenchmarkSearch_Chain10000(b *testing.B) {
	g, err := builder.Build(nil, builder.Path(10000))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Search(g, "0", "9999"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTraverse_Demo measures the full-walk variant on the tiny
// classroom fixture, which is the common case in the exercises.
func BenchmarkTraverse_Demo(b *testing.B) {
	g, err := builder.Build(nil, builder.Demo())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Traverse(g, "A"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_WithTrace quantifies the snapshot overhead of OnStep.
func BenchmarkSearch_WithTrace(b *testing.B) {
	g, err := builder.Build(nil, builder.Demo())
	if err != nil {
		b.Fatal(err)
	}
	sink := func(dfs.Step) {}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Search(g, "A", "J", dfs.WithOnStep(sink)); err != nil {
			b.Fatal(err)
		}
	}
}
