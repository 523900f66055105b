package bfs_test

import (
	"fmt"
	"strings"

	"github.com/abelikov/searchlab/bfs"
	"github.com/abelikov/searchlab/builder"
)

// ExampleSearch contrasts breadth-first search with the DFS exercise on
// the same classroom graph: BFS reaches J in level order and PathTo
// yields the true shortest route, detour-free.
func ExampleSearch() {
	g, err := builder.Build(nil, builder.Demo())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.Search(g, "A", "J")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Join(res.Order, " "))
	path, _ := res.PathTo("J")
	fmt.Println(strings.Join(path, " "))

	// Output:
	// A B C D E F J
	// A B E J
}
