package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
)

// ExampleBFS records a traversal of a small diamond and prints each step.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddUndirectedEdge("A", "B")
	_ = g.AddUndirectedEdge("A", "C")
	_ = g.AddUndirectedEdge("B", "D")
	_ = g.AddUndirectedEdge("C", "D")

	seq, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, st := range seq.All() {
		fmt.Println(i, st)
	}
	// Output:
	// 0 visit A orange
	// 1 process A gray
	// 2 explore A→B red
	// 3 visit B orange
	// 4 explore A→C red
	// 5 visit C orange
	// 6 process B gray
	// 7 explore B→D red
	// 8 visit D orange
	// 9 process C gray
	// 10 process D gray
	// 11 finish
}
