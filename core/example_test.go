package core_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// ExampleGraph shows both adjacency layers living on one set of vertices.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex("A", 100, 100)
	_ = g.AddVertex("B", 250, 100)
	_ = g.AddVertex("C", 100, 250)

	_ = g.AddUndirectedEdge("A", "B")
	_ = g.AddUndirectedEdge("A", "C")
	_ = g.AddUndirectedWeightedEdge("B", "C", 2.5)

	nbs, _ := g.Neighbors("A")
	fmt.Println("A:", nbs)
	for _, e := range g.Edges(core.LayerWeighted) {
		fmt.Printf("%s w=%g\n", e.Key(), e.Weight)
	}
	// Output:
	// A: [B C]
	// B-C w=2.5
}
