// Package oracle cross-checks recorded runs against gonum's shortest-path
// and spanning-tree implementations. Only tests import it.
package oracle

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/algoviz/core"
)

// Weighted mirrors the weighted layer of a core.Graph into gonum.
type Weighted struct {
	G   *simple.WeightedUndirectedGraph
	IDs map[string]int64
}

// FromCore copies every vertex and weighted edge of g.
func FromCore(g *core.Graph) *Weighted {
	w := &Weighted{
		G:   simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		IDs: make(map[string]int64),
	}
	for i, id := range g.Vertices() {
		w.IDs[id] = int64(i)
		w.G.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges(core.LayerWeighted) {
		w.G.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(w.IDs[e.From]),
			T: simple.Node(w.IDs[e.To]),
			W: e.Weight,
		})
	}

	return w
}

// ShortestFrom returns the shortest distance from src to every reachable vertex.
func (w *Weighted) ShortestFrom(src string) map[string]float64 {
	sp := path.DijkstraFrom(simple.Node(w.IDs[src]), w.G)
	out := make(map[string]float64, len(w.IDs))
	for id, n := range w.IDs {
		if d := sp.WeightTo(n); !math.IsInf(d, 1) {
			out[id] = d
		}
	}

	return out
}

// MSTWeight returns the total weight of a minimum spanning forest.
func (w *Weighted) MSTWeight() float64 {
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return path.Kruskal(dst, w.G)
}
