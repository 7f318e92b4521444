package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// Kruskal records Kruskal's algorithm over the weighted adjacency of graph.
// start is validated but does not influence the result.
//
// Steps:
//  1. Collect each undirected edge once (from < to), walking vertices in
//     insertion order and their weighted neighbors in adjacency order.
//  2. Sort by ascending weight with sort.SliceStable, so equal weights keep
//     collection order.
//  3. Every vertex starts as its own set.
//  4. For each edge record test_edge; if the endpoints are in different
//     sets, merge them and record add_edge_to_mst, add_node_to_mst(from),
//     add_node_to_mst(to); otherwise record discard_edge.
//
// A disconnected graph yields a spanning forest.
//
// Complexity: O(E log E + α(V)·E) time, O(E + V) memory.
func Kruskal(graph *core.Graph, start string, opts ...Option) (step.Sequence, error) {
	// 1. Validate
	if err := validate(graph, start); err != nil {
		return step.Sequence{}, err
	}
	o := options(opts)

	// 2. Collect candidate edges
	vertices := graph.Vertices()
	var edges []core.Edge
	for _, u := range vertices {
		nbs, err := graph.WeightedNeighbors(u)
		if err != nil {
			return step.Sequence{}, err
		}
		for _, e := range nbs {
			if e.From < e.To {
				edges = append(edges, e)
			}
		}
	}

	// 3. Stable sort keeps collection order among equal weights
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint sets
	parent := make(map[string]string, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	// union attaches the second root under the first; false if already joined.
	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		parent[rv] = ru

		return true
	}

	// 5. Scan
	rec := step.NewRecorder(3 * len(edges))
	for _, e := range edges {
		select {
		case <-o.Ctx.Done():
			return step.Sequence{}, o.Ctx.Err()
		default:
		}

		rec.TestEdge(e.From, e.To)
		if !union(e.From, e.To) {
			rec.DiscardEdge(e.From, e.To)
			continue
		}
		rec.AddEdgeToMST(e.From, e.To)
		rec.AddNodeToMST(e.From)
		rec.AddNodeToMST(e.To)
	}

	return rec.Sequence(), nil
}
