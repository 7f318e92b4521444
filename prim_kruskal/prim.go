package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// Prim records Prim's algorithm growing a spanning tree from root over the
// weighted adjacency of graph.
//
// Steps:
//  1. add_node_to_mst(root); push every edge of root with explore_edge.
//  2. While the heap is not empty, pop the lightest edge (u→v) and record
//     test_edge(u, v).
//     a. v already in the tree: discard_edge(u, v).
//     b. otherwise add_node_to_mst(v), add_edge_to_mst(u, v), and push every
//     edge of v whose far end is outside the tree with explore_edge.
//
// Equal weights pop in (from, to) order, then push order.
// A disconnected graph yields the tree of root's component only.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string, opts ...Option) (step.Sequence, error) {
	// 1. Validate inputs
	if err := validate(graph, root); err != nil {
		return step.Sequence{}, err
	}
	o := options(opts)

	p := &primRunner{
		graph:  graph,
		inTree: make(map[string]bool, graph.VertexCount()),
		pq:     &edgePQ{},
		rec:    step.NewRecorder(4 * graph.VertexCount()),
	}
	heap.Init(p.pq)

	// 2. Seed with root and all of its edges
	p.inTree[root] = true
	p.rec.AddNodeToMST(root)
	if err := p.pushEdges(root); err != nil {
		return step.Sequence{}, err
	}

	// 3. Main loop
	for p.pq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return step.Sequence{}, o.Ctx.Err()
		default:
		}

		e := heap.Pop(p.pq).(*edgeItem)
		p.rec.TestEdge(e.from, e.to)
		if p.inTree[e.to] {
			p.rec.DiscardEdge(e.from, e.to)
			continue
		}
		p.inTree[e.to] = true
		p.rec.AddNodeToMST(e.to)
		p.rec.AddEdgeToMST(e.from, e.to)
		if err := p.pushEdges(e.to); err != nil {
			return step.Sequence{}, err
		}
	}

	return p.rec.Sequence(), nil
}

type primRunner struct {
	graph  *core.Graph
	inTree map[string]bool
	pq     *edgePQ
	seq    int
	rec    *step.Recorder
}

// pushEdges pushes every edge of u leading outside the tree.
func (p *primRunner) pushEdges(u string) error {
	edges, err := p.graph.WeightedNeighbors(u)
	if err != nil {
		return fmt.Errorf("prim_kruskal: neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		if p.inTree[e.To] {
			continue
		}
		heap.Push(p.pq, &edgeItem{from: u, to: e.To, weight: e.Weight, seq: p.seq})
		p.seq++
		p.rec.ExploreEdge(u, e.To)
	}

	return nil
}

// edgeItem is one candidate edge in Prim's frontier.
type edgeItem struct {
	from   string
	to     string
	weight float64
	seq    int
}

// edgePQ implements heap.Interface for a min-heap ordered by
// (weight, from, to, seq).
type edgePQ []*edgeItem

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then endpoints, then push order.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	switch {
	case a.weight != b.weight:
		return a.weight < b.weight
	case a.from != b.from:
		return a.from < b.from
	case a.to != b.to:
		return a.to < b.to
	default:
		return a.seq < b.seq
	}
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *edgeItem to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return edge
}
