// Package dijkstra records Dijkstra's shortest-path algorithm as a
// step.Sequence.
//
// The run is restricted to the graph's Dijkstra vertex set. Every vertex of
// that set starts at +Inf except the source, which starts at 0 and is
// announced with update_distance(start, 0) and no parent.
//
// Each pop from the min-heap is skipped when stale (its distance is worse
// than the recorded one) or already finalised. Otherwise the vertex is
// finalised with visit(u), and for every weighted neighbor not yet visited:
//
//	explore(u→v), then on a strict improvement
//	update_distance(v, d, u) and a heap push.
//
// A vertex therefore never receives update_distance after its visit.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap uses lazy decrease-key.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// Dijkstra records a shortest-path run on g from source.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. source must be in g.DijkstraVertices() (ErrStartVertexNotFound).
func Dijkstra(g *core.Graph, source string, opts ...Option) (step.Sequence, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return step.Sequence{}, ErrGraphNil
	}
	if !g.HasDijkstraVertex(source) {
		return step.Sequence{}, fmt.Errorf("%w: %q", ErrStartVertexNotFound, source)
	}

	// 3) Prepare state over the Dijkstra vertex set
	vertices := g.DijkstraVertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
		rec:     step.NewRecorder(4 * len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}

	// 4) Seed and run
	r.dist[source] = 0
	r.rec.UpdateDistance(source, 0, "")
	r.push(source, 0)
	if err := r.process(); err != nil {
		return step.Sequence{}, err
	}

	return r.rec.Sequence(), nil
}

// Distances replays the update_distance steps of seq and returns the final
// distance of every vertex that received one.
func Distances(seq step.Sequence) map[string]float64 {
	out := make(map[string]float64)
	for _, st := range seq.All() {
		if st.Kind == step.KindUpdateDistance {
			out[st.Vertex] = st.Distance
		}
	}

	return out
}

// Parents returns the last recorded predecessor of every vertex.
func Parents(seq step.Sequence) map[string]string {
	out := make(map[string]string)
	for _, st := range seq.All() {
		if st.Kind == step.KindUpdateDistance && st.HasParent() {
			out[st.Vertex] = st.Parent
		}
	}

	return out
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // read-only input
	options Options            // configuration
	dist    map[string]float64 // vertex → best known distance
	visited map[string]bool    // finalised vertices
	pq      nodePQ             // lazy min-heap
	seq     int                // push counter for tie-breaks
	rec     *step.Recorder
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// distance returns dist[v], +Inf for vertices outside the Dijkstra set.
func (r *runner) distance(v string) float64 {
	if d, ok := r.dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// process pops until the heap drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		// 1) Pop the smallest-distance item
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale or finalised entries
		if item.dist > r.distance(u) || r.visited[u] {
			continue
		}

		// 3) Finalise u
		r.visited[u] = true
		r.rec.Visit(u, step.ColorNone)

		// 4) Relax outgoing edges
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax records explore for every unvisited neighbor of u and
// update_distance for each strict improvement.
func (r *runner) relax(u string) error {
	edges, err := r.g.WeightedNeighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, e := range edges {
		v := e.To
		if r.visited[v] {
			continue
		}
		r.rec.Explore(u, v, r.options.ExploreColor)

		newDist := r.dist[u] + e.Weight
		if newDist >= r.distance(v) {
			continue
		}
		r.dist[v] = newDist
		r.push(v, newDist)
		r.rec.UpdateDistance(v, newDist, u)
	}

	return nil
}
