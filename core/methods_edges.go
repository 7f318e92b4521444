package core

import (
	"fmt"
	"math"
)

// AddEdge appends to in the unweighted adjacency of from. Missing endpoints
// are created at the origin. A repeated from→to entry is a no-op.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)
	for _, nb := range g.adj[from] {
		if nb == to {
			return nil
		}
	}
	g.adj[from] = append(g.adj[from], to)

	return nil
}

// AddUndirectedEdge records u→v and v→u in the unweighted adjacency.
func (g *Graph) AddUndirectedEdge(u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return err
	}

	return g.AddEdge(v, u)
}

// AddWeightedEdge appends from→to with weight w to the weighted adjacency.
// Re-adding an existing from→to entry overwrites its weight in place.
// w must be finite and non-negative.
func (g *Graph) AddWeightedEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %s→%s weight=%g", ErrInvalidWeight, from, to, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: %s→%s weight=%g", ErrNegativeWeight, from, to, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)
	edges := g.wadj[from]
	for i := range edges {
		if edges[i].To == to {
			edges[i].Weight = w
			return nil
		}
	}
	g.wadj[from] = append(edges, Edge{From: from, To: to, Weight: w})

	return nil
}

// AddUndirectedWeightedEdge records u→v and v→u with the same weight.
func (g *Graph) AddUndirectedWeightedEdge(u, v string, w float64) error {
	if err := g.AddWeightedEdge(u, v, w); err != nil {
		return err
	}

	return g.AddWeightedEdge(v, u, w)
}

// Neighbors returns the unweighted neighbors of id in insertion order.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, len(g.adj[id]))
	copy(out, g.adj[id])

	return out, nil
}

// WeightedNeighbors returns the outgoing weighted edges of id in insertion order.
func (g *Graph) WeightedNeighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(g.wadj[id]))
	copy(out, g.wadj[id])

	return out, nil
}

// Weight returns the weight of from→to and whether that entry exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.wadj[from] {
		if e.To == to {
			return e.Weight, true
		}
	}

	return 0, false
}

// UndirectedWeight returns the weight of from→to, falling back to to→from
// when only the reverse entry exists.
func (g *Graph) UndirectedWeight(from, to string) (float64, bool) {
	if w, ok := g.Weight(from, to); ok {
		return w, true
	}

	return g.Weight(to, from)
}

// Edges returns every undirected edge of the given layer exactly once, in the
// order it is first met when walking vertices and then their adjacency.
// Unweighted edges carry a zero Weight.
func (g *Graph) Edges(layer Layer) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[EdgeKey]struct{})
	var out []Edge
	for _, id := range g.order {
		switch layer {
		case LayerWeighted:
			for _, e := range g.wadj[id] {
				if _, ok := seen[e.Key()]; ok {
					continue
				}
				seen[e.Key()] = struct{}{}
				out = append(out, e)
			}
		default:
			for _, nb := range g.adj[id] {
				k := NewEdgeKey(id, nb)
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				out = append(out, Edge{From: id, To: nb})
			}
		}
	}

	return out
}
