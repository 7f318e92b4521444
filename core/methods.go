package core

import (
	"fmt"
)

// AddVertex inserts id at (x, y). Re-adding an existing vertex only moves it;
// its position in the vertex order is kept.
func (g *Graph) AddVertex(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
	g.vertices[id].Pos = Point{X: x, Y: y}

	return nil
}

// ensureVertex adds id at the origin if missing. Caller must hold g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.order = append(g.order, id)
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Position returns the drawing position of id.
func (g *Graph) Position(id string) (Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v.Pos, nil
}

// AddDijkstraVertex adds id to the dedicated Dijkstra vertex set.
// The vertex must already exist.
func (g *Graph) AddDijkstraVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if _, ok := g.dijkstraSet[id]; ok {
		return nil
	}
	g.dijkstraSet[id] = struct{}{}
	g.dijkstra = append(g.dijkstra, id)

	return nil
}

// DijkstraVertices returns the dedicated Dijkstra vertex set in declaration
// order, or every vertex when no set was declared.
func (g *Graph) DijkstraVertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.order))
	for _, id := range g.dijkstra {
		if _, ok := g.vertices[id]; ok {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		out = append(out, g.order...)
	}

	return out
}

// HasDijkstraVertex reports whether id belongs to DijkstraVertices.
func (g *Graph) HasDijkstraVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return false
	}
	declared := false
	for _, d := range g.dijkstra {
		if _, ok := g.vertices[d]; ok {
			declared = true
			break
		}
	}
	if !declared {
		return true
	}
	_, in := g.dijkstraSet[id]

	return in
}
