// Package core defines the Graph model every algorithm and every replay
// reads from: positioned vertices, an unweighted adjacency for traversals,
// a weighted adjacency for shortest paths and spanning trees, and the
// dedicated vertex set Dijkstra runs over.
//
// All adjacency lists keep insertion order. Algorithms iterate neighbors in
// exactly that order, which is what makes a recorded step sequence
// reproducible from run to run.
//
// The graph is guarded by a sync.RWMutex so that a single built graph can be
// shared by concurrent readers (for example several HTTP requests replaying
// different algorithms). By convention it is not mutated once a run starts.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNegativeWeight - weighted edge with a negative weight.
//	ErrInvalidWeight  - weighted edge with a NaN or infinite weight.
//	ErrLoopNotAllowed - edge from a vertex to itself.
package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates a weighted edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrInvalidWeight indicates a NaN or infinite weight.
	ErrInvalidWeight = errors.New("core: edge weight is not finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Point is a 2D drawing position.
type Point struct {
	X float64
	Y float64
}

// Vertex is a positioned node of the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Pos is where drawers place the vertex.
	Pos Point
}

// Edge is one entry of the weighted adjacency: From→To with Weight.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Key returns the canonical undirected identity of e.
func (e Edge) Key() EdgeKey { return NewEdgeKey(e.From, e.To) }

// EdgeKey is the undirected identity of an edge: endpoints sorted so that
// (x,y) and (y,x) collapse to the same key.
type EdgeKey struct {
	A string
	B string
}

// NewEdgeKey returns the canonical key for the edge between u and v.
func NewEdgeKey(u, v string) EdgeKey {
	if v < u {
		u, v = v, u
	}

	return EdgeKey{A: u, B: v}
}

// String renders the key as "A-B".
func (k EdgeKey) String() string { return k.A + "-" + k.B }

// MarshalText lets EdgeKey serve as a JSON object key.
func (k EdgeKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses "A-B". The split is at the first '-', so vertex IDs
// containing '-' do not round-trip.
func (k *EdgeKey) UnmarshalText(b []byte) error {
	u, v, ok := strings.Cut(string(b), "-")
	if !ok || u == "" || v == "" {
		return fmt.Errorf("%w: edge key %q", ErrEmptyVertexID, b)
	}
	*k = NewEdgeKey(u, v)

	return nil
}

// Layer selects which adjacency of a Graph is meant.
type Layer int

const (
	// LayerUnweighted is the plain adjacency used by BFS and DFS.
	LayerUnweighted Layer = iota

	// LayerWeighted is the weighted adjacency used by Dijkstra, Prim and Kruskal.
	LayerWeighted
)

// String implements fmt.Stringer.
func (l Layer) String() string {
	switch l {
	case LayerUnweighted:
		return "unweighted"
	case LayerWeighted:
		return "weighted"
	default:
		return "unknown"
	}
}

// Graph holds vertices, both adjacencies and the Dijkstra vertex set.
//
// Fields:
//   - order:    vertex IDs in insertion order.
//   - vertices: ID → *Vertex.
//   - adj:      unweighted adjacency, ID → ordered neighbor IDs.
//   - wadj:     weighted adjacency, ID → ordered outgoing edges.
//   - dijkstra: explicitly declared Dijkstra vertex set (insertion order).
type Graph struct {
	mu sync.RWMutex

	order    []string
	vertices map[string]*Vertex
	adj      map[string][]string
	wadj     map[string][]Edge

	dijkstra    []string
	dijkstraSet map[string]struct{}
}

// GraphOption configures a Graph before any vertex is added.
type GraphOption func(g *Graph)

// WithDijkstraVertices declares the dedicated Dijkstra vertex set up front.
// IDs that are never added as vertices are ignored by DijkstraVertices.
func WithDijkstraVertices(ids ...string) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			if _, ok := g.dijkstraSet[id]; ok || id == "" {
				continue
			}
			g.dijkstraSet[id] = struct{}{}
			g.dijkstra = append(g.dijkstra, id)
		}
	}
}

// NewGraph creates an empty Graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:    make(map[string]*Vertex),
		adj:         make(map[string][]string),
		wadj:        make(map[string][]Edge),
		dijkstraSet: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
