// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// sample.go: the built-in demo graph and the named catalogue used by the
// CLI and the configuration loader.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/gridgraph"
)

// Catalogue names accepted by Named.
const (
	GraphSample   = "sample"
	GraphPath     = "path"
	GraphCycle    = "cycle"
	GraphGrid     = "grid"
	GraphStar     = "star"
	GraphWheel    = "wheel"
	GraphComplete = "complete"
	GraphTerrain  = "terrain"
)

// Sizes and weight range of the generated catalogue entries.
const (
	namedSize      = 6
	namedGridSide  = 3
	namedMinWeight = 1
	namedMaxWeight = 9
	namedSeed      = 7
)

// SampleStart is the start vertex that suits every algorithm on Sample.
const SampleStart = "A"

type sampleVertex struct {
	id   string
	x, y float64
}

type sampleEdge struct {
	u, v string
	w    float64
}

var (
	sampleVertices = []sampleVertex{
		{"A", 60, 60}, {"B", 240, 60}, {"C", 60, 240},
		{"D", 240, 240}, {"E", 420, 240}, {"F", 420, 60},
	}
	// Unweighted adjacency, emitted per vertex so neighbor order reads
	// A:[B C] B:[A D F] C:[A D] D:[B C E] E:[D F] F:[B E].
	sampleAdjacency = [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"B", "F"},
		{"C", "D"}, {"D", "E"}, {"E", "F"},
	}
	sampleWeighted = []sampleEdge{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1}, {"B", "D", 5},
		{"C", "D", 8}, {"C", "E", 10}, {"D", "E", 2}, {"D", "F", 6},
		{"E", "F", 3},
	}
)

// Sample returns the six-vertex demo graph. The weighted layer carries a
// triangle A-B-C that the unweighted layer lacks, so the shortest path and
// the spanning tree differ visibly from the traversal trees.
func Sample() *core.Graph {
	ids := make([]string, len(sampleVertices))
	for i, sv := range sampleVertices {
		ids[i] = sv.id
	}
	g := core.NewGraph(core.WithDijkstraVertices(ids...))
	for _, sv := range sampleVertices {
		mustNot(g.AddVertex(sv.id, sv.x, sv.y))
	}
	for _, e := range sampleAdjacency {
		mustNot(g.AddUndirectedEdge(e[0], e[1]))
	}
	for _, e := range sampleWeighted {
		mustNot(g.AddUndirectedWeightedEdge(e.u, e.v, e.w))
	}

	return g
}

// terrainMap is the builtin terrain: 0 is water, higher digits cost more
// to cross.
var terrainMap = []string{
	"11210",
	"19101",
	"11111",
	"01291",
}

// Terrain returns the largest island of the builtin terrain map, one vertex
// per land cell named "x,y".
func Terrain() (*core.Graph, error) {
	opts := gridgraph.DefaultGridOptions()
	opts.LargestOnly = true
	gg, err := gridgraph.ParseTerrain(terrainMap, opts)
	if err != nil {
		return nil, err
	}

	return gg.ToCoreGraph()
}

// mustNot panics on err; only used for the static sample data.
func mustNot(err error) {
	if err != nil {
		panic(fmt.Sprintf("builder: sample graph: %v", err))
	}
}

// Names lists the catalogue in display order.
func Names() []string {
	return []string{GraphSample, GraphPath, GraphCycle, GraphGrid, GraphStar, GraphWheel, GraphComplete, GraphTerrain}
}

// Named builds a catalogue graph by name. Generated entries use seeded
// whole-number weights, so the same name always yields the same graph.
// Extra opts are applied after the catalogue defaults.
func Named(name string, opts ...BuilderOption) (*core.Graph, error) {
	var con Constructor
	switch name {
	case GraphSample:
		return Sample(), nil
	case GraphTerrain:
		return Terrain()
	case GraphPath:
		con = Path(namedSize)
	case GraphCycle:
		con = Cycle(namedSize)
	case GraphGrid:
		con = Grid(namedGridSide, namedGridSide)
	case GraphStar:
		con = Star(namedSize)
	case GraphWheel:
		con = Wheel(namedSize)
	case GraphComplete:
		con = Complete(namedSize - 1)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGraph, name)
	}
	bopts := append([]BuilderOption{
		WithSeed(namedSeed),
		WithWeightFn(IntWeightFn(namedMinWeight, namedMaxWeight)),
	}, opts...)

	return BuildGraph(nil, bopts, con)
}

// StartOf returns the conventional start vertex of g: the first inserted
// vertex, or "" for an empty graph.
func StartOf(g *core.Graph) string {
	if vs := g.Vertices(); len(vs) > 0 {
		return vs[0]
	}

	return ""
}
