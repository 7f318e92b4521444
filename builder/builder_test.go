// Package builder_test checks topology, layout and weights of every
// constructor plus the named catalogue.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
)

// edgeSet returns the canonical keys of layer l.
func edgeSet(g *core.Graph, l core.Layer) map[core.EdgeKey]float64 {
	m := make(map[core.EdgeKey]float64)
	for _, e := range g.Edges(l) {
		m[e.Key()] = e.Weight
	}

	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				nb, err := g.Neighbors("B")
				require.NoError(t, err)
				assert.Equal(t, []string{"A", "C"}, nb)
				a, _ := g.Position("A")
				b, _ := g.Position("B")
				assert.Equal(t, a.Y, b.Y)
				assert.Less(t, a.X, b.X)
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				assert.Contains(t, edgeSet(g, core.LayerUnweighted), core.NewEdgeKey("E", "A"))
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				nb, err := g.Neighbors(builder.CenterID)
				require.NoError(t, err)
				assert.Equal(t, []string{"A", "B", "C"}, nb)
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				nb, err := g.Neighbors("A")
				require.NoError(t, err)
				assert.Equal(t, []string{"B", "D"}, nb)
				d, _ := g.Position("D")
				a, _ := g.Position("A")
				assert.Equal(t, a.X, d.X)
				assert.Greater(t, d.Y, a.Y)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())

			// Both layers carry the same topology.
			un := edgeSet(g, core.LayerUnweighted)
			w := edgeSet(g, core.LayerWeighted)
			assert.Len(t, un, tc.wantE)
			assert.Len(t, w, tc.wantE)
			for k, weight := range w {
				assert.Contains(t, un, k)
				assert.Equal(t, builder.DefaultEdgeWeight, weight)
			}
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_TooSmall(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"path":     builder.Path(1),
		"cycle":    builder.Cycle(2),
		"star":     builder.Star(1),
		"wheel":    builder.Wheel(3),
		"complete": builder.Complete(0),
		"grid":     builder.Grid(0, 3),
	} {
		_, err := builder.BuildGraph(nil, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}

	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_SeededWeightsAreDeterministic(t *testing.T) {
	build := func() map[core.EdgeKey]float64 {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.IntWeightFn(1, 9))},
			builder.Complete(6),
		)
		require.NoError(t, err)

		return edgeSet(g, core.LayerWeighted)
	}
	first := build()
	assert.Equal(t, first, build())
	for _, w := range first {
		assert.GreaterOrEqual(t, w, 1.0)
		assert.LessOrEqual(t, w, 9.0)
	}
}

func TestBuildGraph_Options(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDijkstraVertices("n0", "n1")},
		[]builder.BuilderOption{
			builder.WithIDScheme(builder.PrefixIDFn("n")),
			builder.WithWeightFn(builder.SequenceWeightFn(3, 5)),
			builder.WithLayout(core.Point{X: 10, Y: 20}, 50),
		},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2"}, g.Vertices())
	assert.Equal(t, []string{"n0", "n1"}, g.DijkstraVertices())

	w, ok := g.Weight("n1", "n2")
	require.True(t, ok)
	assert.Equal(t, 5.0, w)

	p, err := g.Position("n2")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 110, Y: 20}, p)
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "A", builder.LetterIDFn(0))
	assert.Equal(t, "Z", builder.LetterIDFn(25))
	assert.Equal(t, "AA", builder.LetterIDFn(26))
	assert.Equal(t, "", builder.LetterIDFn(-1))
	assert.Equal(t, "7", builder.NumericIDFn(7))
}

func TestWeightFns_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.IntWeightFn(5, 1) })
	assert.Panics(t, func() { builder.SequenceWeightFn() })
	assert.Equal(t, 4.0, builder.IntWeightFn(4, 9)(nil))
}

func TestSample(t *testing.T) {
	g := builder.Sample()
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Vertices())
	assert.Equal(t, g.Vertices(), g.DijkstraVertices())

	want := map[string][]string{
		"A": {"B", "C"}, "B": {"A", "D", "F"}, "C": {"A", "D"},
		"D": {"B", "C", "E"}, "E": {"D", "F"}, "F": {"B", "E"},
	}
	for v, nbs := range want {
		got, err := g.Neighbors(v)
		require.NoError(t, err)
		assert.Equal(t, nbs, got, v)
	}

	w, ok := g.Weight("C", "B")
	require.True(t, ok)
	assert.Equal(t, 1.0, w)
	assert.Len(t, g.Edges(core.LayerWeighted), 9)
	assert.Equal(t, builder.SampleStart, builder.StartOf(g))
}

func TestNamed(t *testing.T) {
	for _, name := range builder.Names() {
		g, err := builder.Named(name)
		require.NoError(t, err, name)
		assert.Positive(t, g.VertexCount(), name)

		again, err := builder.Named(name)
		require.NoError(t, err)
		assert.Equal(t, edgeSet(g, core.LayerWeighted), edgeSet(again, core.LayerWeighted), name)
	}

	terrain, err := builder.Named(builder.GraphTerrain)
	require.NoError(t, err)
	assert.Equal(t, "0,0", builder.StartOf(terrain))
	assert.False(t, terrain.HasVertex("4,0"), "water")

	_, err = builder.Named("moebius")
	assert.ErrorIs(t, err, builder.ErrUnknownGraph)
	assert.Equal(t, "", builder.StartOf(core.NewGraph()))
}
