package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// squareWithTail is A–B, A–C, B–D, C–D, D–E.
func squareWithTail(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		require.NoError(t, g.AddUndirectedEdge(e[0], e[1]))
	}

	return g
}

func verticesOf(seq step.Sequence, k step.Kind) []string {
	var out []string
	for _, st := range seq.All() {
		if st.Kind == k {
			out = append(out, st.Vertex)
		}
	}

	return out
}

func edgesOf(seq step.Sequence, k step.Kind) []string {
	var out []string
	for _, st := range seq.All() {
		if st.Kind == k {
			out = append(out, st.From+"→"+st.To)
		}
	}

	return out
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	seq, err := bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.Zero(t, seq.Len())

	_ = g.AddVertex("A", 0, 0)
	_, err = bfs.BFS(g, "A", bfs.WithPalette("", step.ColorGray, step.ColorRed))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SquareWithTail pins the exact recording on the five-vertex sample.
func TestBFS_SquareWithTail(t *testing.T) {
	seq, err := bfs.BFS(squareWithTail(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, verticesOf(seq, step.KindVisit))
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, verticesOf(seq, step.KindProcess))
	assert.Equal(t, []string{"A→B", "A→C", "B→D", "D→E"}, edgesOf(seq, step.KindExplore))

	want := []step.Step{
		{Kind: step.KindVisit, Vertex: "A", Color: step.ColorOrange},
		{Kind: step.KindProcess, Vertex: "A", Color: step.ColorGray},
		{Kind: step.KindExplore, From: "A", To: "B", Color: step.ColorRed},
		{Kind: step.KindVisit, Vertex: "B", Color: step.ColorOrange},
		{Kind: step.KindExplore, From: "A", To: "C", Color: step.ColorRed},
		{Kind: step.KindVisit, Vertex: "C", Color: step.ColorOrange},
		{Kind: step.KindProcess, Vertex: "B", Color: step.ColorGray},
		{Kind: step.KindExplore, From: "B", To: "D", Color: step.ColorRed},
		{Kind: step.KindVisit, Vertex: "D", Color: step.ColorOrange},
		{Kind: step.KindProcess, Vertex: "C", Color: step.ColorGray},
		{Kind: step.KindProcess, Vertex: "D", Color: step.ColorGray},
		{Kind: step.KindExplore, From: "D", To: "E", Color: step.ColorRed},
		{Kind: step.KindVisit, Vertex: "E", Color: step.ColorOrange},
		{Kind: step.KindProcess, Vertex: "E", Color: step.ColorGray},
		{Kind: step.KindFinish},
	}
	assert.Equal(t, want, seq.Slice())
}

// TestBFS_Deterministic runs twice and compares.
func TestBFS_Deterministic(t *testing.T) {
	g := squareWithTail(t)
	a, err := bfs.BFS(g, "C")
	require.NoError(t, err)
	b, err := bfs.BFS(g, "C")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

// TestBFS_LayerOrder checks visits come in non-decreasing hop distance.
func TestBFS_LayerOrder(t *testing.T) {
	// 3x3 grid
	g := core.NewGraph()
	id := func(r, c int) string { return string(rune('a'+r)) + string(rune('0'+c)) }
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				require.NoError(t, g.AddUndirectedEdge(id(r, c), id(r, c+1)))
			}
			if r+1 < 3 {
				require.NoError(t, g.AddUndirectedEdge(id(r, c), id(r+1, c)))
			}
		}
	}
	seq, err := bfs.BFS(g, "a0")
	require.NoError(t, err)

	dist := func(v string) int { return int(v[0]-'a') + int(v[1]-'0') }
	visits := verticesOf(seq, step.KindVisit)
	require.Len(t, visits, 9)
	for i := 1; i < len(visits); i++ {
		assert.LessOrEqual(t, dist(visits[i-1]), dist(visits[i]))
	}
	assert.ElementsMatch(t, visits, verticesOf(seq, step.KindProcess))
}

// TestBFS_Unreachable leaves disconnected vertices out.
func TestBFS_Unreachable(t *testing.T) {
	g := squareWithTail(t)
	_ = g.AddVertex("Z", 0, 0)
	seq, err := bfs.BFS(g, "A", bfs.WithFinish(false))
	require.NoError(t, err)
	assert.NotContains(t, verticesOf(seq, step.KindVisit), "Z")
	last, _ := seq.At(seq.Last())
	assert.NotEqual(t, step.KindFinish, last.Kind)
}

func TestBFS_Palette(t *testing.T) {
	seq, err := bfs.BFS(squareWithTail(t), "A", bfs.WithPalette(step.ColorBlue, step.ColorPurple, step.ColorBrown))
	require.NoError(t, err)
	first, _ := seq.At(0)
	second, _ := seq.At(1)
	third, _ := seq.At(2)
	assert.Equal(t, step.ColorBlue, first.Color)
	assert.Equal(t, step.ColorPurple, second.Color)
	assert.Equal(t, step.ColorBrown, third.Color)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(squareWithTail(t), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
