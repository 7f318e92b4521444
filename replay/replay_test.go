package replay_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/prim_kruskal"
	"github.com/katalvlaran/algoviz/replay"
	"github.com/katalvlaran/algoviz/replay/replaytest"
	"github.com/katalvlaran/algoviz/step"
)

func squareWithTail(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	pos := map[string]core.Point{"A": {X: 100, Y: 100}, "B": {X: 250, Y: 100}, "C": {X: 100, Y: 250}, "D": {X: 250, Y: 250}, "E": {X: 400, Y: 250}}
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(id, pos[id].X, pos[id].Y))
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		require.NoError(t, g.AddUndirectedEdge(e[0], e[1]))
	}

	return g
}

func path3(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddUndirectedWeightedEdge("A", "B", 1))
	require.NoError(t, g.AddUndirectedWeightedEdge("B", "C", 1))

	return g
}

func TestStateAt_OutOfRange(t *testing.T) {
	g := squareWithTail(t)
	seq, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	for _, i := range []int{-1, seq.Len(), seq.Len() + 5} {
		_, err = replay.StateAt(g, replay.TraversalRules{}, seq, i)
		assert.ErrorIs(t, err, replay.ErrIndexOutOfRange, "index %d", i)
	}
	_, err = replay.StateAt(g, replay.TraversalRules{}, step.Sequence{}, 0)
	assert.ErrorIs(t, err, step.ErrIndexOutOfRange)
}

// TestTraversal_FinalState checks the end of the BFS sample run.
func TestTraversal_FinalState(t *testing.T) {
	g := squareWithTail(t)
	seq, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	vs, err := replay.StateAt(g, replay.TraversalRules{}, seq, seq.Last())
	require.NoError(t, err)
	for _, v := range []string{"A", "B", "C", "D", "E"} {
		assert.Equal(t, step.ColorGray, vs.NodeColors[v], v)
	}
	assert.Equal(t, map[core.EdgeKey]step.Color{
		core.NewEdgeKey("A", "B"): step.ColorRed,
		core.NewEdgeKey("A", "C"): step.ColorRed,
		core.NewEdgeKey("B", "D"): step.ColorRed,
		core.NewEdgeKey("D", "E"): step.ColorRed,
	}, vs.EdgeColors)
	assert.Empty(t, vs.Info)
	assert.Equal(t, seq.Last(), vs.Index)
}

// TestTraversal_LastWriteWins: visit then process leaves the process color.
func TestTraversal_LastWriteWins(t *testing.T) {
	seq := step.NewSequence(
		step.Step{Kind: step.KindVisit, Vertex: "A", Color: step.ColorOrange},
		step.Step{Kind: step.KindExplore, From: "B", To: "A", Color: step.ColorRed},
		step.Step{Kind: step.KindProcess, Vertex: "A", Color: step.ColorGray},
		step.Step{Kind: step.KindExplore, From: "A", To: "B", Color: step.ColorBlue},
	)
	vs, err := replay.StateAt(nil, replay.TraversalRules{}, seq, 3)
	require.NoError(t, err)
	assert.Equal(t, step.ColorGray, vs.NodeColors["A"])
	// B→A and A→B share one canonical key.
	assert.Equal(t, map[core.EdgeKey]step.Color{{A: "A", B: "B"}: step.ColorBlue}, vs.EdgeColors)

	vs, err = replay.StateAt(nil, replay.TraversalRules{}, seq, 0)
	require.NoError(t, err)
	assert.Equal(t, step.ColorOrange, vs.NodeColors["A"])
	assert.Empty(t, vs.EdgeColors)
}

func TestTraversal_DefaultColors(t *testing.T) {
	seq := step.NewSequence(
		step.Step{Kind: step.KindVisit, Vertex: "A"},
		step.Step{Kind: step.KindExplore, From: "A", To: "B"},
		step.Step{Kind: step.KindProcess, Vertex: "B"},
		step.Step{Kind: step.KindFinish},
	)
	vs, err := replay.StateAt(nil, replay.TraversalRules{}, seq, 3)
	require.NoError(t, err)
	assert.Equal(t, step.ColorOrange, vs.NodeColors["A"])
	assert.Equal(t, step.ColorGray, vs.NodeColors["B"])
	assert.Equal(t, step.ColorRed, vs.EdgeColors[core.NewEdgeKey("A", "B")])
}

// TestDijkstra_InfoLines walks the three-vertex path scenario.
func TestDijkstra_InfoLines(t *testing.T) {
	g := path3(t)
	seq, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	// 0 update A=0, 1 visit A, 2 explore A→B, 3 update B=1, 4 visit B,
	// 5 explore B→C, 6 update C=2, 7 visit C
	require.Equal(t, 8, seq.Len())

	vs, err := replay.StateAt(g, replay.DijkstraRules{}, seq, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "0", "B": "∞", "C": "∞"}, vs.NodeText)
	assert.Equal(t, step.ColorOrange, vs.NodeColors["A"])
	assert.Equal(t, []string{
		"Visited: ",
		"Priority Queue: A(0)",
		"Distances: A=0, B=∞, C=∞",
		"Parent: ",
	}, vs.Info)

	vs, err = replay.StateAt(g, replay.DijkstraRules{}, seq, 3)
	require.NoError(t, err)
	assert.Equal(t, step.ColorLightGreen, vs.NodeColors["A"])
	assert.Equal(t, step.ColorOrange, vs.NodeColors["B"])
	assert.Equal(t, step.ColorRed, vs.EdgeColors[core.NewEdgeKey("A", "B")])
	assert.Equal(t, []string{
		"Visited: A",
		"Priority Queue: B(1)",
		"Distances: A=0, B=1, C=∞",
		"Parent: B←A",
	}, vs.Info)

	vs, err = replay.StateAt(g, replay.DijkstraRules{}, seq, seq.Last())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "0", "B": "1", "C": "2"}, vs.NodeText)
	assert.Equal(t, []string{
		"Visited: A, B, C",
		"Priority Queue: ",
		"Distances: A=0, B=1, C=2",
		"Parent: B←A, C←B",
	}, vs.Info)
}

// TestDijkstra_NoDowngrade: update after visit keeps lightgreen.
func TestDijkstra_NoDowngrade(t *testing.T) {
	seq := step.NewSequence(
		step.Step{Kind: step.KindUpdateDistance, Vertex: "A"},
		step.Step{Kind: step.KindVisit, Vertex: "A"},
		step.Step{Kind: step.KindUpdateDistance, Vertex: "A", Distance: 5, Parent: "B"},
		step.Step{Kind: step.KindUpdateDistance, Vertex: "C", Distance: 2.5, Parent: "A"},
		step.Step{Kind: step.KindUpdateDistance, Vertex: "C", Distance: 1.5, Parent: "B"},
	)
	vs, err := replay.StateAt(nil, replay.DijkstraRules{}, seq, 4)
	require.NoError(t, err)
	assert.Equal(t, step.ColorLightGreen, vs.NodeColors["A"])
	assert.Equal(t, "5", vs.NodeText["A"])
	assert.Equal(t, "1.5", vs.NodeText["C"])
	// Both C entries stay queued until C is visited.
	assert.Equal(t, "Priority Queue: C(1.5), C(2.5), A(5)", vs.Info[1])
	assert.Equal(t, "Parent: A←B, C←B", vs.Info[3])
}

// TestMST_Locking: accepted edges stay green.
func TestMST_Locking(t *testing.T) {
	seq := step.NewSequence(
		step.Step{Kind: step.KindExploreEdge, From: "A", To: "B"},
		step.Step{Kind: step.KindTestEdge, From: "A", To: "B"},
		step.Step{Kind: step.KindAddNodeToMST, Vertex: "B"},
		step.Step{Kind: step.KindAddEdgeToMST, From: "A", To: "B"},
		step.Step{Kind: step.KindDiscardEdge, From: "B", To: "A"},
		step.Step{Kind: step.KindExploreEdge, From: "B", To: "C"},
		step.Step{Kind: step.KindTestEdge, From: "C", To: "B"},
		step.Step{Kind: step.KindDiscardEdge, From: "B", To: "C"},
	)
	ab, bc := core.NewEdgeKey("A", "B"), core.NewEdgeKey("B", "C")
	want := []map[core.EdgeKey]step.Color{
		{ab: step.ColorOrange},
		{ab: step.ColorRed},
		{ab: step.ColorRed},
		{ab: step.ColorGreen},
		{ab: step.ColorGreen},
		{ab: step.ColorGreen, bc: step.ColorOrange},
		{ab: step.ColorGreen, bc: step.ColorRed},
		{ab: step.ColorGreen, bc: step.ColorGray},
	}
	for i := range want {
		vs, err := replay.StateAt(nil, replay.MSTRules{}, seq, i)
		require.NoError(t, err)
		assert.Equal(t, want[i], vs.EdgeColors, "index %d", i)
	}
	vs, _ := replay.StateAt(nil, replay.MSTRules{}, seq, 7)
	assert.Equal(t, step.ColorLightGreen, vs.NodeColors["B"])
	assert.Equal(t, "Tree: A-B", vs.Info[0])
}

func TestMST_WeightInfo(t *testing.T) {
	g := path3(t)
	seq, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	vs, err := replay.StateAt(g, replay.MSTRules{}, seq, seq.Last())
	require.NoError(t, err)
	assert.Equal(t, []string{"Tree: A-B, B-C", "Weight: 2"}, vs.Info)
}

func TestMST_WeightInfoOneWayEntry(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddWeightedEdge("B", "A", 5))
	seq, err := prim_kruskal.Prim(g, "B")
	require.NoError(t, err)

	vs, err := replay.StateAt(g, replay.MSTRules{}, seq, seq.Last())
	require.NoError(t, err)
	assert.Equal(t, []string{"Tree: A-B", "Weight: 5"}, vs.Info)
}

// TestEngine_MatchesFreshFold jumps around and compares with StateAt.
func TestEngine_MatchesFreshFold(t *testing.T) {
	g := path3(t)
	require.NoError(t, g.AddUndirectedWeightedEdge("A", "C", 3))
	seq, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)

	e := replay.NewEngine(g, replay.DijkstraRules{}, seq)
	rng := rand.New(rand.NewSource(3))
	order := []int{0, 1, 2, seq.Last(), 1, seq.Last(), 0}
	for k := 0; k < 30; k++ {
		order = append(order, rng.Intn(seq.Len()))
	}
	for _, i := range order {
		got, err := e.State(i)
		require.NoError(t, err)
		want, err := replay.StateAt(g, replay.DijkstraRules{}, seq, i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "index %d", i)
	}

	_, err = e.State(seq.Len())
	assert.ErrorIs(t, err, replay.ErrIndexOutOfRange)
}

// TestEngine_StatesAreCopies mutates a returned state and re-queries.
func TestEngine_StatesAreCopies(t *testing.T) {
	g := squareWithTail(t)
	seq, _ := bfs.BFS(g, "A")
	e := replay.NewEngine(g, replay.TraversalRules{}, seq)

	first, err := e.State(4)
	require.NoError(t, err)
	first.NodeColors["A"] = step.ColorBlack
	again, err := e.State(4)
	require.NoError(t, err)
	assert.Equal(t, step.ColorGray, again.NodeColors["A"])

	// Continuing forward from the cache must not touch the earlier copy.
	_, err = e.State(seq.Last())
	require.NoError(t, err)
	assert.NotContains(t, again.NodeColors, "E")
}

func TestEngine_Render(t *testing.T) {
	g := squareWithTail(t)
	seq, _ := bfs.BFS(g, "A")

	e := replay.NewEngine(g, replay.TraversalRules{}, seq)
	assert.ErrorIs(t, e.Render(0), replay.ErrNoDrawer)

	rec := replaytest.NewRecorder()
	rec.SkipNodes["E"] = true
	rec.SkipEdges[core.NewEdgeKey("D", "E")] = true
	e = replay.NewEngine(g, replay.TraversalRules{}, seq, replay.WithDrawer(rec), replay.WithName("BFS"))

	require.NoError(t, e.Render(seq.Last()))
	f := rec.Last()
	assert.Len(t, f.Diagram.Nodes, 5)
	assert.Len(t, f.Diagram.Edges, 5)
	assert.Equal(t, core.LayerUnweighted, f.Diagram.Layer)
	assert.NotContains(t, f.NodeColors, "E")
	assert.NotContains(t, f.EdgeColors, core.NewEdgeKey("D", "E"))
	assert.Equal(t, step.ColorGray, f.NodeColors["D"])
	assert.Equal(t, "Step: 14 / 14", f.Title)
	assert.Equal(t, 1, rec.Flushes())

	assert.ErrorIs(t, e.Render(99), replay.ErrIndexOutOfRange)
	assert.Equal(t, 1, rec.Frames())
}

func TestEngine_RenderWeighted(t *testing.T) {
	g := path3(t)
	seq, _ := dijkstra.Dijkstra(g, "A")
	rec := replaytest.NewRecorder()
	e := replay.NewEngine(g, replay.DijkstraRules{}, seq, replay.WithDrawer(rec))

	require.NoError(t, e.Render(0))
	f := rec.Last()
	require.Len(t, f.Diagram.Edges, 2)
	assert.True(t, f.Diagram.Edges[0].Weighted)
	assert.Equal(t, 1.0, f.Diagram.Edges[0].Weight)
	assert.Equal(t, "∞", f.NodeText["C"])
	assert.Len(t, f.Info, 4)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0", replay.FormatDistance(0))
	assert.Equal(t, "2.5", replay.FormatDistance(2.5))
	assert.Equal(t, replay.Infinity, replay.FormatDistance(math.Inf(1)))
}

// TestEngine_LongSequenceCheckpoints seeks backwards across checkpoints.
func TestEngine_LongSequenceCheckpoints(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 40; i++ {
		for j := i + 1; j < 40; j += 7 {
			require.NoError(t, g.AddUndirectedWeightedEdge(vid(i), vid(j), float64((i*j)%11+1)))
		}
	}
	seq, err := dijkstra.Dijkstra(g, vid(0))
	require.NoError(t, err)
	require.Greater(t, seq.Len(), 100)

	e := replay.NewEngine(g, replay.DijkstraRules{}, seq)
	_, err = e.State(seq.Last())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for k := 0; k < 40; k++ {
		i := rng.Intn(seq.Len())
		got, err := e.State(i)
		require.NoError(t, err)
		want, err := replay.StateAt(g, replay.DijkstraRules{}, seq, i)
		require.NoError(t, err)
		require.Equal(t, want, got, "index %d", i)
	}
}

func vid(i int) string { return string(rune('a'+i/26)) + string(rune('a'+i%26)) }
