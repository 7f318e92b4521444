package canvas_test

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/canvas"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/replay"
	"github.com/katalvlaran/algoviz/step"
)

// triangle is A(0,0) B(120,0) C(0,120) with both layers populated.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 60, 60))
	require.NoError(t, g.AddVertex("B", 180, 60))
	require.NoError(t, g.AddVertex("C", 60, 180))
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}} {
		require.NoError(t, g.AddUndirectedEdge(e[0], e[1]))
	}
	require.NoError(t, g.AddUndirectedWeightedEdge("A", "B", 4))
	require.NoError(t, g.AddUndirectedWeightedEdge("A", "C", 2.5))
	require.NoError(t, g.AddUndirectedWeightedEdge("B", "C", 1))

	return g
}

func traversal() step.Sequence {
	r := step.NewRecorder(4)
	r.Visit("A", step.ColorOrange)
	r.Process("A", step.ColorGray)
	r.Explore("A", "B", step.ColorRed)
	r.Visit("B", step.ColorOrange)

	return r.Sequence()
}

func TestSVG_RendersFrame(t *testing.T) {
	var out bytes.Buffer
	svg := canvas.NewSVG(canvas.WithSVGOutput(&out))
	eng := replay.NewEngine(triangle(t), replay.TraversalRules{}, traversal(), replay.WithDrawer(svg))

	require.NoError(t, eng.Render(3))
	doc := string(svg.Bytes())
	assert.Equal(t, out.String(), doc)

	assert.Contains(t, doc, "Step: 3 / 3")
	assert.Equal(t, 3, strings.Count(doc, "<circle"))
	assert.Equal(t, 3, strings.Count(doc, "<line"))
	assert.Contains(t, doc, `fill="gray"`)
	assert.Contains(t, doc, `fill="orange"`)
	assert.Contains(t, doc, `stroke="red"`)
	assert.NotContains(t, doc, ">4<", "unweighted layer carries no weight labels")

	// Well-formed XML.
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestSVG_WeightedLabelsAndInfo(t *testing.T) {
	r := step.NewRecorder(2)
	r.UpdateDistance("A", 0, "")
	r.Visit("A", step.ColorNone)
	seq := r.Sequence()

	svg := canvas.NewSVG()
	eng := replay.NewEngine(triangle(t), replay.DijkstraRules{}, seq, replay.WithDrawer(svg))
	require.NoError(t, eng.Render(1))

	doc := string(svg.Bytes())
	assert.Contains(t, doc, ">2.5<")
	assert.Contains(t, doc, ">∞<")
	assert.Contains(t, doc, "Visited: A")
	assert.Contains(t, doc, "Distances:")
}

func TestSVG_EscapesText(t *testing.T) {
	svg := canvas.NewSVG()
	svg.DrawBase(replay.Diagram{Nodes: []replay.DiagramNode{{ID: "<x>"}}})
	svg.SetTitle(`a & "b"`)
	require.NoError(t, svg.Flush())

	doc := string(svg.Bytes())
	assert.NotContains(t, doc, "<x>")
	assert.Contains(t, doc, "&lt;x&gt;")
	assert.Contains(t, doc, "a &amp; ")
}

func TestTerminal_PlainFrame(t *testing.T) {
	var out bytes.Buffer
	term := canvas.NewTerminal(canvas.WithTerminalOutput(&out), canvas.WithColor(false))
	eng := replay.NewEngine(triangle(t), replay.TraversalRules{}, traversal(), replay.WithDrawer(term))

	require.NoError(t, eng.Render(0))
	frame := term.String()
	assert.Equal(t, out.String(), frame)
	assert.NotContains(t, frame, "\x1b[")

	lines := strings.Split(frame, "\n")
	assert.Equal(t, "Step: 0 / 3", lines[0])
	for _, id := range []string{"(A)", "(B)", "(C)"} {
		assert.Contains(t, frame, id)
	}
	assert.Contains(t, frame, "---", "horizontal edge A-B")
	assert.Contains(t, frame, "|", "vertical edge A-C")
}

func TestTerminal_ColorsAndRawMode(t *testing.T) {
	var out bytes.Buffer
	term := canvas.NewTerminal(
		canvas.WithTerminalOutput(&out),
		canvas.WithColor(true),
		canvas.WithClear(),
		canvas.WithRawMode(),
	)
	eng := replay.NewEngine(triangle(t), replay.TraversalRules{}, traversal(), replay.WithDrawer(term))
	require.NoError(t, eng.Render(3))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\x1b[H\x1b[2J"))
	assert.Contains(t, s, "\r\n")
	assert.Contains(t, s, "\x1b[")
	assert.Contains(t, s, "A)")
}

func TestTerminal_LabelsAndWeights(t *testing.T) {
	r := step.NewRecorder(1)
	r.UpdateDistance("A", 0, "")

	term := canvas.NewTerminal(canvas.WithColor(false), canvas.WithScale(10, 20))
	eng := replay.NewEngine(triangle(t), replay.DijkstraRules{}, r.Sequence(), replay.WithDrawer(term))
	require.NoError(t, eng.Render(0))

	frame := term.String()
	assert.Contains(t, frame, "∞")
	assert.Contains(t, frame, "2.5")
	assert.Contains(t, frame, "Distances: A=0")
}

func TestTerminal_FarVerticesStayBounded(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0, 0))
	require.NoError(t, g.AddVertex("B", 1e9, 0))
	require.NoError(t, g.AddVertex("C", 0, 1e7))
	require.NoError(t, g.AddUndirectedEdge("A", "B"))
	require.NoError(t, g.AddUndirectedEdge("A", "C"))

	term := canvas.NewTerminal(canvas.WithColor(false))
	eng := replay.NewEngine(g, replay.TraversalRules{}, traversal(), replay.WithDrawer(term))
	require.NoError(t, eng.Render(0))

	frame := term.String()
	for _, id := range []string{"(A)", "(B)", "(C)"} {
		assert.Contains(t, frame, id)
	}
	lines := strings.Split(frame, "\n")
	assert.LessOrEqual(t, len(lines), 84)
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), 250)
	}
}

func TestTerminal_DrawMenu(t *testing.T) {
	var out bytes.Buffer
	term := canvas.NewTerminal(canvas.WithTerminalOutput(&out), canvas.WithColor(false))
	require.NoError(t, term.DrawMenu("Algorithms", []string{"BFS", "DFS"}))
	assert.Equal(t, "Algorithms\n  1. BFS\n  2. DFS\n", out.String())
	assert.Equal(t, out.String(), term.String())
}
