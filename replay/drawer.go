package replay

import (
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// Diagram is the static picture a replay paints on: every vertex at its
// position and every edge of one adjacency layer.
type Diagram struct {
	Layer core.Layer
	Nodes []DiagramNode
	Edges []DiagramEdge
}

// DiagramNode is a vertex to draw.
type DiagramNode struct {
	ID  string
	Pos core.Point
}

// DiagramEdge is an undirected edge to draw. Weight is only meaningful on
// the weighted layer.
type DiagramEdge struct {
	Key      core.EdgeKey
	From     core.Point
	To       core.Point
	Weight   float64
	Weighted bool
}

// NewDiagram lays out every vertex of g and the edges of layer.
func NewDiagram(g *core.Graph, layer core.Layer) Diagram {
	d := Diagram{Layer: layer}
	if g == nil {
		return d
	}
	for _, id := range g.Vertices() {
		p, _ := g.Position(id)
		d.Nodes = append(d.Nodes, DiagramNode{ID: id, Pos: p})
	}
	for _, e := range g.Edges(layer) {
		from, _ := g.Position(e.From)
		to, _ := g.Position(e.To)
		d.Edges = append(d.Edges, DiagramEdge{
			Key:      e.Key(),
			From:     from,
			To:       to,
			Weight:   e.Weight,
			Weighted: layer == core.LayerWeighted,
		})
	}

	return d
}

// Handle identifies one drawn shape inside a Drawer.
type Handle int

// Handles maps graph identities to the shapes DrawBase produced.
// Anything missing here is skipped when styling.
type Handles struct {
	Nodes map[string]Handle
	Edges map[core.EdgeKey]Handle
	Texts map[string]Handle
}

// Drawer is the drawing surface a replay paints through.
type Drawer interface {
	// DrawBase clears the surface, draws d and returns the shape handles.
	DrawBase(d Diagram) Handles

	// FillNode sets the fill of a vertex shape.
	FillNode(h Handle, c step.Color)

	// StrokeEdge sets the stroke of an edge shape.
	StrokeEdge(h Handle, c step.Color)

	// LabelNode sets the annotation below a vertex ID.
	LabelNode(h Handle, text string)

	// SetInfo replaces the auxiliary text lines.
	SetInfo(lines []string)

	// SetTitle replaces the frame title.
	SetTitle(title string)
}

// Flusher is implemented by drawers that buffer a frame.
type Flusher interface {
	Flush() error
}
