package replay

import (
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// Rules describe how one family of algorithms is drawn.
type Rules interface {
	// Layer names the adjacency the base diagram shows.
	Layer() core.Layer

	// NewFold returns an empty fold for g.
	NewFold(g *core.Graph) Fold
}

// Fold accumulates steps. Apply must be deterministic; Clone must return a
// fold that evolves independently of the receiver.
type Fold interface {
	Apply(s step.Step)
	State() VisualState
	Clone() Fold
}

// TraversalRules draws BFS and DFS sequences.
type TraversalRules struct{}

// Layer implements Rules.
func (TraversalRules) Layer() core.Layer { return core.LayerUnweighted }

// NewFold implements Rules.
func (TraversalRules) NewFold(*core.Graph) Fold { return &traversalFold{paint: newPaint()} }

type traversalFold struct {
	paint
}

func (f *traversalFold) Apply(s step.Step) {
	switch s.Kind {
	case step.KindVisit:
		f.fill(s.Vertex, colorOr(s.Color, step.ColorOrange))
	case step.KindProcess:
		f.fill(s.Vertex, colorOr(s.Color, step.ColorGray))
	case step.KindExplore:
		f.stroke(s.From, s.To, colorOr(s.Color, step.ColorRed))
	case step.KindFinish:
		// sentinel only
	}
}

func (f *traversalFold) State() VisualState { return f.snapshot(nil) }

func (f *traversalFold) Clone() Fold { return &traversalFold{paint: f.clone()} }

func colorOr(c, def step.Color) step.Color {
	if c == step.ColorNone {
		return def
	}

	return c
}
