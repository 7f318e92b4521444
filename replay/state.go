package replay

import (
	"errors"
	"maps"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// ErrIndexOutOfRange is step.ErrIndexOutOfRange, re-exported for callers
// that only import replay.
var ErrIndexOutOfRange = step.ErrIndexOutOfRange

// ErrNoDrawer is returned by Engine.Render when no Drawer is attached.
var ErrNoDrawer = errors.New("replay: no drawer attached")

// VisualState is the cumulative effect of steps [0..Index].
// Every VisualState handed out is an independent copy.
type VisualState struct {
	Index      int                         `json:"index"`
	NodeColors map[string]step.Color       `json:"node_colors"`
	EdgeColors map[core.EdgeKey]step.Color `json:"edge_colors"`
	NodeText   map[string]string           `json:"node_text"`
	Info       []string                    `json:"info"`
}

// paint is the drawable part every fold shares.
type paint struct {
	nodeColors map[string]step.Color
	edgeColors map[core.EdgeKey]step.Color
	nodeText   map[string]string
}

func newPaint() paint {
	return paint{
		nodeColors: make(map[string]step.Color),
		edgeColors: make(map[core.EdgeKey]step.Color),
		nodeText:   make(map[string]string),
	}
}

func (p *paint) fill(v string, c step.Color)      { p.nodeColors[v] = c }
func (p *paint) stroke(u, v string, c step.Color) { p.edgeColors[core.NewEdgeKey(u, v)] = c }

func (p paint) clone() paint {
	return paint{
		nodeColors: maps.Clone(p.nodeColors),
		edgeColors: maps.Clone(p.edgeColors),
		nodeText:   maps.Clone(p.nodeText),
	}
}

// snapshot copies p into a VisualState with the given info lines.
func (p paint) snapshot(info []string) VisualState {
	c := p.clone()
	lines := make([]string, len(info))
	copy(lines, info)

	return VisualState{
		NodeColors: c.nodeColors,
		EdgeColors: c.edgeColors,
		NodeText:   c.nodeText,
		Info:       lines,
	}
}
