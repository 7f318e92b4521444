package replay

import (
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// MSTRules draws Prim and Kruskal sequences over the weighted layer.
// An edge accepted by add_edge_to_mst turns green and stays green; later
// explore_edge, test_edge and discard_edge steps on it are ignored.
type MSTRules struct{}

// Layer implements Rules.
func (MSTRules) Layer() core.Layer { return core.LayerWeighted }

// NewFold implements Rules.
func (MSTRules) NewFold(g *core.Graph) Fold {
	return &mstFold{paint: newPaint(), graph: g, locked: make(map[core.EdgeKey]struct{})}
}

type mstFold struct {
	paint
	graph  *core.Graph
	locked map[core.EdgeKey]struct{}
	tree   []core.EdgeKey // accepted edges in order
	total  float64
}

func (f *mstFold) Apply(s step.Step) {
	switch s.Kind {
	case step.KindAddNodeToMST:
		f.fill(s.Vertex, step.ColorLightGreen)
	case step.KindAddEdgeToMST:
		k := core.NewEdgeKey(s.From, s.To)
		if _, ok := f.locked[k]; !ok {
			f.tree = append(f.tree, k)
			if f.graph != nil {
				w, _ := f.graph.UndirectedWeight(s.From, s.To)
				f.total += w
			}
		}
		f.locked[k] = struct{}{}
		f.edgeColors[k] = step.ColorGreen
	case step.KindExploreEdge:
		f.strokeUnlocked(s.From, s.To, step.ColorOrange)
	case step.KindTestEdge:
		f.strokeUnlocked(s.From, s.To, step.ColorRed)
	case step.KindDiscardEdge:
		f.strokeUnlocked(s.From, s.To, step.ColorGray)
	}
}

func (f *mstFold) strokeUnlocked(u, v string, c step.Color) {
	k := core.NewEdgeKey(u, v)
	if _, ok := f.locked[k]; ok {
		return
	}
	f.edgeColors[k] = c
}

func (f *mstFold) State() VisualState {
	names := make([]string, 0, len(f.tree))
	for _, k := range f.tree {
		names = append(names, k.String())
	}

	return f.snapshot([]string{
		"Tree: " + strings.Join(names, ", "),
		"Weight: " + FormatDistance(f.total),
	})
}

func (f *mstFold) Clone() Fold {
	return &mstFold{
		paint:  f.clone(),
		graph:  f.graph,
		locked: maps.Clone(f.locked),
		tree:   slices.Clone(f.tree),
		total:  f.total,
	}
}
