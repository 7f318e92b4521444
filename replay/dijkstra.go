package replay

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// Infinity is how an unknown distance is written.
const Infinity = "∞"

// DijkstraRules draws Dijkstra sequences over the weighted layer.
//
//	update_distance: annotate the vertex, enter it in the frontier, record
//	                 its parent, fill orange unless already lightgreen.
//	visit:           fill lightgreen, mark visited, drop it from the frontier.
//	explore:         stroke the edge with the step color (red by default).
//
// Info lines, in order: Visited, Priority Queue, Distances, Parent.
type DijkstraRules struct{}

// Layer implements Rules.
func (DijkstraRules) Layer() core.Layer { return core.LayerWeighted }

// NewFold implements Rules.
func (DijkstraRules) NewFold(g *core.Graph) Fold {
	f := &dijkstraFold{
		paint:    newPaint(),
		dist:     make(map[string]float64),
		visited:  make(map[string]struct{}),
		frontier: btree.NewBTreeG(frontierLess),
		parent:   make(map[string]string),
	}
	if g != nil {
		for _, v := range g.DijkstraVertices() {
			f.dist[v] = math.Inf(1)
			f.nodeText[v] = Infinity
		}
	}

	return f
}

// frontierEntry is one (distance, vertex) pair waiting in the queue.
type frontierEntry struct {
	dist   float64
	vertex string
}

func frontierLess(a, b frontierEntry) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.vertex < b.vertex
}

type dijkstraFold struct {
	paint
	dist     map[string]float64
	visited  map[string]struct{}
	frontier *btree.BTreeG[frontierEntry]
	parent   map[string]string
	children []string // parent assignment order, first time only
}

func (f *dijkstraFold) Apply(s step.Step) {
	switch s.Kind {
	case step.KindUpdateDistance:
		f.dist[s.Vertex] = s.Distance
		f.nodeText[s.Vertex] = FormatDistance(s.Distance)
		f.frontier.Set(frontierEntry{dist: s.Distance, vertex: s.Vertex})
		if s.HasParent() {
			if _, ok := f.parent[s.Vertex]; !ok {
				f.children = append(f.children, s.Vertex)
			}
			f.parent[s.Vertex] = s.Parent
		}
		if f.nodeColors[s.Vertex] != step.ColorLightGreen {
			f.fill(s.Vertex, step.ColorOrange)
		}
	case step.KindVisit:
		f.fill(s.Vertex, step.ColorLightGreen)
		f.visited[s.Vertex] = struct{}{}
		f.prune(s.Vertex)
	case step.KindExplore:
		f.stroke(s.From, s.To, colorOr(s.Color, step.ColorRed))
	}
}

// prune removes every frontier entry of v.
func (f *dijkstraFold) prune(v string) {
	var stale []frontierEntry
	f.frontier.Scan(func(e frontierEntry) bool {
		if e.vertex == v {
			stale = append(stale, e)
		}
		return true
	})
	for _, e := range stale {
		f.frontier.Delete(e)
	}
}

func (f *dijkstraFold) State() VisualState {
	return f.snapshot(f.info())
}

func (f *dijkstraFold) info() []string {
	visited := slices.Sorted(maps.Keys(f.visited))

	queue := make([]string, 0, f.frontier.Len())
	f.frontier.Scan(func(e frontierEntry) bool {
		queue = append(queue, e.vertex+"("+FormatDistance(e.dist)+")")
		return true
	})

	names := slices.Sorted(maps.Keys(f.dist))
	dists := make([]string, 0, len(names))
	for _, v := range names {
		dists = append(dists, v+"="+FormatDistance(f.dist[v]))
	}

	parents := make([]string, 0, len(f.children))
	for _, c := range f.children {
		parents = append(parents, c+"←"+f.parent[c])
	}

	return []string{
		"Visited: " + strings.Join(visited, ", "),
		"Priority Queue: " + strings.Join(queue, ", "),
		"Distances: " + strings.Join(dists, ", "),
		"Parent: " + strings.Join(parents, ", "),
	}
}

func (f *dijkstraFold) Clone() Fold {
	return &dijkstraFold{
		paint:    f.clone(),
		dist:     maps.Clone(f.dist),
		visited:  maps.Clone(f.visited),
		frontier: f.frontier.Copy(),
		parent:   maps.Clone(f.parent),
		children: slices.Clone(f.children),
	}
}

// FormatDistance renders d compactly, or Infinity for +Inf.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return Infinity
	}

	return strconv.FormatFloat(d, 'f', -1, 64)
}
