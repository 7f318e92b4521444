package algorithms

import (
	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/prim_kruskal"
	"github.com/katalvlaran/algoviz/replay"
	"github.com/katalvlaran/algoviz/step"
)

// Display names of the built-in strategies.
const (
	NameBFS      = "BFS"
	NameDFS      = "DFS"
	NameDijkstra = "Dijkstra"
	NamePrim     = "Prim"
	NameKruskal  = "Kruskal"
)

// Strategy records one algorithm. Run must be deterministic and must not
// modify g; it either returns the complete sequence or an error.
type Strategy interface {
	Name() string
	Rules() replay.Rules
	Run(g *core.Graph, start string) (step.Sequence, error)
}

// Constructor builds a fresh Strategy.
type Constructor func() Strategy

// funcStrategy adapts a recording function to Strategy.
type funcStrategy struct {
	name  string
	rules replay.Rules
	run   func(g *core.Graph, start string) (step.Sequence, error)
}

func (s funcStrategy) Name() string        { return s.name }
func (s funcStrategy) Rules() replay.Rules { return s.rules }
func (s funcStrategy) Run(g *core.Graph, start string) (step.Sequence, error) {
	return s.run(g, start)
}

// NewStrategy adapts run into a Strategy drawn by rules.
func NewStrategy(name string, rules replay.Rules, run func(g *core.Graph, start string) (step.Sequence, error)) Strategy {
	return funcStrategy{name: name, rules: rules, run: run}
}

// BFS returns the breadth-first strategy.
func BFS(opts ...bfs.Option) Strategy {
	return NewStrategy(NameBFS, replay.TraversalRules{}, func(g *core.Graph, start string) (step.Sequence, error) {
		return bfs.BFS(g, start, opts...)
	})
}

// DFS returns the depth-first strategy.
func DFS(opts ...dfs.Option) Strategy {
	return NewStrategy(NameDFS, replay.TraversalRules{}, func(g *core.Graph, start string) (step.Sequence, error) {
		return dfs.DFS(g, start, opts...)
	})
}

// Dijkstra returns the shortest-path strategy.
func Dijkstra(opts ...dijkstra.Option) Strategy {
	return NewStrategy(NameDijkstra, replay.DijkstraRules{}, func(g *core.Graph, start string) (step.Sequence, error) {
		return dijkstra.Dijkstra(g, start, opts...)
	})
}

// Prim returns Prim's spanning-tree strategy.
func Prim(opts ...prim_kruskal.Option) Strategy {
	return NewStrategy(NamePrim, replay.MSTRules{}, func(g *core.Graph, start string) (step.Sequence, error) {
		return prim_kruskal.Prim(g, start, opts...)
	})
}

// Kruskal returns Kruskal's spanning-tree strategy.
func Kruskal(opts ...prim_kruskal.Option) Strategy {
	return NewStrategy(NameKruskal, replay.MSTRules{}, func(g *core.Graph, start string) (step.Sequence, error) {
		return prim_kruskal.Kruskal(g, start, opts...)
	})
}
