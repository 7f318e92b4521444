// Package builder produces positioned demo graphs for the visualizer.
//
// Every constructor writes each edge into both adjacency layers of a
// core.Graph, so one graph feeds BFS/DFS (unweighted) as well as
// Dijkstra, Prim and Kruskal (weighted). Vertices are laid out on the
// drawing plane as they are created: paths left to right, grids row by row,
// cycles, stars, wheels and complete graphs on a circle.
//
// Quick start:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.IntWeightFn(1, 9))},
//		builder.Grid(3, 4),
//	)
//
// Named exposes a small fixed catalogue ("sample", "path", "grid", …) used by
// the command line and configuration files. Sample is the hand-laid six
// vertex graph that ships as the default.
//
// Errors:
//
//	ErrTooFewVertices  - size parameter below the constructor minimum.
//	ErrConstructFailed - nil constructor passed to BuildGraph.
//	ErrUnknownGraph    - Named got a name outside the catalogue.
package builder
