// Command algoviz records graph algorithms step by step and replays them.
//
// BFS, DFS, Dijkstra, Prim and Kruskal run once, eagerly, and emit an
// immutable sequence of steps. The player then folds any prefix of that
// sequence into a visual state (node fills, edge strokes, distance labels
// and info lines) and paints it on a drawing surface: an ANSI terminal, an
// SVG document or the HTTP viewer.
//
// Usage:
//
//	algoviz                          interactive terminal player
//	algoviz list                     algorithms and their step counts
//	algoviz steps Dijkstra --json    the recorded sequence
//	algoviz render Prim --step 4 --format svg -o prim.svg
//	algoviz serve --addr :8080       browser viewer and /metrics
//
// Packages:
//
//	core/          positioned graph with unweighted and weighted layers
//	step/          step vocabulary, Recorder and Sequence
//	bfs/, dfs/, dijkstra/, prim_kruskal/   recording algorithms
//	algorithms/    named strategies and the registry behind the menu
//	replay/        fold rules, visual state and the render Engine
//	canvas/        SVG and terminal drawers
//	session/       menu and visualizer with auto-advance
//	builder/, gridgraph/, config/          graph sources
//	web/, cmd/     HTTP viewer and command line
package main
