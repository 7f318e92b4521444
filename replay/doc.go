// Package replay turns a recorded step.Sequence back into pictures.
//
// A replay never re-runs an algorithm. StateAt folds steps [0..index] into
// a VisualState (vertex fills, edge strokes, vertex annotations, info
// lines) using the Rules of the strategy that produced the sequence. The
// fold is last-write-wins per vertex and per canonical edge key.
//
// Engine binds a graph, its Rules, one Sequence and an optional Drawer. It
// keeps the fold of the last requested index and only applies the missing
// suffix when asked for a later one; going backwards refolds from scratch.
// Both paths yield identical states.
//
// Rules shipped here:
//
//	TraversalRules - BFS and DFS: visit/process fill vertices, explore strokes edges.
//	DijkstraRules  - distances as vertex annotations, frontier and parent tables.
//	MSTRules       - spanning tree edges lock green once accepted.
//
// Errors:
//
//	ErrIndexOutOfRange - index < 0 or index >= Len (wraps step.ErrIndexOutOfRange).
//	ErrNoDrawer        - Render called on an Engine without a Drawer.
package replay
