// Package algorithms is the selection surface: a Registry mapping display
// names to Strategy constructors, and the Default registry holding
//
//   - Traversals
//     – BFS (Breadth-First Search)
//     – DFS (Depth-First Search)
//
//   - Shortest paths
//     – Dijkstra
//
//   - Minimum spanning trees
//     – Prim
//     – Kruskal
//
// A Strategy records one run as a step.Sequence and names the replay.Rules
// that draw it. Registry.Run wraps a strategy run with logging and metrics.
package algorithms
