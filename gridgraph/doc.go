// Package gridgraph turns a 2D terrain grid into a positioned core.Graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are passable land, the rest is water.
//   - ConnectedComponents finds the islands of land under Conn4 or Conn8.
//   - ToCoreGraph emits one vertex per land cell, laid out on the grid, with
//     unweighted edges between neighbouring land cells and weighted edges
//     costing the mean of both cell values.
//
// Why:
//
//   - Terrain maps make shortest paths and spanning trees visibly differ
//     from plain traversal order.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoLand: no cell reaches LandThreshold.
//   - ErrBadTerrain: a terrain row contains something other than digits.
package gridgraph
