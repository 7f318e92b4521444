// Package bfs records a breadth-first search over the unweighted adjacency
// of a core.Graph as a step.Sequence.
//
// What
//
//   - Seeds the FIFO queue with the start vertex and records visit(start).
//   - Each dequeue records process(v).
//   - Each neighbor not yet seen, in adjacency order, records
//     explore(v→n) followed by visit(n).
//   - Once the queue drains, a finish sentinel closes the sequence
//     (WithFinish(false) drops it).
//
// Colors
//
//	visit: orange, process: gray, explore: red. WithPalette overrides them.
//
// Determinism
//
//	Neighbors are iterated in insertion order, so two runs on the same graph
//	return equal sequences.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue and visited set, O(V) recorded steps.
//
// Usage
//
//	seq, err := bfs.BFS(g, "A")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or ctx error
//	}
//	for i, st := range seq.All() {
//	    fmt.Println(i, st)
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid.
package bfs
