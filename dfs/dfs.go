// Package dfs records depth-first search over the unweighted adjacency of
// a core.Graph as a step.Sequence.
//
// On entering a vertex it records visit(v). Each neighbor still White is
// reached through explore(v→n) and a recursive descent. When every neighbor
// is exhausted it records process(v), so process steps appear in post-order;
// that is what sets a DFS replay apart from a BFS one.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for recursion stack and state map.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - ErrOptionViolation        if an Option is invalid.
//   - context.Canceled          if ctx is done.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph    // underlying graph
	opts  DFSOptions     // traversal options
	state map[string]int // White/Gray/Black per vertex
	rec   *step.Recorder // step collector
}

// DFS performs depth-first search on graph g from startID and returns the
// recorded steps. With WithFullTraversal it continues into every other
// component in graph order.
func DFS(g *core.Graph, startID string, opts ...Option) (step.Sequence, error) {
	// 1. Validate input graph
	if g == nil {
		return step.Sequence{}, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return step.Sequence{}, dopts.err
	}

	// 3. Validate start vertex
	if !g.HasVertex(startID) {
		return step.Sequence{}, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		state: make(map[string]int, n),
		rec:   step.NewRecorder(3 * n),
	}

	// 4. Traverse from the start, then the rest of the forest if requested
	if err := w.traverse(startID); err != nil {
		return step.Sequence{}, err
	}
	if dopts.FullTraversal {
		for _, id := range g.Vertices() {
			if w.state[id] != White {
				continue
			}
			if err := w.traverse(id); err != nil {
				return step.Sequence{}, err
			}
		}
	}

	return w.rec.Sequence(), nil
}

// traverse visits id, descends into White neighbors and records the
// post-order process step.
func (w *dfsWalker) traverse(id string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.state[id] = Gray
	w.rec.Visit(id, w.opts.VisitColor)

	neighbors, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range neighbors {
		if w.state[nbr] != White {
			continue
		}
		w.rec.Explore(id, nbr, w.opts.ExploreColor)
		if err = w.traverse(nbr); err != nil {
			return err
		}
	}

	w.state[id] = Black
	w.rec.Process(id, w.opts.ProcessColor)

	return nil
}
