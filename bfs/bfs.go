package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// walker encapsulates mutable BFS state for one recording run.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []string
	visited map[string]bool
	rec     *step.Recorder
}

// BFS runs breadth-first search on g's unweighted adjacency starting from
// startID and returns every action it took as a step.Sequence.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
// No partial sequence is returned on error.
func BFS(g *core.Graph, startID string, opts ...Option) (step.Sequence, error) {
	if g == nil {
		return step.Sequence{}, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return step.Sequence{}, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return step.Sequence{}, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// Prepare walker; every vertex yields at most visit+process plus one explore.
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		rec:     step.NewRecorder(3*n + 1),
	}

	// Seed queue with start vertex
	w.enqueue(startID)
	if err := w.loop(); err != nil {
		return step.Sequence{}, err
	}
	if o.Finish {
		w.rec.Finish()
	}

	return w.rec.Sequence(), nil
}

// enqueue marks id visited, records the visit and adds it to the queue.
func (w *walker) enqueue(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
	w.rec.Visit(id, w.opts.VisitColor)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		w.rec.Process(id, w.opts.ProcessColor)

		neighbors, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, nbr := range neighbors {
			if w.visited[nbr] {
				continue
			}
			// The tree edge is shown before its far end lights up.
			w.rec.Explore(id, nbr, w.opts.ExploreColor)
			w.enqueue(nbr)
		}
	}

	return nil
}
