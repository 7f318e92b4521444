// Package dfs defines types and options for recording depth-first search,
// including cancellation, colors and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/algoviz/step"
)

// Vertex states during a run.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack.
	Black        // Black: the vertex and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for one recording run.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// VisitColor, ProcessColor and ExploreColor are carried by the steps.
	VisitColor   step.Color
	ProcessColor step.Color
	ExploreColor step.Color

	// FullTraversal, if true, restarts from every unvisited vertex in graph
	// order after the start vertex is finished. Default is false.
	FullTraversal bool

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - visit orange, process gray, explore red
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:          context.Background(),
		VisitColor:   step.ColorOrange,
		ProcessColor: step.ColorGray,
		ExploreColor: step.ColorRed,
	}
}

// WithContext sets the context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPalette overrides the visit, process and explore colors.
func WithPalette(visit, process, explore step.Color) Option {
	return func(o *DFSOptions) {
		if visit == step.ColorNone || process == step.ColorNone || explore == step.ColorNone {
			o.err = ErrOptionViolation
			return
		}
		o.VisitColor, o.ProcessColor, o.ExploreColor = visit, process, explore
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}
