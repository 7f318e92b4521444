// Package dijkstra defines sentinel errors and options for recording
// Dijkstra's shortest-path algorithm over the weighted adjacency of a
// core.Graph.
package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/algoviz/step"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is not part of
	// the graph's Dijkstra vertex set.
	ErrStartVertexNotFound = errors.New("dijkstra: start vertex not found in graph")
)

// Options configures one recording run.
//
// Ctx          – cancellation; checked once per heap pop.
// ExploreColor – color carried by explore steps (default red).
type Options struct {
	Ctx          context.Context
	ExploreColor step.Color
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithExploreColor sets the color of explore steps. Empty is ignored.
func WithExploreColor(c step.Color) Option {
	return func(o *Options) {
		if c != step.ColorNone {
			o.ExploreColor = c
		}
	}
}

// DefaultOptions returns background context and red explore steps.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		ExploreColor: step.ColorRed,
	}
}
