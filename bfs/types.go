package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/algoviz/step"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. an empty color), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds the parameters of one recording run.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// VisitColor is carried by visit steps.
	VisitColor step.Color

	// ProcessColor is carried by process steps.
	ProcessColor step.Color

	// ExploreColor is carried by explore steps.
	ExploreColor step.Color

	// Finish appends the finish sentinel once the queue drains.
	Finish bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with the defaults:
//   - Context.Background()
//   - visit orange, process gray, explore red
//   - finish sentinel enabled.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:          context.Background(),
		VisitColor:   step.ColorOrange,
		ProcessColor: step.ColorGray,
		ExploreColor: step.ColorRed,
		Finish:       true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPalette overrides the visit, process and explore colors.
// Empty colors are rejected with ErrOptionViolation.
func WithPalette(visit, process, explore step.Color) Option {
	return func(o *BFSOptions) {
		if visit == step.ColorNone || process == step.ColorNone || explore == step.ColorNone {
			o.err = ErrOptionViolation
			return
		}
		o.VisitColor, o.ProcessColor, o.ExploreColor = visit, process, explore
	}
}

// WithFinish toggles the trailing finish sentinel.
func WithFinish(enabled bool) Option {
	return func(o *BFSOptions) {
		o.Finish = enabled
	}
}
