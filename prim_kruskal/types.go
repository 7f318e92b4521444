// Package prim_kruskal defines options and sentinel errors for recording
// minimum spanning tree construction. It supports selecting between Kruskal
// and Prim via MSTOptions.
package prim_kruskal

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// ErrGraphNil indicates a nil *core.Graph.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrStartVertexNotFound indicates that the start vertex does not exist.
// Kruskal validates it too, even though the start does not shape its result.
var ErrStartVertexNotFound = errors.New("prim_kruskal: start vertex not found")

// ErrUnknownMethod indicates an MSTOptions.Method other than Prim or Kruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and from where.
//
// Fields:
//
//	Ctx    context.Context - cancellation, checked once per edge.
//	Method string          - one of MethodPrim or MethodKruskal.
//	Root   string          - start vertex.
type MSTOptions struct {
	Ctx    context.Context
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the start vertex.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(opts *MSTOptions) {
		if ctx != nil {
			opts.Ctx = ctx
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with a
// background context and no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Ctx:    context.Background(),
		Method: MethodKruskal,
	}
}

// Compute selects and runs the MST recorder named by opts.Method.
func Compute(graph *core.Graph, opts ...Option) (step.Sequence, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph, o.Root, WithContext(o.Ctx))
	case MethodPrim:
		return Prim(graph, o.Root, WithContext(o.Ctx))
	default:
		return step.Sequence{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// MSTEdges returns the edges accepted by add_edge_to_mst steps, in order.
func MSTEdges(seq step.Sequence) []core.EdgeKey {
	var out []core.EdgeKey
	for _, st := range seq.All() {
		if st.Kind == step.KindAddEdgeToMST {
			out = append(out, core.NewEdgeKey(st.From, st.To))
		}
	}

	return out
}

// TotalWeight sums the weights of the edges accepted in seq as stored in g.
// Each edge is read in its recorded direction first.
func TotalWeight(g *core.Graph, seq step.Sequence) float64 {
	var total float64
	for _, st := range seq.All() {
		if st.Kind != step.KindAddEdgeToMST {
			continue
		}
		w, _ := g.UndirectedWeight(st.From, st.To)
		total += w
	}

	return total
}

// validate applies the shared input checks.
func validate(graph *core.Graph, root string) error {
	if graph == nil {
		return ErrGraphNil
	}
	if !graph.HasVertex(root) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, root)
	}

	return nil
}

func options(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
