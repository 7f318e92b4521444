// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor lays its vertices out on the drawing plane and writes
//     each edge into BOTH adjacency layers, so one graph serves traversals,
//     shortest paths and spanning trees alike.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertex places id at p, wrapping failures with the method tag.
func addVertex(g *core.Graph, method, id string, p core.Point) error {
	if err := g.AddVertex(id, p.X, p.Y); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// addEdge writes u–v into both layers with a weight drawn from cfg.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if err := g.AddUndirectedEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s): %w", method, u, v, err)
	}
	w := cfg.weightFn(cfg.rng)
	if err := g.AddUndirectedWeightedEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddWeightedEdge(%s–%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
