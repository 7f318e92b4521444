// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_topologies.go: Path, Cycle, Star, Wheel, Complete and Grid.
//
// Contract:
//   - Adds vertices via cfg.idFn in ascending index order.
//   - Emits edges in a stable, documented order into both layers.
//   - Positions vertices on a deterministic layout scaled by cfg.spacing.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridSide      = 1

	// CenterID is the hub vertex of Star and Wheel.
	CenterID = "Center"
)

// Path returns a Constructor that builds P_n laid out left to right.
// Edges: i–(i+1) for i=0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			p := core.Point{X: cfg.origin.X + float64(i)*cfg.spacing, Y: cfg.origin.Y}
			if err := addVertex(g, methodPath, cfg.idFn(i), p); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n on a circle.
// Edges: i–(i+1)%n for i=0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := ring(g, cfg, methodCycle, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub CenterID and n-1 leaves on a circle.
// Edges: Center–leaf in leaf order.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertex(g, methodStar, CenterID, center(cfg, n-1)); err != nil {
			return err
		}
		if err := ring(g, cfg, methodStar, 0, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodStar, CenterID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a ring of n-1 vertices plus CenterID.
// Edges: ring edges first, then spokes.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		if err := addVertex(g, methodWheel, CenterID, center(cfg, n-1)); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, CenterID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n on a circle.
// Edges: i–j for i<j in lexicographic (i, j) order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := ring(g, cfg, methodComplete, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighbourhood grid in
// row-major index order. Edges: for each cell, right then down.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := core.Point{X: cfg.origin.X + float64(c)*cfg.spacing, Y: cfg.origin.Y + float64(r)*cfg.spacing}
				if err := addVertex(g, methodGrid, id(r, c), p); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// radius keeps neighbouring ring vertices about cfg.spacing apart.
func radius(cfg builderConfig, n int) float64 {
	if n < 2 {
		return cfg.spacing
	}
	r := cfg.spacing / (2 * math.Sin(math.Pi/float64(n)))

	return math.Max(r, cfg.spacing)
}

func center(cfg builderConfig, n int) core.Point {
	r := radius(cfg, n)

	return core.Point{X: cfg.origin.X + r, Y: cfg.origin.Y + r}
}

// ring places indexes [from, from+n) clockwise from twelve o'clock.
func ring(g *core.Graph, cfg builderConfig, method string, from, n int) error {
	c := center(cfg, n)
	r := radius(cfg, n)
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		p := core.Point{
			X: math.Round(c.X + r*math.Cos(angle)),
			Y: math.Round(c.Y + r*math.Sin(angle)),
		}
		if err := addVertex(g, method, cfg.idFn(from+i), p); err != nil {
			return err
		}
	}

	return nil
}
