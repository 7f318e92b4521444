package config

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/gridgraph"
)

// TerrainSpec describes a grid graph:
//
//	terrain:
//	  rows: ["1121", "1901", "1111"]
//	  diagonal: false
//	  threshold: 1
//	  spacing: 80
//	  largest_only: true
//
// Each digit is a cell; cells below threshold are water.
type TerrainSpec struct {
	Rows        []string `yaml:"rows"`
	Diagonal    bool     `yaml:"diagonal"`
	Threshold   *int     `yaml:"threshold"`
	Spacing     float64  `yaml:"spacing"`
	LargestOnly bool     `yaml:"largest_only"`
}

func (t *TerrainSpec) grid() (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	if t.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	if t.Threshold != nil {
		opts.LandThreshold = *t.Threshold
	}
	if t.Spacing > 0 {
		opts.Spacing = t.Spacing
	}
	opts.LargestOnly = t.LargestOnly

	return gridgraph.ParseTerrain(t.Rows, opts)
}

// Build turns the terrain into a core.Graph.
func (t *TerrainSpec) Build() (*core.Graph, error) {
	gg, err := t.grid()
	if err != nil {
		return nil, fmt.Errorf("%w: terrain: %w", ErrInvalidConfig, err)
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		return nil, fmt.Errorf("%w: terrain: %w", ErrInvalidConfig, err)
	}

	return g, nil
}
