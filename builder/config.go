// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// config.go: builder configuration and functional options.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/algoviz/core"
)

// BuilderOption configures a builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for weights; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for the weighted layer.
	weightFn WeightFn
	// Layout: top-left anchor and distance between neighbouring vertices.
	origin  core.Point
	spacing float64
}

// Deterministic defaults.
const (
	defaultSpacing = 120.0
	defaultOriginX = 60.0
	defaultOriginY = 60.0
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     LetterIDFn,
		weightFn: DefaultWeightFn,
		origin:   core.Point{X: defaultOriginX, Y: defaultOriginY},
		spacing:  defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets how vertex indexes become IDs. nil is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSeed installs a seeded RNG for weight generation.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r for weight generation.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn sets the weight generator. nil is ignored.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithLayout sets the top-left anchor and the vertex spacing. A
// non-positive spacing keeps the default.
func WithLayout(origin core.Point, spacing float64) BuilderOption {
	return func(c *builderConfig) {
		c.origin = origin
		if spacing > 0 {
			c.spacing = spacing
		}
	}
}
