// Package config loads the visualizer's YAML configuration: which graph to
// show, where algorithms start, the auto-advance delay and the HTTP address.
//
// A file only needs the keys it changes; Load applies defaults after
// decoding. The command line overrides whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Renderers accepted by Config.Renderer.
const (
	RendererANSI = "ansi"
	RendererSVG  = "svg"
)

// Defaults.
const (
	DefaultDelay    = 500 * time.Millisecond
	DefaultAddr     = "127.0.0.1:8080"
	DefaultRenderer = RendererANSI
)

// Config is the decoded configuration file.
type Config struct {
	// Start is the vertex every algorithm starts from. Empty means the
	// first vertex of the graph.
	Start string `yaml:"start"`
	// Delay between frames while auto-advancing.
	Delay time.Duration `yaml:"delay"`
	// Renderer is the default frame format of the render command.
	Renderer string `yaml:"renderer"`
	// Algorithm, when set, opens that visualizer directly instead of the menu.
	Algorithm string `yaml:"algorithm"`
	// GraphName picks a builtin graph. Ignored when Graph is set.
	GraphName string `yaml:"graph_name"`
	// Graph is an inline graph definition.
	Graph *GraphSpec `yaml:"graph"`
	// Terrain is a digit map turned into a grid graph. Ignored when Graph
	// is set.
	Terrain *TerrainSpec `yaml:"terrain"`

	Server ServerConfig `yaml:"server"`
}

// ServerConfig configures the HTTP viewer.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Delay:     DefaultDelay,
		Renderer:  DefaultRenderer,
		GraphName: builder.GraphSample,
		Server:    ServerConfig{Addr: DefaultAddr},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data and fills unset fields with defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Delay == 0 {
		c.Delay = d.Delay
	}
	if c.Renderer == "" {
		c.Renderer = d.Renderer
	}
	if c.GraphName == "" {
		c.GraphName = d.GraphName
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
}

// Validate reports the first unusable setting. Whether Start exists is
// checked later, against the built graph.
func (c Config) Validate() error {
	if c.Delay <= 0 {
		return fmt.Errorf("%w: delay must be positive, got %s", ErrInvalidConfig, c.Delay)
	}
	if c.Renderer != RendererANSI && c.Renderer != RendererSVG {
		return fmt.Errorf("%w: renderer %q (want %s or %s)", ErrInvalidConfig, c.Renderer, RendererANSI, RendererSVG)
	}
	if c.Graph == nil && c.Terrain == nil && !slices.Contains(builder.Names(), c.GraphName) {
		return fmt.Errorf("%w: graph_name %q (want one of %v)", ErrInvalidConfig, c.GraphName, builder.Names())
	}
	if c.Graph != nil {
		return c.Graph.validate()
	}
	if c.Terrain != nil {
		if _, err := c.Terrain.grid(); err != nil {
			return fmt.Errorf("%w: terrain: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// BuildGraph returns the inline graph when one is configured, then the
// terrain, otherwise the named builtin.
func (c Config) BuildGraph() (*core.Graph, error) {
	if c.Graph != nil {
		return c.Graph.Build()
	}
	if c.Terrain != nil {
		return c.Terrain.Build()
	}

	return builder.Named(c.GraphName)
}
