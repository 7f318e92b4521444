package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/core"
)

const inline = `
start: C
delay: 250ms
algorithm: Dijkstra
server:
  addr: ":9000"
graph:
  nodes:
    - {id: C, x: 10, y: 10}
    - {id: A, x: 20, y: 10}
    - {id: B, x: 30, y: 10}
  edges:
    C: [B, A]
    A: [C]
    B: [C]
  weighted:
    C: {B: 2, A: 1.5}
    A: {C: 1.5}
    B: {C: 2}
  dijkstra_nodes: [C, A]
`

func TestParse_Inline(t *testing.T) {
	cfg, err := config.Parse([]byte(inline))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "C", cfg.Start)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, config.DefaultRenderer, cfg.Renderer)

	g, err := cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, g.Vertices())

	// File order, not sorted order.
	nb, err := g.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, nb)

	wn, err := g.WeightedNeighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "C", To: "B", Weight: 2}, {From: "C", To: "A", Weight: 1.5}}, wn)

	assert.Equal(t, []string{"C", "A"}, g.DijkstraVertices())
	p, err := g.Position("B")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 30, Y: 10}, p)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte("start: A\n"))
	require.NoError(t, err)

	want := config.Default()
	want.Start = "A"
	assert.Equal(t, want, cfg)
	require.NoError(t, cfg.Validate())

	g, err := cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"renderer":         "renderer: png\n",
		"graph name":       "graph_name: moebius\n",
		"no nodes":         "graph: {nodes: []}\n",
		"duplicate node":   "graph: {nodes: [{id: A}, {id: A}]}\n",
		"unknown edge":     "graph: {nodes: [{id: A}], edges: {A: [Z]}}\n",
		"unknown weighted": "graph: {nodes: [{id: A}], weighted: {Z: {A: 1}}}\n",
		"unknown dijkstra": "graph: {nodes: [{id: A}], dijkstra_nodes: [Q]}\n",
	}
	for name, doc := range cases {
		cfg, err := config.Parse([]byte(doc))
		require.NoError(t, err, name)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, name)
	}

	cfg := config.Default()
	cfg.Delay = -time.Second
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

func TestBuild_RejectsNegativeWeight(t *testing.T) {
	cfg, err := config.Parse([]byte("graph: {nodes: [{id: A}, {id: B}], weighted: {A: {B: -1}}}\n"))
	require.NoError(t, err)
	_, err = cfg.BuildGraph()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestBuild_RejectsNonFiniteWeight(t *testing.T) {
	for _, w := range []string{".nan", ".inf", "-.inf"} {
		cfg, err := config.Parse([]byte("graph: {nodes: [{id: A}, {id: B}], weighted: {A: {B: " + w + "}}}\n"))
		require.NoError(t, err, w)
		_, err = cfg.BuildGraph()
		assert.ErrorIs(t, err, config.ErrInvalidConfig, w)
		assert.ErrorIs(t, err, core.ErrInvalidWeight, w)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := config.Parse([]byte("graph: {edges: [A, B]}\n"))
	assert.Error(t, err)
	_, err = config.Parse([]byte("graph: {weighted: {A: [B]}}\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algoviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(inline), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Dijkstra", cfg.Algorithm)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Terrain(t *testing.T) {
	cfg, err := config.Parse([]byte(`
terrain:
  rows: ["120", "111"]
  diagonal: true
  threshold: 1
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	g, err := cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0", "0,1", "1,1", "2,1"}, g.Vertices())
	w, ok := g.Weight("1,0", "2,1")
	require.True(t, ok, "diagonal neighbour")
	assert.Equal(t, 1.5, w)

	bad, err := config.Parse([]byte("terrain: {rows: [\"1a\"]}\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, bad.Validate(), config.ErrInvalidConfig)

	water, err := config.Parse([]byte("terrain: {rows: [\"00\"]}\n"))
	require.NoError(t, err)
	require.NoError(t, water.Validate())
	_, err = water.BuildGraph()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
