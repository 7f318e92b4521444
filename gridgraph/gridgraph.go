package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	if opts.Spacing <= 0 {
		opts.Spacing = DefaultSpacing
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		opts:            opts,
		neighborOffsets: offsets,
	}, nil
}

// ParseTerrain reads rows of digits, one cell per digit, e.g. "1120".
func ParseTerrain(rows []string, opts GridOptions) (*GridGraph, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for x, r := range row {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: row %d col %d: %q", ErrBadTerrain, y, x, r)
			}
			values[y] = append(values[y], int(r-'0'))
		}
	}

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and passable.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.opts.LandThreshold
}

// VertexID formats the vertex identifier for cell (x,y).
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the land cells into a *core.Graph.
//
// Vertices are added in row-major order at (x, y)·Spacing. Each land cell
// links to its land neighbours in offset order (N first, clockwise) in
// both layers; the weighted edge costs the mean of the two cell values.
// With LargestOnly only the biggest island is kept. Every cell is in the
// Dijkstra vertex set.
//
// Returns ErrNoLand when nothing is passable.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	keep := make([]bool, gg.Width*gg.Height)
	comps := gg.ConnectedComponents()
	if len(comps) == 0 {
		return nil, ErrNoLand
	}
	if gg.opts.LargestOnly {
		best := 0
		for i, c := range comps {
			if len(c) > len(comps[best]) {
				best = i
			}
		}
		comps = comps[best : best+1]
	}
	for _, c := range comps {
		for _, idx := range c {
			keep[idx] = true
		}
	}

	g := core.NewGraph()
	s := gg.opts.Spacing
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !keep[gg.index(x, y)] {
				continue
			}
			if err := g.AddVertex(VertexID(x, y), defaultOrigin+float64(x)*s, defaultOrigin+float64(y)*s); err != nil {
				return nil, err
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !keep[gg.index(x, y)] {
				continue
			}
			u := VertexID(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) || !keep[gg.index(nx, ny)] {
					continue
				}
				v := VertexID(nx, ny)
				if err := g.AddEdge(u, v); err != nil {
					return nil, err
				}
				w := float64(gg.CellValues[y][x]+gg.CellValues[ny][nx]) / 2
				if err := g.AddWeightedEdge(u, v, w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
