package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoLand indicates that no cell is passable.
	ErrNoLand = errors.New("gridgraph: grid has no land cells")
	// ErrBadTerrain indicates a terrain row that is not all digits.
	ErrBadTerrain = errors.New("gridgraph: terrain rows must contain digits only")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Spacing is the drawing distance between neighbouring cells.
	Spacing float64
	// LargestOnly keeps only the biggest island, so every vertex is
	// reachable from every other.
	LargestOnly bool
}

// Default option values.
const (
	DefaultLandThreshold = 1
	DefaultSpacing       = 80.0
	defaultOrigin        = 60.0
)

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4, Spacing=80.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: DefaultLandThreshold,
		Conn:          Conn4,
		Spacing:       DefaultSpacing,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	opts            GridOptions
	neighborOffsets [][2]int
}
