package physics

import (
	"math"
	"sort"
)

// SpatialGrid is a uniform grid for broad-phase collision detection.
// Points are inserted by position and index, then candidates near a position
// are gathered from the 3x3 cell neighborhood.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding objects so that every pair closer than that distance is found.
// Positions outside the grid are clamped into the border cells, which keeps
// that guarantee for objects that hang over the screen edge.
type SpatialGrid struct {
	invCellSize float64
	cols        int
	rows        int
	cells       [][]int
}

// NewSpatialGrid creates a grid covering a width x height area.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
}

// Candidates appends to buf the indices stored in the 3x3 neighborhood around
// (x, y) and returns them sorted in descending order.
func (g *SpatialGrid) Candidates(x, y float64, buf []int) []int {
	buf = buf[:0]
	col, row := g.posToCell(x, y)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			buf = append(buf, g.cells[r*g.cols+c]...)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(buf)))
	return buf
}

// posToCell converts coordinates to grid cell coordinates, clamped to the grid.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
