// Package grid holds the fixed-size cell grid that a dungeon floor plan is
// laid out on.
package grid

import "strings"

// Grid holds the marker for every cell of one floor plan.
type Grid struct {
	Width, Height int
	cells         []Marker // row-major, index y*Width+x
}

// New creates a Grid with every cell Empty.
func New(width, height int) *Grid {
	return &Grid{Width: width, Height: height, cells: make([]Marker, width*height)}
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the marker at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) Marker {
	return g.cells[y*g.Width+x]
}

// Set replaces the marker at (x, y).
func (g *Grid) Set(x, y int, m Marker) {
	g.cells[y*g.Width+x] = m
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// IsEmpty returns true when (x, y) is in bounds and holds no room.
func (g *Grid) IsEmpty(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.At(x, y) == Empty
}

// IsOccupied returns true when (x, y) is in bounds and holds a room.
func (g *Grid) IsOccupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.At(x, y).Occupied()
}

// neighborOffsets is the scan order +x, -x, +y, -y. Candidate lists built
// from it feed random draws, so the order must not change.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NeighborsOccupied lists the occupied cells 4-adjacent to (x, y).
func (g *Grid) NeighborsOccupied(x, y int) []Coord {
	return g.neighbors(x, y, g.IsOccupied)
}

// NeighborsEmpty lists the empty cells 4-adjacent to (x, y).
func (g *Grid) NeighborsEmpty(x, y int) []Coord {
	return g.neighbors(x, y, g.IsEmpty)
}

func (g *Grid) neighbors(x, y int, keep func(x, y int) bool) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if keep(nx, ny) {
			out = append(out, Coord{X: nx, Y: ny})
		}
	}
	return out
}

// Corners returns the four corner cells. On a grid one cell wide or tall
// some of them coincide.
func (g *Grid) Corners() [4]Coord {
	return [4]Coord{
		{0, 0},
		{g.Width - 1, 0},
		{0, g.Height - 1},
		{g.Width - 1, g.Height - 1},
	}
}

// IsCorner reports whether (x, y) lies on both an x edge and a y edge.
func (g *Grid) IsCorner(x, y int) bool {
	xEdge := x == 0 || x == g.Width-1
	yEdge := y == 0 || y == g.Height-1
	return g.InBounds(x, y) && xEdge && yEdge
}

// Count returns how many cells hold m.
func (g *Grid) Count(m Marker) int {
	n := 0
	for _, c := range g.cells {
		if c == m {
			n++
		}
	}
	return n
}

// Occupied lists every occupied cell in row-major order.
func (g *Grid) Occupied() []Coord {
	var out []Coord
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y).Occupied() {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// String renders one glyph per cell, one line per row, highest row first so
// that Up reads upward.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			b.WriteByte(g.At(x, y).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
