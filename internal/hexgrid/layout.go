// Package hexgrid maps between hex lattice coordinates and screen pixels for
// a flat-top, offset-column layout. Even columns sit half a hex lower than odd
// columns.
package hexgrid

import (
	"fmt"
	"math"
)

// Coord identifies a cell in the offset-column lattice.
type Coord struct {
	Col int
	Row int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// MinHexSize is the smallest circumradius for which every cell centre maps
// back to its own cell.
const MinHexSize = 2

// Layout holds the fixed placement parameters of a grid. It is built once with
// NewLayout and passed by value; nothing mutates it afterwards.
type Layout struct {
	originX int
	originY int
	size    int
	columns int
	rows    int

	hexWidth  float64 // 1.5 * size
	hexHeight float64 // sqrt(3) * size
}

// NewLayout returns a layout whose top-left cell centre is offset by
// (originX, originY). size is the hex circumradius in pixels.
func NewLayout(originX, originY, size, columns, rows int) (Layout, error) {
	if size < MinHexSize {
		return Layout{}, fmt.Errorf("hex size must be at least %d, got %d", MinHexSize, size)
	}
	if columns <= 0 || rows <= 0 {
		return Layout{}, fmt.Errorf("grid must be at least 1x1, got %dx%d", columns, rows)
	}
	return Layout{
		originX:   originX,
		originY:   originY,
		size:      size,
		columns:   columns,
		rows:      rows,
		hexWidth:  1.5 * float64(size),
		hexHeight: math.Sqrt(3) * float64(size),
	}, nil
}

// Origin returns the pixel offset of the grid.
func (l Layout) Origin() (x, y int) { return l.originX, l.originY }

// Size returns the hex circumradius in pixels.
func (l Layout) Size() int { return l.size }

// Columns returns the grid width in cells.
func (l Layout) Columns() int { return l.columns }

// Rows returns the grid height in cells.
func (l Layout) Rows() int { return l.rows }

// HexWidth is the horizontal distance between neighbouring column centres.
func (l Layout) HexWidth() float64 { return l.hexWidth }

// HexHeight is the vertical distance between neighbouring row centres.
func (l Layout) HexHeight() float64 { return l.hexHeight }

// halfHeight is the stagger applied to even columns, truncated to whole pixels.
func (l Layout) halfHeight() int {
	return int(l.hexHeight / 2)
}

// HexToPixel returns the pixel centre of cell c. Products are truncated toward
// zero before the origin is added.
func (l Layout) HexToPixel(c Coord) (x, y int) {
	x = l.originX + int(l.hexWidth*float64(c.Col))
	y = l.originY + int(l.hexHeight*float64(c.Row))
	if c.Col%2 == 0 {
		y += l.halfHeight()
	}
	return x, y
}

// PixelToHex returns the cell containing pixel (x, y). It is the lossy inverse
// of HexToPixel; the result is not clamped to the grid.
func (l Layout) PixelToHex(x, y int) Coord {
	col := RoundHalfUp(float64(x-l.originX) / l.hexWidth)
	if col%2 == 0 {
		y -= l.halfHeight()
	}
	row := RoundHalfUp(float64(y-l.originY) / l.hexHeight)
	return Coord{Col: col, Row: row}
}

// Clamp pulls c inside the grid bounds.
func (l Layout) Clamp(c Coord) Coord {
	return Coord{
		Col: clampInt(c.Col, 0, l.columns-1),
		Row: clampInt(c.Row, 0, l.rows-1),
	}
}

// Contains reports whether c lies inside the grid.
func (l Layout) Contains(c Coord) bool {
	return c.Col >= 0 && c.Col < l.columns && c.Row >= 0 && c.Row < l.rows
}

// MarkerSize is the width and height of the square drawn inside a cell for
// occupied tiles, player markers and the hover highlight.
func (l Layout) MarkerSize() (w, h int) {
	return int(l.hexWidth / 2), int(l.hexHeight / 2)
}

// RoundHalfUp rounds v to the nearest integer with halves going up, for
// negative inputs as well: -0.5 becomes 0 and -1.5 becomes -1.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
