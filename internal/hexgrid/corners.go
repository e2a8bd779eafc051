package hexgrid

import "math"

// Point is a pixel position.
type Point struct {
	X int
	Y int
}

// Corners returns a closed outline of a flat-top hexagon centred on (cx, cy).
// The first corner is repeated at the end so the points can be joined as a
// line strip.
func Corners(cx, cy, radius int) [7]Point {
	var pts [7]Point
	for i := 0; i < 6; i++ {
		rad := math.Pi / 180 * float64(60*i)
		pts[i] = Point{
			X: int(float64(cx) + float64(radius)*math.Cos(rad)),
			Y: int(float64(cy) + float64(radius)*math.Sin(rad)),
		}
	}
	pts[6] = pts[0]
	return pts
}

// CellOutline returns the outline of cell c at the layout's hex size.
func (l Layout) CellOutline(c Coord) [7]Point {
	x, y := l.HexToPixel(c)
	return Corners(x, y, l.size)
}
