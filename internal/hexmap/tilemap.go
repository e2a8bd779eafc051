// Package hexmap holds the race track: a rectangular grid of one-byte tile
// codes read from a plain text map file.
package hexmap

import "github.com/Garsondee/hex-racer/internal/hexgrid"

// Tile is a single tile code from the map file. Any byte other than the
// constants below is plain track.
type Tile byte

const (
	TileEmpty    Tile = 'X' // Background, not drawn as occupied
	TileStartOne Tile = 'A' // Player 1 start
	TileStartTwo Tile = 'B' // Player 2 start
)

// Occupied reports whether the tile is drawn as part of the track.
func (t Tile) Occupied() bool {
	return t != TileEmpty
}

// Player indexes the two racers.
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
	playerCount // sentinel
)

// startTile returns the marker byte that places p.
func startTile(p Player) Tile {
	if p == PlayerTwo {
		return TileStartTwo
	}
	return TileStartOne
}

// TileMap is a width x height grid of tiles stored row-major. It is built by
// the parser and not modified afterwards.
type TileMap struct {
	width  int
	height int
	tiles  []Tile
	starts [playerCount]hexgrid.Coord
}

// Width returns the number of columns.
func (m *TileMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *TileMap) Height() int { return m.height }

// InBounds reports whether (col, row) lies inside the map.
func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}

// At returns the tile at (col, row). ok is false outside the map.
func (m *TileMap) At(col, row int) (t Tile, ok bool) {
	if !m.InBounds(col, row) {
		return 0, false
	}
	return m.tiles[row*m.width+col], true
}

// Occupied reports whether (col, row) is track. Cells outside the map count
// as empty.
func (m *TileMap) Occupied(col, row int) bool {
	t, ok := m.At(col, row)
	return ok && t.Occupied()
}

// Row returns a copy of one row, or nil when row is out of range.
func (m *TileMap) Row(row int) []Tile {
	if row < 0 || row >= m.height {
		return nil
	}
	out := make([]Tile, m.width)
	copy(out, m.tiles[row*m.width:(row+1)*m.width])
	return out
}

// Start returns the cell holding p's start marker.
func (m *TileMap) Start(p Player) hexgrid.Coord {
	if p < 0 || p >= playerCount {
		return hexgrid.Coord{}
	}
	return m.starts[p]
}

// CountOccupied returns how many tiles are track, start markers included.
func (m *TileMap) CountOccupied() int {
	n := 0
	for _, t := range m.tiles {
		if t.Occupied() {
			n++
		}
	}
	return n
}
