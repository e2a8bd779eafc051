package game

import (
	"fmt"

	"github.com/Garsondee/hex-racer/internal/hexgrid"
	"github.com/Garsondee/hex-racer/internal/hexmap"
)

// Player is one racer on the track.
type Player struct {
	Cell     hexgrid.Coord
	Velocity int
}

// State is everything that changes between frames.
type State struct {
	Map     *hexmap.TileMap
	Players [2]Player
	Current hexmap.Player // whose turn it is

	hover   hexgrid.Coord // cell under the cursor, clamped to the grid
	cursorX int           // raw cursor position in window pixels
	cursorY int
}

// NewState places both players on their start markers.
func NewState(m *hexmap.TileMap) *State {
	s := &State{Map: m, Current: hexmap.PlayerOne}
	for p := hexmap.PlayerOne; p <= hexmap.PlayerTwo; p++ {
		s.Players[p] = Player{Cell: m.Start(p), Velocity: 1}
	}
	return s
}

// UpdateHover records the cursor position and the grid cell beneath it. A
// cursor outside the grid highlights the nearest edge cell.
func (s *State) UpdateHover(l hexgrid.Layout, mx, my int) {
	s.cursorX, s.cursorY = mx, my
	s.hover = l.Clamp(l.PixelToHex(mx, my))
}

// Hover returns the highlighted cell.
func (s *State) Hover() hexgrid.Coord { return s.hover }

// Cursor returns the last cursor position.
func (s *State) Cursor() (x, y int) { return s.cursorX, s.cursorY }

// MarkerPosition returns the pixel centre of p's marker.
func (s *State) MarkerPosition(l hexgrid.Layout, p hexmap.Player) (x, y int) {
	return l.HexToPixel(s.Players[p].Cell)
}

// Describe summarises the hovered cell on one line.
func (s *State) Describe(l hexgrid.Layout) string {
	x, y := l.HexToPixel(s.hover)
	tile := "-"
	if t, ok := s.Map.At(s.hover.Col, s.hover.Row); ok {
		tile = string(rune(t))
	}
	return fmt.Sprintf("hex %v centre (%d,%d) tile %s", s.hover, x, y, tile)
}
