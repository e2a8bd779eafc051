package game

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/hex-racer/internal/hexgrid"
	"github.com/Garsondee/hex-racer/internal/hexmap"
)

var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	gridColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hoverColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerColors    = [2]color.RGBA{
		{R: 255, G: 105, B: 97, A: 255}, // player 1, red
		{R: 97, G: 168, B: 255, A: 255}, // player 2, blue
	}
	turnRingColor = color.RGBA{R: 255, G: 220, B: 0, A: 255}
)

// watchedKeys are the keys handled with edge-triggered presses.
var watchedKeys = []ebiten.Key{
	ebiten.KeyEscape, ebiten.KeyW, ebiten.KeyC, ebiten.KeyH, ebiten.KeyTab,
}

// Game implements ebiten.Game for the hex racing prototype.
type Game struct {
	width  int
	height int
	layout hexgrid.Layout
	state  *State
	events *EventLog
	face   *text.GoTextFace
	frame  int

	showLog  bool
	prevKeys map[ebiten.Key]bool

	logger      *log.Logger
	copyToClip  func(string) error
	cursorInput func() (int, int)
}

// Option configures a Game during construction.
type Option func(*Game)

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(g *Game) { g.copyToClip = write }
}

// WithCursor replaces the cursor position source.
func WithCursor(pos func() (int, int)) Option {
	return func(g *Game) { g.cursorInput = pos }
}

// New builds a game for a loaded map. fontSize is the HUD text size.
func New(width, height, fontSize int, layout hexgrid.Layout, m *hexmap.TileMap, opts ...Option) (*Game, error) {
	g := &Game{
		width:       width,
		height:      height,
		layout:      layout,
		state:       NewState(m),
		events:      NewEventLog(logMaxEntries),
		showLog:     true,
		prevKeys:    make(map[ebiten.Key]bool),
		logger:      log.Default(),
		copyToClip:  clipboard.WriteAll,
		cursorInput: ebiten.CursorPosition,
	}
	for _, opt := range opts {
		opt(g)
	}

	face, err := newMonoFace(fontSize)
	if err != nil {
		return nil, err
	}
	g.face = face

	if m.Width() < layout.Columns() || m.Height() < layout.Rows() {
		g.logger.Warn("map smaller than grid, missing cells drawn empty",
			"map", fmt.Sprintf("%dx%d", m.Width(), m.Height()),
			"grid", fmt.Sprintf("%dx%d", layout.Columns(), layout.Rows()))
	}
	return g, nil
}

// State exposes the current game state.
func (g *Game) State() *State { return g.state }

// Events exposes the on-screen event log.
func (g *Game) Events() *EventLog { return g.events }

// Update advances one frame: it refreshes the hover cell and handles key
// presses. Escape returns ebiten.Termination.
func (g *Game) Update() error {
	g.frame++
	mx, my := g.cursorInput()
	g.state.UpdateHover(g.layout, mx, my)
	return g.handleInput()
}

// handleInput polls the watched keys and dispatches new presses.
func (g *Game) handleInput() error {
	currentKeys := make(map[ebiten.Key]bool, len(watchedKeys))
	var result error
	for _, k := range watchedKeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		if currentKeys[k] && !g.prevKeys[k] {
			if err := g.onKeyPressed(k); err != nil && result == nil {
				result = err
			}
		}
	}
	g.prevKeys = currentKeys
	return result
}

// onKeyPressed reacts to a single key press. Returning ebiten.Termination
// ends the game loop.
func (g *Game) onKeyPressed(k ebiten.Key) error {
	switch k {
	case ebiten.KeyEscape:
		g.logger.Info("escape pressed, quitting")
		return ebiten.Termination
	case ebiten.KeyW:
		g.logger.Info("W")
		g.events.Add(g.frame, EventKey, "W")
	case ebiten.KeyC:
		desc := g.state.Describe(g.layout)
		if err := g.copyToClip(desc); err != nil {
			g.logger.Error("clipboard write failed", "err", err)
			g.events.Add(g.frame, EventError, "copy failed")
			return nil
		}
		g.logger.Debug("copied hover cell", "desc", desc)
		g.events.Add(g.frame, EventCopy, "copied "+g.state.Hover().String())
	case ebiten.KeyH:
		g.showLog = !g.showLog
	case ebiten.KeyTab:
		g.state.Current = 1 - g.state.Current
		g.events.Add(g.frame, EventTurn, fmt.Sprintf("turn: P%d", g.state.Current+1))
	}
	return nil
}

// Draw renders the grid, the track, both markers, the hover cell and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawGrid(screen)
	g.drawPlayers(screen)

	hx, hy := g.layout.HexToPixel(g.state.Hover())
	g.fillMarker(screen, hx, hy, hoverColor)

	g.drawHUD(screen)
}

// drawGrid outlines every grid cell and fills the ones that are track.
func (g *Game) drawGrid(screen *ebiten.Image) {
	for row := 0; row < g.layout.Rows(); row++ {
		for col := 0; col < g.layout.Columns(); col++ {
			c := hexgrid.Coord{Col: col, Row: row}
			strokeOutline(screen, g.layout.CellOutline(c), gridColor)
			if g.state.Map.Occupied(col, row) {
				x, y := g.layout.HexToPixel(c)
				g.fillMarker(screen, x, y, gridColor)
			}
		}
	}
}

// drawPlayers fills both player markers and rings the player whose turn it is.
func (g *Game) drawPlayers(screen *ebiten.Image) {
	for p := hexmap.PlayerOne; p <= hexmap.PlayerTwo; p++ {
		x, y := g.state.MarkerPosition(g.layout, p)
		g.fillMarker(screen, x, y, playerColors[p])
		if p == g.state.Current {
			w, h := g.layout.MarkerSize()
			vector.StrokeRect(screen, float32(x-w/2-2), float32(y-h/2-2), float32(w+4), float32(h+4), 1.0, turnRingColor, false)
		}
	}
}

// fillMarker fills the marker rectangle centred on (cx, cy).
func (g *Game) fillMarker(screen *ebiten.Image, cx, cy int, c color.Color) {
	w, h := g.layout.MarkerSize()
	vector.FillRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), c, false)
}

// strokeOutline joins consecutive outline points with 1px lines.
func strokeOutline(screen *ebiten.Image, pts [7]hexgrid.Point, c color.Color) {
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.0, c, false)
	}
}

// Layout returns the configured window size regardless of the outside size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
