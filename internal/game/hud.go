package game

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// HUD text positions in window pixels.
const (
	titleX       = 650
	titleY       = 10
	cursorTextX  = 650
	cursorTextY  = 50
	cursorTextX2 = 750
	eventPanelY  = 90
)

// newMonoFace loads the embedded Go Mono font at the given size.
func newMonoFace(size int) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: float64(size)}, nil
}

// drawText renders s in white with its top-left corner at (x, y).
func (g *Game) drawText(screen *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, g.face, op)
}

// drawHUD renders the title, the raw cursor position and, when enabled, the
// event log.
func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawText(screen, "HexRacer!", titleX, titleY)
	mx, my := g.state.Cursor()
	g.drawText(screen, strconv.Itoa(mx), cursorTextX, cursorTextY)
	g.drawText(screen, strconv.Itoa(my), cursorTextX2, cursorTextY)

	if g.showLog {
		panelX := g.width - logPanelWidth - 4
		g.events.Draw(screen, panelX, eventPanelY, g.height-eventPanelY-10)
	}
}
