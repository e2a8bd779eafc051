package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Garsondee/hex-racer/internal/hexgrid"
	"github.com/Garsondee/hex-racer/internal/hexmap"
)

var (
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	trackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	p1Style      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6961")).Bold(true)
	p2Style      = lipgloss.NewStyle().Foreground(lipgloss.Color("#61A8FF")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	previewFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// previewModel shows the map as a staggered grid with a movable cursor.
type previewModel struct {
	m      *hexmap.TileMap
	layout hexgrid.Layout
	cursor hexgrid.Coord
}

func newPreviewModel(m *hexmap.TileMap, layout hexgrid.Layout) previewModel {
	return previewModel{m: m, layout: layout, cursor: m.Start(hexmap.PlayerOne)}
}

func (pm previewModel) Init() tea.Cmd { return nil }

func (pm previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return pm, nil
	}
	next := pm.cursor
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return pm, tea.Quit
	case "up", "k":
		next.Row--
	case "down", "j":
		next.Row++
	case "left", "h":
		next.Col--
	case "right", "l":
		next.Col++
	}
	pm.cursor = pm.layout.Clamp(next)
	return pm, nil
}

func (pm previewModel) View() string {
	var b strings.Builder
	// Each map row takes two text lines: odd columns on the upper line, even
	// columns half a hex lower on the second.
	for row := 0; row < pm.m.Height(); row++ {
		var upper, lower strings.Builder
		for col := 0; col < pm.m.Width(); col++ {
			cell := pm.renderCell(col, row)
			if col%2 == 0 {
				upper.WriteString("  ")
				lower.WriteString(cell)
			} else {
				upper.WriteString(cell)
				lower.WriteString("  ")
			}
		}
		b.WriteString(upper.String())
		b.WriteByte('\n')
		b.WriteString(lower.String())
		if row < pm.m.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return previewFrame.Render(b.String()) + "\n" + statusStyle.Render(pm.status())
}

// renderCell returns the two-column text for one tile.
func (pm previewModel) renderCell(col, row int) string {
	t, _ := pm.m.At(col, row)
	if pm.cursor == (hexgrid.Coord{Col: col, Row: row}) {
		return cursorStyle.Render(string(rune(t)) + " ")
	}
	switch {
	case t == hexmap.TileStartOne:
		return p1Style.Render("A ")
	case t == hexmap.TileStartTwo:
		return p2Style.Render("B ")
	case !t.Occupied():
		return emptyStyle.Render("· ")
	default:
		return trackStyle.Render(string(rune(t)) + " ")
	}
}

func (pm previewModel) status() string {
	x, y := pm.layout.HexToPixel(pm.cursor)
	t, _ := pm.m.At(pm.cursor.Col, pm.cursor.Row)
	return fmt.Sprintf("hex %v tile %c pixel (%d,%d)  arrows/hjkl move  q quit", pm.cursor, rune(t), x, y)
}
