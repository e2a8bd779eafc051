package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 140
	logMaxEntries = 40
	logLineHeight = 14
)

// EventKind classifies an input event for the on-screen log.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventTurn
	EventCopy
	EventError
)

// Colour returns the swatch drawn beside entries of this kind.
func (k EventKind) Colour() color.RGBA {
	switch k {
	case EventTurn:
		return turnRingColor
	case EventCopy:
		return color.RGBA{R: 120, G: 220, B: 120, A: 255}
	case EventError:
		return playerColors[0]
	default:
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
}

// EventEntry is one line of the event panel.
type EventEntry struct {
	Frame   int
	Kind    EventKind
	Message string
}

// EventLog keeps the newest input events, dropping the oldest once it holds
// capacity entries.
type EventLog struct {
	capacity int
	entries  []EventEntry
}

// NewEventLog returns an empty log holding at most capacity entries. A
// capacity below one is treated as one.
func NewEventLog(capacity int) *EventLog {
	if capacity < 1 {
		capacity = 1
	}
	return &EventLog{capacity: capacity, entries: make([]EventEntry, 0, capacity)}
}

// Add records an event seen on the given frame.
func (el *EventLog) Add(frame int, kind EventKind, msg string) {
	if len(el.entries) == el.capacity {
		copy(el.entries, el.entries[1:])
		el.entries = el.entries[:len(el.entries)-1]
	}
	el.entries = append(el.entries, EventEntry{Frame: frame, Kind: kind, Message: msg})
}

// Len returns the number of entries held.
func (el *EventLog) Len() int { return len(el.entries) }

// Recent returns up to n of the newest entries, oldest first. n <= 0 returns
// everything held.
func (el *EventLog) Recent(n int) []EventEntry {
	start := 0
	if n > 0 && n < len(el.entries) {
		start = len(el.entries) - n
	}
	out := make([]EventEntry, len(el.entries)-start)
	copy(out, el.entries[start:])
	return out
}

// Draw renders the panel with its top-left corner at (panelX, panelY). Only
// as many entries as fit in panelH are shown.
func (el *EventLog) Draw(screen *ebiten.Image, panelX, panelY, panelH int) {
	x, y := float32(panelX), float32(panelY)
	vector.FillRect(screen, x, y, logPanelWidth, float32(panelH), color.RGBA{R: 12, G: 12, B: 16, A: 230}, false)
	vector.StrokeRect(screen, x, y, logPanelWidth, float32(panelH), 1, color.RGBA{R: 70, G: 70, B: 90, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("EVENTS %d", el.Len()), panelX+6, panelY+2)

	fit := (panelH - 20) / logLineHeight
	if fit <= 0 {
		return
	}
	ly := panelY + 18
	for _, e := range el.Recent(fit) {
		vector.FillRect(screen, x+4, float32(ly+4), 6, 6, e.Kind.Colour(), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Frame, e.Message), panelX+14, ly)
		ly += logLineHeight
	}
}
