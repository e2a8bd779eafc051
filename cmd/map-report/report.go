package main

import (
	"fmt"
	"strings"

	"github.com/Garsondee/hex-racer/internal/config"
	"github.com/Garsondee/hex-racer/internal/hexgrid"
	"github.com/Garsondee/hex-racer/internal/hexmap"
)

type mapReport struct {
	path     string
	width    int
	height   int
	occupied int
	empty    int

	starts      [2]hexgrid.Coord
	startPixels [2][2]int

	// Set when the map does not fit the grid the game draws.
	gridColumns int
	gridRows    int
	fitsGrid    bool
}

func buildReport(path string, m *hexmap.TileMap, layout hexgrid.Layout, cfg *config.Config) mapReport {
	r := mapReport{
		path:        path,
		width:       m.Width(),
		height:      m.Height(),
		occupied:    m.CountOccupied(),
		gridColumns: cfg.Grid.Columns,
		gridRows:    cfg.Grid.Rows,
	}
	r.empty = r.width*r.height - r.occupied
	r.fitsGrid = r.width >= r.gridColumns && r.height >= r.gridRows
	for p := hexmap.PlayerOne; p <= hexmap.PlayerTwo; p++ {
		c := m.Start(p)
		r.starts[p] = c
		x, y := layout.HexToPixel(c)
		r.startPixels[p] = [2]int{x, y}
	}
	return r
}

func formatReport(r mapReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Map Report ===\n")
	fmt.Fprintf(&b, "path=%s size=%dx%d\n", r.path, r.width, r.height)
	fmt.Fprintf(&b, "tiles: occupied=%d empty=%d\n", r.occupied, r.empty)
	for i := range r.starts {
		fmt.Fprintf(&b, "start_p%d: hex=%v pixel=(%d,%d)\n",
			i+1, r.starts[i], r.startPixels[i][0], r.startPixels[i][1])
	}
	if r.fitsGrid {
		fmt.Fprintf(&b, "grid: %dx%d ok\n", r.gridColumns, r.gridRows)
	} else {
		fmt.Fprintf(&b, "grid: %dx%d WARNING map smaller than grid, missing cells draw empty\n",
			r.gridColumns, r.gridRows)
	}
	return b.String()
}
