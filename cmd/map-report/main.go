package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Garsondee/hex-racer/internal/config"
	"github.com/Garsondee/hex-racer/internal/hexgrid"
	"github.com/Garsondee/hex-racer/internal/hexmap"
)

func main() {
	var cfgPath string
	var mapPath string
	var preview bool

	flag.StringVar(&cfgPath, "config", "", "path to a YAML config file (built-in defaults when empty)")
	flag.StringVar(&mapPath, "map", "", "map file to inspect (overrides map.path from the config)")
	flag.BoolVar(&preview, "preview", false, "open an interactive terminal preview of the map")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Error("config", "err", err)
			os.Exit(1)
		}
	}
	log.SetLevel(cfg.LogLevel())
	if mapPath == "" {
		mapPath = cfg.Map.Path
	}

	m, err := hexmap.Load(mapPath)
	if err != nil {
		log.Error("map rejected", "err", err)
		os.Exit(1)
	}

	// The report and preview place cells on a grid sized to the map itself.
	layout, err := hexgrid.NewLayout(cfg.Grid.OriginX, cfg.Grid.OriginY, cfg.Grid.HexSize, m.Width(), m.Height())
	if err != nil {
		log.Error("grid layout", "err", err)
		os.Exit(1)
	}

	if !preview {
		fmt.Print(formatReport(buildReport(mapPath, m, layout, cfg)))
		return
	}

	p := tea.NewProgram(newPreviewModel(m, layout), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("preview", "err", err)
		os.Exit(1)
	}
}
