package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/hex-racer/internal/config"
	"github.com/Garsondee/hex-racer/internal/game"
	"github.com/Garsondee/hex-racer/internal/hexmap"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to a YAML config file (built-in defaults when empty)")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Fatal("config", "err", err)
		}
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel(),
		ReportTimestamp: true,
		Prefix:          "hexracer",
	})
	log.SetDefault(logger)

	layout, err := cfg.Layout()
	if err != nil {
		log.Fatal("grid layout", "err", err)
	}

	m, err := hexmap.Load(cfg.Map.Path)
	if err != nil {
		log.Fatal("cannot start without a map", "err", err)
	}
	log.Info("map loaded",
		"path", cfg.Map.Path,
		"width", m.Width(),
		"height", m.Height(),
		"p1", m.Start(hexmap.PlayerOne),
		"p2", m.Start(hexmap.PlayerTwo))

	g, err := game.New(cfg.Window.Width, cfg.Window.Height, cfg.HUD.FontSize, layout, m, game.WithLogger(logger))
	if err != nil {
		log.Fatal("game setup", "err", err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("game loop", "err", err)
	}
}
