package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/hex-racer/internal/hexgrid"
)

// Config holds all startup settings. It is read once and not changed while
// the game runs.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Grid   GridConfig   `yaml:"grid"`
	Map    MapConfig    `yaml:"map"`
	HUD    HUDConfig    `yaml:"hud"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig holds the hex layout parameters
type GridConfig struct {
	OriginX int `yaml:"origin_x"`
	OriginY int `yaml:"origin_y"`
	HexSize int `yaml:"hex_size"` // circumradius in pixels
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// MapConfig points at the track file
type MapConfig struct {
	Path string `yaml:"path"`
}

// HUDConfig holds text settings
type HUDConfig struct {
	FontSize int `yaml:"font_size"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 800, Height: 800, Title: "Hex Racing"},
		Grid:   GridConfig{OriginX: 30, OriginY: 30, HexSize: 30, Columns: 14, Rows: 14},
		Map:    MapConfig{Path: "test.map"},
		HUD:    HUDConfig{FontSize: 22},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file. Fields left out of the file keep
// their defaults; fields set to zero are validated as written.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Grid.HexSize < hexgrid.MinHexSize {
		errs = append(errs, fmt.Errorf("grid.hex_size must be at least %d, got %d", hexgrid.MinHexSize, c.Grid.HexSize))
	}
	if c.Grid.Columns <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Columns, c.Grid.Rows))
	}
	if c.HUD.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("hud.font_size must be positive, got %d", c.HUD.FontSize))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// Layout builds the hex layout described by the grid section.
func (c *Config) Layout() (hexgrid.Layout, error) {
	return hexgrid.NewLayout(c.Grid.OriginX, c.Grid.OriginY, c.Grid.HexSize, c.Grid.Columns, c.Grid.Rows)
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
