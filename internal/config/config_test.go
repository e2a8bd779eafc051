package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexracer.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_MatchesPrototype(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 800 || cfg.Window.Height != 800 {
		t.Fatalf("expected 800x800 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	g := cfg.Grid
	if g.OriginX != 30 || g.OriginY != 30 || g.HexSize != 30 || g.Columns != 14 || g.Rows != 14 {
		t.Fatalf("unexpected grid defaults: %+v", g)
	}
	if cfg.HUD.FontSize != 22 {
		t.Fatalf("expected font size 22, got %d", cfg.HUD.FontSize)
	}
	if cfg.Map.Path != "test.map" {
		t.Fatalf("expected map path test.map, got %q", cfg.Map.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "map:\n  path: tracks/oval.map\nlog:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Map.Path != "tracks/oval.map" {
		t.Fatalf("expected map path from file, got %q", cfg.Map.Path)
	}
	if cfg.Grid.HexSize != 30 || cfg.Grid.OriginX != 30 {
		t.Fatalf("expected grid defaults, got %+v", cfg.Grid)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel())
	}
}

func TestLoad_GridSection(t *testing.T) {
	cfg, err := Load(writeConfig(t, "grid:\n  origin_x: 0\n  origin_y: 10\n  hex_size: 20\n  columns: 8\n  rows: 6\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	l, err := cfg.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if x, y := l.Origin(); x != 0 || y != 10 {
		t.Fatalf("expected origin (0,10), got (%d,%d)", x, y)
	}
	if l.Columns() != 8 || l.Rows() != 6 || l.Size() != 20 {
		t.Fatalf("unexpected layout %dx%d size %d", l.Columns(), l.Rows(), l.Size())
	}
}

func TestLoad_GridFieldKeepsSiblingDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "grid:\n  hex_size: 20\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g := cfg.Grid
	if g.OriginX != 30 || g.OriginY != 30 {
		t.Fatalf("expected origin (30,30), got (%d,%d)", g.OriginX, g.OriginY)
	}
	if g.HexSize != 20 || g.Columns != 14 || g.Rows != 14 {
		t.Fatalf("expected size 20 on a 14x14 grid, got %+v", g)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name, src, want string
	}{
		{"negative hex size", "grid:\n  hex_size: -3\n", "hex_size"},
		{"explicit zero hex size", "grid:\n  hex_size: 0\n", "hex_size"},
		{"hex size one", "grid:\n  hex_size: 1\n", "hex_size"},
		{"explicit zero width", "window:\n  width: 0\n", "window size"},
		{"negative columns", "grid:\n  columns: -1\n", "grid must be"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad yaml", "window: [\n", "failed to parse"},
	}
	for _, tc := range cases {
		_, err := Load(writeConfig(t, tc.src))
		if err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error mentioning %q, got %q", tc.name, tc.want, err)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
