package hexmap

import (
	"strings"
	"testing"
)

func TestTileMap_OutOfBounds(t *testing.T) {
	m, err := Parse(strings.NewReader("3 3\nAB.\n...\nXXX\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := m.At(-1, 0); ok {
		t.Fatal("At(-1,0) should be out of bounds")
	}
	if _, ok := m.At(3, 0); ok {
		t.Fatal("At(3,0) should be out of bounds")
	}
	if m.Occupied(0, 7) {
		t.Fatal("cells outside the map should not be occupied")
	}
	if m.Row(3) != nil || m.Row(-1) != nil {
		t.Fatal("out of range Row should return nil")
	}
}

func TestTileMap_Occupied(t *testing.T) {
	m, err := Parse(strings.NewReader("3 2\nAB#\nX.X\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	occupied := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {2, 0}: true,
		{0, 1}: false, {1, 1}: true, {2, 1}: false,
	}
	for cell, want := range occupied {
		if got := m.Occupied(cell[0], cell[1]); got != want {
			t.Fatalf("Occupied(%d,%d): expected %v, got %v", cell[0], cell[1], want, got)
		}
	}
	if n := m.CountOccupied(); n != 4 {
		t.Fatalf("expected 4 occupied tiles, got %d", n)
	}
}

func TestTileMap_RowIsCopy(t *testing.T) {
	m, err := Parse(strings.NewReader("2 1\nAB\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := m.Row(0)
	r[0] = TileEmpty
	if tile, _ := m.At(0, 0); tile != TileStartOne {
		t.Fatalf("mutating Row result changed the map: got %q", byte(tile))
	}
}
