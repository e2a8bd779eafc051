package hexmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Garsondee/hex-racer/internal/hexgrid"
)

// Load errors. Returned errors wrap one of these; test with errors.Is.
var (
	ErrMapFileNotFound    = errors.New("map file not found")
	ErrMapRead            = errors.New("map file truncated")
	ErrMalformedMap       = errors.New("malformed map")
	ErrMissingPlayerStart = errors.New("missing player start")
)

// maxDimension caps width and height so a corrupt header cannot request a
// huge allocation.
const maxDimension = 4096

// Load reads the map file at path.
func Load(path string) (*TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMapFileNotFound, path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse reads a map from r. The format is the width and height as decimal
// numbers, each followed by one delimiter byte, then height rows of exactly
// width tile bytes, each followed by a line terminator ("\n" or "\r\n").
// The terminator after the last row may be missing.
func Parse(r io.Reader) (*TileMap, error) {
	br := bufio.NewReader(r)

	width, err := readUint(br)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	height, err := readUint(br)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformedMap, width, height)
	}

	m := &TileMap{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	buf := make([]byte, width)
	for row := 0; row < height; row++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("%w: row %d: want %d tiles: %v", ErrMapRead, row, width, err)
		}
		for col, b := range buf {
			m.tiles[row*width+col] = Tile(b)
		}
		if err := skipLineEnd(br, row == height-1); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
	}

	if err := m.findStarts(); err != nil {
		return nil, err
	}
	return m, nil
}

// readUint accumulates decimal digits until the first non-digit, which is
// consumed as the delimiter. A "\r\n" delimiter is consumed whole.
func readUint(br *bufio.Reader) (int, error) {
	result := 0
	digits := 0
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			if digits == 0 {
				return 0, fmt.Errorf("%w: expected number, got end of file", ErrMalformedMap)
			}
			return result, nil
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMapRead, err)
		}
		if b < '0' || b > '9' {
			if digits == 0 {
				return 0, fmt.Errorf("%w: expected number, got %q", ErrMalformedMap, b)
			}
			if b == '\r' {
				if next, err := br.Peek(1); err == nil && next[0] == '\n' {
					_, _ = br.ReadByte()
				}
			}
			return result, nil
		}
		result = result*10 + int(b-'0')
		digits++
		if result > maxDimension {
			return 0, fmt.Errorf("%w: number exceeds %d", ErrMalformedMap, maxDimension)
		}
	}
}

// skipLineEnd consumes the terminator after a row.
func skipLineEnd(br *bufio.Reader, last bool) error {
	b, err := br.ReadByte()
	if err == io.EOF {
		if last {
			return nil
		}
		return fmt.Errorf("%w: missing line terminator", ErrMapRead)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMapRead, err)
	}
	switch b {
	case '\n':
		return nil
	case '\r':
		next, err := br.ReadByte()
		if err == io.EOF && last {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: missing line terminator", ErrMapRead)
		}
		if next != '\n' {
			return fmt.Errorf("%w: stray carriage return", ErrMalformedMap)
		}
		return nil
	default:
		return fmt.Errorf("%w: row longer than width, found %q", ErrMalformedMap, b)
	}
}

// findStarts records the first cell holding each player's marker.
func (m *TileMap) findStarts() error {
	var found [playerCount]bool
	for i, t := range m.tiles {
		for p := PlayerOne; p < playerCount; p++ {
			if !found[p] && t == startTile(p) {
				m.starts[p] = hexgrid.Coord{Col: i % m.width, Row: i / m.width}
				found[p] = true
			}
		}
	}
	for p := PlayerOne; p < playerCount; p++ {
		if !found[p] {
			return fmt.Errorf("%w: no %q tile for player %d", ErrMissingPlayerStart, byte(startTile(p)), p+1)
		}
	}
	return nil
}
