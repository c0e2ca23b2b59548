package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Grid is an immutable rectangular table of keys.
type Grid struct {
	rows   [][]rune
	width  int
	height int
}

// Keys is the reference keyboard layout.
var Keys = MustGrid([]string{
	"1234567890",
	"QWERTYUIOP",
	"ASDFGHJKL;",
	"ZXCVBNM,.?",
})

// NewGrid builds a grid from its rows. Every row must have the same number
// of runes.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("grid has no rows")
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, errors.New("grid has no columns")
	}
	g := &Grid{rows: make([][]rune, len(rows)), width: width, height: len(rows)}
	for y, row := range rows {
		r := []rune(row)
		if len(r) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d", y, len(r), width)
		}
		g.rows[y] = r
	}
	return g, nil
}

// MustGrid is like NewGrid but panics on error.
func MustGrid(rows []string) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// LoadGrid reads a plain-text layout file.
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ReadGrid parses a layout: one row per line, blank lines and lines starting
// with '#' are skipped.
func ReadGrid(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewGrid(rows)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Rows returns a copy of the layout, one string per row.
func (g *Grid) Rows() []string {
	out := make([]string, g.height)
	for y, row := range g.rows {
		out[y] = string(row)
	}
	return out
}

// At returns the key under p. p must be in range.
func (g *Grid) At(p Position) rune {
	return g.rows[p.Y][p.X]
}

// Find returns the first cell holding key, scanning rows top to bottom and
// each row left to right.
func (g *Grid) Find(key rune) (Position, bool) {
	for y, row := range g.rows {
		for x, ch := range row {
			if ch == key {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Wrap maps any coordinates onto the grid, wrapping around the edges.
func (g *Grid) Wrap(x, y int) Position {
	return Position{X: wrap(x, g.width), Y: wrap(y, g.height)}
}

// Move returns p shifted by dx, dy with wraparound.
func (g *Grid) Move(p Position, dx, dy int) Position {
	return Position{X: step(p.X, dx, g.width), Y: step(p.Y, dy, g.height)}
}
