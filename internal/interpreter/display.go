package interpreter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Board draws a grid with the cursor cell bracketed.
type Board struct {
	Cell   lipgloss.Style
	Cursor lipgloss.Style
}

func DefaultBoard() Board {
	return Board{
		Cell:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Cursor: lipgloss.NewStyle().Reverse(true).Bold(true),
	}
}

// PlainBoard renders without any styling.
func PlainBoard() Board {
	return Board{Cell: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle()}
}

// Render draws g one row per line. Cells are padded to the widest key so
// double-width layouts stay aligned.
func (b Board) Render(g *Grid, cursor Position) string {
	width := 1
	for _, row := range g.rows {
		for _, ch := range row {
			if w := runewidth.RuneWidth(ch); w > width {
				width = w
			}
		}
	}
	var sb strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, ch := range row {
			key := runewidth.FillRight(string(ch), width)
			if x == cursor.X && y == cursor.Y {
				sb.WriteString(b.Cursor.Render("[" + key + "]"))
			} else {
				sb.WriteString(b.Cell.Render(" " + key + " "))
			}
		}
	}
	return sb.String()
}

// Display writes the session's cursor, output so far and board to w.
func (b Board) Display(w io.Writer, s *Session) {
	fmt.Fprintf(w, "Cursor %s output %q\n", s.Position(), s.Render())
	fmt.Fprintln(w, b.Render(s.Grid(), s.Position()))
}
