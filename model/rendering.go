package model

import (
	"bufio"
	"fmt"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws grids as text
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := fmt.Fprint(r.Out, ansiClearScreen)
	return err
}
