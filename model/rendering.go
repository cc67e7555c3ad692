package model

import (
	"fmt"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// home the cursor, then erase the screen
	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Frame builds the textual frame for the grid: one glyph per cell in
// row-major order, rows newline-terminated.
func (r *TerminalRenderer) Frame(g *Grid) string {
	var (
		b     strings.Builder
		width = g.GetWidth()
	)
	b.Grow((width*len(gridPosBlock) + 1) * g.GetHeight())
	for i, cell := range g.Snapshot() {
		if cell.Alive {
			b.WriteString(gridPosBlock)
		} else {
			b.WriteString(gridPosEmpty)
		}
		if (i+1)%width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Print(r.Frame(g))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Print(ansiClearScreen)
}
