package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// Coord is a signed (x, y) grid coordinate. Neighbor arithmetic may produce
// transiently negative values; only in-bounds coordinates are stored as keys.
type Coord struct {
	X int
	Y int
}

// Grid represents the game board: exactly one Cell per coordinate in
// [0,width)x[0,height), none outside.
type Grid struct {
	width   int
	height  int
	cells   map[Coord]Cell
	scratch map[Coord]Cell // next-generation buffer, swapped each transition
	history []string       // recent fingerprints for stagnation detection
}

// NewGrid creates a grid with every cell dead.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:   width,
		height:  height,
		cells:   make(map[Coord]Cell, width*height),
		scratch: make(map[Coord]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[Coord{x, y}] = Cell{X: x, Y: y}
		}
	}
	return g
}

// RandomGrid creates a grid where each cell is independently alive with
// probability 1/2.
func RandomGrid(width, height int) *Grid {
	g := NewGrid(width, height)
	for coord, cell := range g.cells {
		cell.Alive = rand.Intn(2) == 1
		g.cells[coord] = cell
	}
	return g
}

// GridFromSeed creates an all-dead grid, then brings each listed coordinate
// to life. A coordinate outside the rectangle fails with ErrCellOutOfBounds.
func GridFromSeed(width, height int, live []Coord) (*Grid, error) {
	g := NewGrid(width, height)
	for _, coord := range live {
		if _, err := g.ToggleCell(coord.X, coord.Y); err != nil {
			return nil, errors.Wrap(err, "[GridFromSeed] invalid seed coordinate")
		}
	}
	return g, nil
}

// GetWidth returns the width of the grid.
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid.
func (g *Grid) GetHeight() int {
	return g.height
}

// Cell returns a copy of the cell at (x, y), with false if the coordinate is
// outside the populated rectangle. Pure lookup, never errors.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	cell, ok := g.cells[Coord{x, y}]
	return cell, ok
}

// CellNeighbors returns the in-bounds Moore neighbors of the cell at (x, y),
// with false if (x, y) itself has no entry.
func (g *Grid) CellNeighbors(x, y int) ([]Cell, bool) {
	cell, ok := g.Cell(x, y)
	if !ok {
		return nil, false
	}
	return cell.Neighbors(g), true
}

// ToggleCell flips liveness at (x, y) in place and returns the grid for
// chaining. Fails with ErrCellOutOfBounds if the coordinate has no entry.
func (g *Grid) ToggleCell(x, y int) (*Grid, error) {
	coord := Coord{x, y}
	cell, ok := g.cells[coord]
	if !ok {
		return nil, errors.Wrapf(ErrCellOutOfBounds, "[ToggleCell] no cell at (%d, %d)", x, y)
	}
	cell.Alive = !cell.Alive
	g.cells[coord] = cell
	return g, nil
}

// NextGeneration advances the grid one generation in place and returns it
// for chaining. Every neighbor count is taken against the pre-transition
// cell map; results accumulate in the scratch buffer, which replaces the
// live map in a single swap once every cell has transitioned.
func (g *Grid) NextGeneration() *Grid {
	clear(g.scratch)
	for coord, cell := range g.cells {
		g.scratch[coord] = cell.NextState(cell.LiveNeighborCount(g))
	}
	g.cells, g.scratch = g.scratch, g.cells
	return g
}

// Snapshot enumerates every cell in row-major order for rendering.
func (g *Grid) Snapshot() []Cell {
	cells := make([]Cell, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cells = append(cells, g.cells[Coord{x, y}])
		}
	}
	return cells
}

// CountLiveCells returns the number of living cells.
func (g *Grid) CountLiveCells() (count int) {
	for _, cell := range g.cells {
		if cell.Alive {
			count++
		}
	}
	return
}

// Fingerprint returns an MD5 hash of the grid's liveness in row-major order.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[Coord{x, y}].Alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory records the current fingerprint, keeping the last 5 states.
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Fingerprint())
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the grid matches any of its last three recorded
// states, i.e. a static board or a short cycle.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}
	current := g.Fingerprint()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == current {
			return true
		}
	}
	return false
}

// Randomize sets each cell alive with the given probability.
func (g *Grid) Randomize(density float64) {
	for coord, cell := range g.cells {
		cell.Alive = rand.Float64() < density
		g.cells[coord] = cell
	}
	g.history = nil
}

// InjectRandomLife brings up to count random cells to life to break
// stagnation.
func (g *Grid) InjectRandomLife(count int) {
	if g.width == 0 || g.height == 0 {
		return
	}
	for i := 0; i < count; i++ {
		coord := Coord{rand.Intn(g.width), rand.Intn(g.height)}
		cell := g.cells[coord]
		cell.Alive = true
		g.cells[coord] = cell
	}
}

// Reset resizes and empties the grid for reuse from a pool.
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	g.history = nil
	if g.cells == nil {
		g.cells = make(map[Coord]Cell, width*height)
	}
	if g.scratch == nil {
		g.scratch = make(map[Coord]Cell, width*height)
	}
	clear(g.cells)
	clear(g.scratch)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[Coord{x, y}] = Cell{X: x, Y: y}
		}
	}
}

// Clear kills every cell and drops the history.
func (g *Grid) Clear() {
	for coord, cell := range g.cells {
		cell.Alive = false
		g.cells[coord] = cell
	}
	g.history = nil
}
