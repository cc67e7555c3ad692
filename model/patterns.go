package model

import "github.com/pkg/errors"

// Pattern is a named set of live-cell offsets relative to an anchor.
type Pattern []Coord

var (
	// Block is a 2x2 still life.
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	// Blinker is a period-2 oscillator, horizontal phase.
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}

	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
)

// At translates the pattern's offsets to an anchor coordinate.
func (p Pattern) At(x, y int) []Coord {
	coords := make([]Coord, len(p))
	for i, c := range p {
		coords[i] = Coord{c.X + x, c.Y + y}
	}
	return coords
}

// SeedPattern creates a grid containing the pattern anchored at (x, y).
// Fails with ErrCellOutOfBounds if the pattern does not fit.
func SeedPattern(width, height int, p Pattern, x, y int) (*Grid, error) {
	return GridFromSeed(width, height, p.At(x, y))
}

// PlacePattern toggles the pattern's cells on an existing grid. Cells placed
// outside the grid fail with ErrCellOutOfBounds; earlier toggles stick.
func PlacePattern(g *Grid, p Pattern, x, y int) error {
	for _, c := range p.At(x, y) {
		if _, err := g.ToggleCell(c.X, c.Y); err != nil {
			return errors.Wrap(err, "[PlacePattern] pattern does not fit")
		}
	}
	return nil
}
