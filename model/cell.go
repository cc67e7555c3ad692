package model

import "github.com/lifegrid/golife/rules"

// Cell is one grid position and its liveness. Its coordinate is redundant
// with the map key it is stored under and is used for neighbor computation.
// Cells are read as value copies; the grid's map owns the canonical state.
type Cell struct {
	X     int
	Y     int
	Alive bool
}

// mooreOffsets are the eight neighbor offsets around a cell.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the in-bounds Moore neighbors of the cell. Offsets that
// fall outside the grid contribute nothing: closed boundary, no wraparound.
func (c Cell) Neighbors(g *Grid) []Cell {
	neighbors := make([]Cell, 0, len(mooreOffsets))
	for _, off := range mooreOffsets {
		if neighbor, ok := g.Cell(c.X+off[0], c.Y+off[1]); ok {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// LiveNeighborCount counts the alive Moore neighbors of the cell against the
// grid's state at call time.
func (c Cell) LiveNeighborCount(g *Grid) (count int) {
	for _, neighbor := range c.Neighbors(g) {
		if neighbor.Alive {
			count++
		}
	}
	return
}

// NextState returns a copy of the cell advanced one generation for the given
// live neighbor count.
func (c Cell) NextState(liveNeighbors int) Cell {
	c.Alive = rules.ApplyConwayRules(liveNeighbors, c.Alive)
	return c
}
