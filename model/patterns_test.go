package model

import (
	"errors"
	"testing"
)

func TestPatternAt(t *testing.T) {
	coords := Blinker.At(2, 3)
	want := []Coord{{2, 3}, {3, 3}, {4, 3}}

	if len(coords) != len(want) {
		t.Fatalf("got %d coordinates, expected %d", len(coords), len(want))
	}
	for i, c := range coords {
		if c != want[i] {
			t.Fatalf("coords[%d] = (%d, %d), expected (%d, %d)", i, c.X, c.Y, want[i].X, want[i].Y)
		}
	}
}

func TestSeedPatternBlock(t *testing.T) {
	grid, err := SeedPattern(4, 4, Block, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertAliveSet(t, grid, map[Coord]bool{
		{1, 1}: true,
		{2, 1}: true,
		{1, 2}: true,
		{2, 2}: true,
	})
}

func TestSeedPatternDoesNotFit(t *testing.T) {
	if _, err := SeedPattern(3, 3, Glider, 1, 1); !errors.Is(err, ErrCellOutOfBounds) {
		t.Fatalf("got %v, expected ErrCellOutOfBounds", err)
	}
}

func TestPlacePattern(t *testing.T) {
	grid := NewGrid(10, 10)
	if err := PlacePattern(grid, Glider, 4, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := grid.CountLiveCells(); got != len(Glider) {
		t.Fatalf("got %d live cells, expected %d", got, len(Glider))
	}

	if err := PlacePattern(grid, Blinker, 9, 0); !errors.Is(err, ErrCellOutOfBounds) {
		t.Fatalf("got %v, expected ErrCellOutOfBounds", err)
	}
}

func TestGliderMoves(t *testing.T) {
	grid, err := SeedPattern(10, 10, Glider, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// After four generations a glider reappears shifted one cell down-right
	for i := 0; i < 4; i++ {
		grid.NextGeneration()
	}

	shifted := map[Coord]bool{}
	for _, c := range Glider.At(2, 2) {
		shifted[c] = true
	}
	assertAliveSet(t, grid, shifted)
}
