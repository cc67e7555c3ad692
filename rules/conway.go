package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next
state of a cell:

 1. A live cell with fewer than two live neighbors dies (underpopulation).
 2. A live cell with two or three live neighbors lives on.
 3. A live cell with more than three live neighbors dies (overpopulation).
 4. A dead cell with exactly three live neighbors becomes alive (reproduction).

The whole table reduces to: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
