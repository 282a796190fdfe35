package rules

/*
NextState applies Conway's B3/S23 rule to a single cell.

A live cell with 2 or 3 live neighbors survives; a dead cell with exactly
3 live neighbors is born; every other cell is dead in the next generation.
*/
func NextState(alive bool, liveNeighbors int) bool {
	return (alive && liveNeighbors == 2) || liveNeighbors == 3
}
