package rules

/*
NextState returns whether a cell is alive in the next generation.

A living cell survives with exactly 2 or 3 living neighbours; a dead cell
is born with exactly 3. Every other combination yields a dead cell.
*/
func NextState(alive bool, livingNeighbours int) bool {
	if alive {
		return livingNeighbours == 2 || livingNeighbours == 3
	}
	return livingNeighbours == 3
}
