package rules

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

/*
Next applies Conway's Game of Life rules to determine the next state of a cell.

A live cell with fewer than two live neighbors dies (under-population), with two or
three it survives, and with more than three it dies (overcrowding). A dead cell with
exactly three live neighbors becomes alive (reproduction).
*/
func Next(prior Cell, liveNeighbors int) Cell {
	if prior.IsAlive() {
		if liveNeighbors < 2 || liveNeighbors > 3 {
			return Dead
		}
		return Alive
	}
	if liveNeighbors == 3 {
		return Alive
	}
	return Dead
}
