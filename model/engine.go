package model

import "github.com/sheikhrachel/go-life/rules"

// NextValue decides the next state of the cell at c from the prior generation.
// Only prior is read, so cells may be evaluated in any order or concurrently.
func NextValue(c Coord, prior *Grid, index *NeighborIndex) rules.Cell {
	liveNeighbors := 0
	for _, n := range index.NeighborsOf(c) {
		liveNeighbors += int(prior.cells[prior.index(n.Row, n.Col)])
	}
	return rules.Next(prior.cells[prior.index(c.Row, c.Col)], liveNeighbors)
}
