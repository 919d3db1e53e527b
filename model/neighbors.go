package model

import "sync"

// NeighborIndex caches the in-bounds neighbors of every coordinate of a square grid.
//
// Entries are computed on first lookup and never change afterwards. Each entry is
// guarded by its own sync.Once, so lookups are safe from concurrent workers and an
// entry is computed exactly once.
type NeighborIndex struct {
	size  int
	once  []sync.Once
	table [][]Coord
}

// NewNeighborIndex creates an empty index for a grid with the given side length
func NewNeighborIndex(size int) *NeighborIndex {
	return &NeighborIndex{
		size:  size,
		once:  make([]sync.Once, size*size),
		table: make([][]Coord, size*size),
	}
}

// NeighborsOf returns the neighbors of c ordered by row then column.
// The returned slice is shared and must not be modified.
func (n *NeighborIndex) NeighborsOf(c Coord) []Coord {
	i := c.Row*n.size + c.Col
	n.once[i].Do(func() {
		n.table[i] = n.compute(c)
	})
	return n.table[i]
}

func (n *NeighborIndex) compute(c Coord) []Coord {
	neighbors := make([]Coord, 0, 8)
	for row := c.Row - 1; row <= c.Row+1; row++ {
		if row < 0 || row >= n.size {
			continue
		}
		for col := c.Col - 1; col <= c.Col+1; col++ {
			if col < 0 || col >= n.size {
				continue
			}
			if row == c.Row && col == c.Col {
				continue // Skip the cell itself
			}
			neighbors = append(neighbors, Coord{Row: row, Col: col})
		}
	}
	return neighbors
}
