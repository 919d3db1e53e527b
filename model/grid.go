package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-life/rules"
)

// Coord is a 0-indexed (row, column) position on a square grid
type Coord struct {
	Row, Col int
}

// Grid is a square buffer of cells stored in row-major order
type Grid struct {
	size  int
	cells []rules.Cell
}

// NewGrid creates an all-dead grid with the given side length
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]rules.Cell, size*size),
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (row, col) lies on the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) index(row, col int) int {
	return row*g.size + col
}

// Get returns the state of a cell, out of range positions read as dead
func (g *Grid) Get(row, col int) rules.Cell {
	if !g.InBounds(row, col) {
		return rules.Dead
	}
	return g.cells[g.index(row, col)]
}

// Set sets the state of a cell, out of range positions are ignored
func (g *Grid) Set(row, col int, cell rules.Cell) {
	if g.InBounds(row, col) {
		g.cells[g.index(row, col)] = cell
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = rules.Dead
	}
}

// Randomize draws every cell independently from the seeder
func (g *Grid) Randomize(seeder Seeder) {
	for i := range g.cells {
		g.cells[i] = rules.Dead
		if seeder.Bernoulli() {
			g.cells[i] = rules.Alive
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, cell := range g.cells {
		count += int(cell)
	}
	return
}

// Hash returns an MD5 digest of the grid contents
func (g *Grid) Hash() string {
	h := md5.New()
	for _, cell := range g.cells {
		h.Write([]byte{byte(cell)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
