package model

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Board holds two generations of a square, non-wrapping Game of Life grid.
//
// The current generation is the one readable through CellAt. Step moves it to the
// prior buffer and overwrites the old prior buffer with the next generation, so no
// buffers are allocated after construction. A Board is not safe for concurrent use.
type Board struct {
	size       int
	prior      *Grid
	current    *Grid
	neighbors  *NeighborIndex
	generation int
	population int
	workers    int
}

type boardOptions struct {
	seeder  Seeder
	workers int
}

// Option configures a Board at construction
type Option func(*boardOptions)

// WithSeeder replaces the time-seeded random source used for the first generation
func WithSeeder(seeder Seeder) Option {
	return func(o *boardOptions) {
		o.seeder = seeder
	}
}

// WithParallel splits each step across workers goroutines, zero means one per CPU
func WithParallel(workers int) Option {
	return func(o *boardOptions) {
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		o.workers = workers
	}
}

// New creates a size x size board at generation 1 with a randomly seeded population
func New(size int, opts ...Option) (*Board, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrConfig, "[New] dimension must be at least 1, got %d", size)
	}

	options := boardOptions{workers: 1}
	for _, opt := range opts {
		opt(&options)
	}
	if options.seeder == nil {
		options.seeder = NewRandSeeder(time.Now().UnixNano())
	}

	b := &Board{
		size:       size,
		prior:      NewGrid(size),
		current:    NewGrid(size),
		neighbors:  NewNeighborIndex(size),
		generation: 1,
		workers:    options.workers,
	}
	b.current.Randomize(options.seeder)
	b.population = b.current.CountLivingCells()
	return b, nil
}

// Size returns the side length of the board
func (b *Board) Size() int {
	return b.size
}

// Generation returns the number of the current generation, starting at 1
func (b *Board) Generation() int {
	return b.generation
}

// Population returns the number of living cells in the current generation
func (b *Board) Population() int {
	return b.population
}

// CellAt returns the state of a cell in the current generation
func (b *Board) CellAt(row, col int) (rules.Cell, error) {
	if !b.current.InBounds(row, col) {
		return rules.Dead, errors.Wrapf(ErrOutOfRange, "[CellAt] (%d, %d) on a %dx%d board", row, col, b.size, b.size)
	}
	return b.current.Get(row, col), nil
}

// Set overwrites a cell in the current generation, keeping the population in sync
func (b *Board) Set(row, col int, cell rules.Cell) error {
	if !b.current.InBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[Set] (%d, %d) on a %dx%d board", row, col, b.size, b.size)
	}
	if cell != rules.Dead && cell != rules.Alive {
		return errors.Wrapf(ErrInvalidCell, "[Set] cell value %d at (%d, %d)", cell, row, col)
	}
	b.population += int(cell) - int(b.current.Get(row, col))
	b.current.Set(row, col, cell)
	return nil
}

// Clear kills every cell of the current generation
func (b *Board) Clear() {
	b.current.Clear()
	b.population = 0
}

// Fingerprint returns a digest of the current generation for cycle detection
func (b *Board) Fingerprint() string {
	return b.current.Hash()
}

// Step advances the board by one generation and returns the new generation
// number and population.
func (b *Board) Step() (int, int) {
	b.prior, b.current = b.current, b.prior

	if b.workers > 1 {
		b.population = b.stepParallel()
	} else {
		b.population = b.stepRows(0, b.size)
	}
	b.generation++

	return b.generation, b.population
}

// stepRows writes rows [startRow, endRow) of the current buffer and returns
// how many of the written cells are alive
func (b *Board) stepRows(startRow, endRow int) (live int) {
	for row := startRow; row < endRow; row++ {
		for col := range b.size {
			cell := NextValue(Coord{Row: row, Col: col}, b.prior, b.neighbors)
			b.current.cells[b.current.index(row, col)] = cell
			live += int(cell)
		}
	}
	return
}

func (b *Board) stepParallel() int {
	var (
		eg            errgroup.Group
		numWorkers    = min(b.workers, b.size)
		rowsPerWorker = (b.size + numWorkers - 1) / numWorkers // Ceiling division
		counts        = make([]int, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.size)
		)
		if startRow >= b.size {
			break
		}

		eg.Go(func() error {
			counts[i] = b.stepRows(startRow, endRow)
			return nil
		})
	}

	// workers never return an error
	_ = eg.Wait()

	population := 0
	for _, count := range counts {
		population += count
	}
	return population
}
