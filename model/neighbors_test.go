package model

import (
	"reflect"
	"sync"
	"testing"
)

func TestNeighborsOfCounts(t *testing.T) {
	const n = 6
	index := NewNeighborIndex(n)

	for row := range n {
		for col := range n {
			onRowEdge := row == 0 || row == n-1
			onColEdge := col == 0 || col == n-1

			want := 8
			switch {
			case onRowEdge && onColEdge:
				want = 3
			case onRowEdge || onColEdge:
				want = 5
			}

			if got := len(index.NeighborsOf(Coord{Row: row, Col: col})); got != want {
				t.Fatalf("cell (%d,%d) has %d neighbors, expected %d", row, col, got, want)
			}
		}
	}
}

func TestNeighborsOfSingleCell(t *testing.T) {
	index := NewNeighborIndex(1)
	if got := index.NeighborsOf(Coord{}); len(got) != 0 {
		t.Fatalf("single cell has neighbors %v, expected none", got)
	}
}

func TestNeighborsOfOrder(t *testing.T) {
	index := NewNeighborIndex(3)

	got := index.NeighborsOf(Coord{Row: 0, Col: 1})
	want := []Coord{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("neighbors of (0,1) = %v, expected %v", got, want)
	}

	got = index.NeighborsOf(Coord{Row: 1, Col: 1})
	want = []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("neighbors of (1,1) = %v, expected %v", got, want)
	}
}

func TestNeighborsOfCached(t *testing.T) {
	index := NewNeighborIndex(4)
	c := Coord{Row: 2, Col: 3}

	first := index.NeighborsOf(c)
	second := index.NeighborsOf(c)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second lookup %v differs from first %v", second, first)
	}
	if &first[0] != &second[0] {
		t.Fatal("second lookup recomputed the entry")
	}
}

func TestNeighborsOfConcurrent(t *testing.T) {
	const n = 8
	index := NewNeighborIndex(n)

	var wg sync.WaitGroup
	results := make([][]Coord, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = index.NeighborsOf(Coord{Row: 3, Col: 4})
		}()
	}
	wg.Wait()

	for i, got := range results {
		if &got[0] != &results[0][0] {
			t.Fatalf("worker %d saw a different entry", i)
		}
	}
}
