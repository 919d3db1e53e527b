package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	b := emptyBoard(t, 2)
	place(t, b, Coord{0, 0}, Coord{1, 1})

	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	if err := r.Display(b); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	want := "┌────┐\n" +
		"│x   │\n" +
		"│  x │\n" +
		"└────┘\n" +
		"generation=1 population=2\n"
	if out.String() != want {
		t.Fatalf("Display wrote\n%s\nexpected\n%s", out.String(), want)
	}
}
