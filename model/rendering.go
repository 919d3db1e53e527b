package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "x "
	gridPosDead  = "  "

	clearCmd = "clear"
)

// Renderer draws a board once per generation
type Renderer interface {
	Display(b *Board) error
	Clear() error
	Close() error
}

// TerminalRenderer writes a bordered plain text frame to Out
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer creates a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the board followed by a status line
func (r *TerminalRenderer) Display(b *Board) error {
	w := bufio.NewWriter(r.Out)
	edge := strings.Repeat("─", b.size*2)

	fmt.Fprintf(w, "┌%s┐\n", edge)
	for row := range b.size {
		w.WriteString("│")
		for col := range b.size {
			if b.current.Get(row, col).IsAlive() {
				w.WriteString(gridPosAlive)
			} else {
				w.WriteString(gridPosDead)
			}
		}
		w.WriteString("│\n")
	}
	fmt.Fprintf(w, "└%s┘\n", edge)
	fmt.Fprintf(w, "generation=%d population=%d\n", b.generation, b.population)

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}

// Close is a no-op, the writer belongs to the caller
func (r *TerminalRenderer) Close() error {
	return nil
}
