package model

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ScreenRenderer draws the board on a full-screen tcell terminal.
//
// The terminal is in raw mode while the renderer is open, so Ctrl+C, Esc and q
// arrive as key events and are reported through the onQuit callback.
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreenRenderer initializes the terminal and starts listening for quit keys
func NewScreenRenderer(onQuit func()) (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
	}
	return newScreenRenderer(screen, onQuit)
}

func newScreenRenderer(screen tcell.Screen, onQuit func()) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to init screen")
	}
	screen.Clear()

	r := &ScreenRenderer{
		screen: screen,
		style:  tcell.StyleDefault,
	}
	go r.pollEvents(onQuit)
	return r, nil
}

// Columns returns the width of the terminal in character cells
func (r *ScreenRenderer) Columns() int {
	width, _ := r.screen.Size()
	return width
}

func (r *ScreenRenderer) pollEvents(onQuit func()) {
	for {
		// PollEvent returns nil once the screen is finalized
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				onQuit()
			}
		}
	}
}

// Display draws the bordered board and status line, then shows the frame
func (r *ScreenRenderer) Display(b *Board) error {
	last := b.size*2 + 1

	r.put(0, 0, '┌')
	r.put(last, 0, '┐')
	r.put(0, b.size+1, '└')
	r.put(last, b.size+1, '┘')
	for x := 1; x < last; x++ {
		r.put(x, 0, '─')
		r.put(x, b.size+1, '─')
	}

	for row := range b.size {
		y := row + 1
		r.put(0, y, '│')
		r.put(last, y, '│')
		for col := range b.size {
			glyph := ' '
			if b.current.Get(row, col).IsAlive() {
				glyph = 'x'
			}
			r.put(col*2+1, y, glyph)
			r.put(col*2+2, y, ' ')
		}
	}

	status := fmt.Sprintf("generation=%d population=%d", b.generation, b.population)
	for i, ch := range []rune(status) {
		r.put(i, b.size+2, ch)
	}

	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) put(x, y int, ch rune) {
	r.screen.SetContent(x, y, ch, nil, r.style)
}

// Clear blanks the screen before the next frame
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Close restores the terminal
func (r *ScreenRenderer) Close() error {
	r.screen.Fini()
	return nil
}
