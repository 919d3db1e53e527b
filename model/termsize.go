//go:build unix

package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// TerminalColumns returns the width of the controlling terminal in character cells
func TerminalColumns() (int, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return 0, errors.Wrap(err, "[TerminalColumns] failed to open terminal")
	}
	defer tty.Close()

	size, err := tty.WindowSize()
	if err != nil {
		return 0, errors.Wrap(err, "[TerminalColumns] failed to read window size")
	}
	return size.Width, nil
}
