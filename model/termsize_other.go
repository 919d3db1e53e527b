//go:build !unix

package model

import "github.com/pkg/errors"

// TerminalColumns is not available without a unix tty
func TerminalColumns() (int, error) {
	return 0, errors.New("[TerminalColumns] terminal size probing is not supported on this platform")
}
