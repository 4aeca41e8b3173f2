package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal abstracts the terminal queries help rendering needs
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

type systemTerminal struct{}

func (systemTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (systemTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// DefaultTerminal queries the real terminal through golang.org/x/term
var DefaultTerminal Terminal = systemTerminal{}

// TerminalWidth returns the column width of w when w is a file attached to a terminal.
// The second return value is false for anything else (buffers, pipes, redirected files).
func TerminalWidth(w io.Writer, t Terminal) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return 0, false
	}
	if t == nil {
		t = DefaultTerminal
	}

	fd := int(f.Fd())
	if !t.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := t.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}

	return width, true
}
