package tui

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether both f and Stdout are attached to a terminal.
// Styling is only applied in that case.
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
