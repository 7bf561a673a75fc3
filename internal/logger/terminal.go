package logger

import "github.com/mattn/go-isatty"

// isTerminal reports whether fd is an interactive terminal; colour output
// is only enabled for terminals.
func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
