// Package istty answers one question: does a file descriptor point at an
// interactive terminal. dbg uses it to decide whether the console sink may
// emit color. Platform-specific probes live behind the isTerminal function.
package istty

// IsTerminal reports whether fd refers to a terminal device. Negative file
// descriptors are never terminals.
func IsTerminal(fd int) bool {
	if fd < 0 {
		return false
	}
	return isTerminal(fd)
}
