//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd || solaris || aix || zos

package istty

import "golang.org/x/term"

func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
