// Package ansi provides the ANSI escape sequences and namespace palettes used
// by dbg's colored output path. A Palette is an ordered list of foreground
// sequences; dbg hashes each namespace into a stable index so the same
// namespace keeps the same color for the lifetime of the process. Callers can
// swap the active palette via SetPalette or pick one explicitly through
// PaletteByName without touching dbg internals.
package ansi

import "sync"

// Reset clears all terminal styling; Bold switches to bold weight. They are
// emitted around the namespace prefix by dbg's console sink.
const (
	Reset = "\x1b[0m"
	Bold  = "\x1b[1m"
)

// ColorID indexes into a Palette. Values produced by dbg.SelectColor are
// always within the active palette's bounds.
type ColorID int

// Palette is an ordered list of ANSI foreground escape sequences. Palettes
// are immutable once constructed; swapping the active palette never
// invalidates previously assigned ColorIDs because lookups clamp by modulo.
type Palette []string

// Sequence returns the foreground escape sequence for id. Out-of-range ids
// wrap by modulo so a ColorID assigned under a larger palette still resolves.
func (p Palette) Sequence(id ColorID) string {
	if len(p) == 0 {
		return ""
	}
	i := int(id) % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Len reports the number of colors in the palette.
func (p Palette) Len() int { return len(p) }

var (
	activeMu sync.RWMutex
	active   = &Extended
)

// Active returns the palette dbg currently assigns namespace colors from.
func Active() *Palette {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// SetPalette installs p as the active palette. Passing nil restores the
// default Extended palette. Already-cached namespace colors keep their index;
// only the sequence they resolve to changes.
//
//	ansi.SetPalette(&ansi.Basic)
//	// Reset to default
//	ansi.SetPalette(nil)
func SetPalette(p *Palette) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if p == nil || len(*p) == 0 {
		active = &Extended
		return
	}
	active = p
}
