package ansi

import (
	"sort"
	"strings"
)

// Basic is the readable subset of the 8-color SGR range, for terminals
// without 256-color support. Red is last so error-ish namespaces do not
// dominate small palettes.
var Basic = Palette{
	"\x1b[36m", // cyan
	"\x1b[32m", // green
	"\x1b[33m", // yellow
	"\x1b[34m", // blue
	"\x1b[35m", // magenta
	"\x1b[31m", // red
}

// Extended is the default palette: 76 hand-picked entries from the xterm
// 256-color cube, chosen for contrast against both light and dark
// backgrounds. It is the widely used namespace-color set from the debug
// logging ecosystem.
var Extended = Palette{
	"\x1b[38;5;20m", "\x1b[38;5;21m", "\x1b[38;5;26m", "\x1b[38;5;27m", "\x1b[38;5;32m", "\x1b[38;5;33m",
	"\x1b[38;5;38m", "\x1b[38;5;39m", "\x1b[38;5;40m", "\x1b[38;5;41m", "\x1b[38;5;42m", "\x1b[38;5;43m",
	"\x1b[38;5;44m", "\x1b[38;5;45m", "\x1b[38;5;56m", "\x1b[38;5;57m", "\x1b[38;5;62m", "\x1b[38;5;63m",
	"\x1b[38;5;68m", "\x1b[38;5;69m", "\x1b[38;5;74m", "\x1b[38;5;75m", "\x1b[38;5;76m", "\x1b[38;5;77m",
	"\x1b[38;5;78m", "\x1b[38;5;79m", "\x1b[38;5;80m", "\x1b[38;5;81m", "\x1b[38;5;92m", "\x1b[38;5;93m",
	"\x1b[38;5;98m", "\x1b[38;5;99m", "\x1b[38;5;112m", "\x1b[38;5;113m", "\x1b[38;5;128m", "\x1b[38;5;129m",
	"\x1b[38;5;134m", "\x1b[38;5;135m", "\x1b[38;5;148m", "\x1b[38;5;149m", "\x1b[38;5;160m", "\x1b[38;5;161m",
	"\x1b[38;5;162m", "\x1b[38;5;163m", "\x1b[38;5;164m", "\x1b[38;5;165m", "\x1b[38;5;166m", "\x1b[38;5;167m",
	"\x1b[38;5;168m", "\x1b[38;5;169m", "\x1b[38;5;170m", "\x1b[38;5;171m", "\x1b[38;5;172m", "\x1b[38;5;173m",
	"\x1b[38;5;178m", "\x1b[38;5;179m", "\x1b[38;5;184m", "\x1b[38;5;185m", "\x1b[38;5;196m", "\x1b[38;5;197m",
	"\x1b[38;5;198m", "\x1b[38;5;199m", "\x1b[38;5;200m", "\x1b[38;5;201m", "\x1b[38;5;202m", "\x1b[38;5;203m",
	"\x1b[38;5;204m", "\x1b[38;5;205m", "\x1b[38;5;206m", "\x1b[38;5;207m", "\x1b[38;5;208m", "\x1b[38;5;209m",
	"\x1b[38;5;214m", "\x1b[38;5;215m", "\x1b[38;5;220m", "\x1b[38;5;221m",
}

// Mono renders every namespace without color while keeping the bold prefix
// styling. Useful for logs that are post-processed by ANSI-unaware tools.
var Mono = Palette{""}

var namedPalettes = map[string]*Palette{
	"basic":    &Basic,
	"extended": &Extended,
	"mono":     &Mono,
}

var paletteAliases = map[string]string{
	"default": "extended",
	"256":     "extended",
	"8":       "basic",
	"16":      "basic",
	"ansi":    "basic",
	"none":    "mono",
	"plain":   "mono",
}

// PaletteByName resolves a built-in palette by its canonical name. Names are
// case-insensitive and support compatibility aliases ("256", "ansi", ...).
// Unknown names resolve to Extended.
func PaletteByName(name string) *Palette {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := paletteAliases[normalized]; ok {
		normalized = alias
	}
	if palette, ok := namedPalettes[normalized]; ok {
		return palette
	}
	return &Extended
}

// PaletteNames returns the canonical names of all built-in palettes.
func PaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
