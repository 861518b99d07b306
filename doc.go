// Package dbg provides namespace-scoped conditional logging: a program
// registers many independent channels, switches subsets of them on and off
// at runtime with wildcard patterns, and pays close to nothing for channels
// that are off.
//
// # Design overview
//
//   - Enable specification: a comma/whitespace separated list of namespace
//     globs ("app:*,-app:secret"); '-' excludes. Compiled once per Enable
//     into an immutable rule-set snapshot behind an atomic pointer.
//   - Enablement: default off; rules apply strictly left to right and the
//     last matching rule wins, so a later inclusion can re-enable what an
//     earlier exclusion switched off. Verdicts are cached on the snapshot
//     itself, which makes cache invalidation a side effect of the swap.
//   - Pattern matching: '*' matches any run of characters, anchored globs,
//     memoized per (namespace, pattern, polarity) for the process lifetime.
//   - Colors: each namespace hashes to a stable index in the active ansi
//     palette, so one channel keeps one color for the whole run.
//   - Formatting: percent placeholders (%s %d %i %f %j %o %O %%) compile once
//     per format string per instance and replay against fresh arguments.
//     Under-supplied placeholders stay literal, surplus arguments are
//     appended, and a %j value that cannot be marshalled renders as
//     [Unserializable]. A log statement never fails its caller.
//
// # Usage
//
//	dbg.Enable("app:*,-app:noise")
//
//	logger := dbg.New("app:server")
//	logger.Log("listening on %s", addr)
//
//	child := logger.Extend("request")
//	child.Log("user %s took %d ms", user, elapsed)
//
// Disabled instances short-circuit before any formatting work:
//
//	quiet := dbg.New("app:noise")
//	quiet.Log("expensive? no: %j", payload) // no render, no output
//
// FromEnv wires the conventional environment variables (DEBUG, DEBUG_COLORS,
// DEBUG_HIDE_DATE, DEBUG_PALETTE) and installs a console sink:
//
//	dbg.FromEnv()
//
// # Integration notes
//
//   - Sinks are pluggable per process (SetSink) and per instance
//     (Logger.SetSink); SinkFunc adapts a closure.
//   - The ansi subpackage exposes the palettes (ansi.SetPalette,
//     ansi.PaletteByName).
//   - The dbgspec tool under cmd/ explains and evaluates specifications
//     offline.
package dbg
