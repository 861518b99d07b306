package dbg

import (
	"sync/atomic"
	"time"

	"pkt.systems/dbg/ansi"
)

// DefaultDelimiter joins parent and child namespaces in Extend.
const DefaultDelimiter = ":"

const (
	overrideNone int32 = iota
	overrideOn
	overrideOff
)

// Logger is a logging channel bound to one namespace. The zero value is not
// usable; construct instances with New or Extend. All methods are safe for
// concurrent use.
type Logger struct {
	namespace string
	color     ansi.ColorID
	delimiter string

	formats  formatCache
	sink     atomic.Pointer[sinkSlot] // nil slot: use process default
	override atomic.Int32
	last     atomic.Int64 // UnixNano of the previous enabled emit, 0 = never
}

// New returns a Logger bound to namespace. The namespace's color is assigned
// (and cached) immediately; whether the instance actually emits is decided
// per call against the active enable specification.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		color:     SelectColor(namespace),
		delimiter: DefaultDelimiter,
	}
}

// Namespace returns the namespace the instance is bound to.
func (l *Logger) Namespace() string { return l.namespace }

// Color returns the instance's palette index.
func (l *Logger) Color() ansi.ColorID { return l.color }

// Log renders format with args and emits the result, provided the instance
// is enabled. The enablement check is the first thing Log does: a disabled
// call returns before any formatting work or sink involvement.
//
// Placeholders consume positional arguments in order (%s string, %d/%i
// integer, %f float, %j JSON, %o/%O inspect, %% literal percent; unknown
// verbs stay literal). Under-supplied placeholders render as their literal
// %verb text; extra trailing arguments are appended space-separated in
// inspected form.
func (l *Logger) Log(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	now := timeNow()
	var elapsed time.Duration
	if prev := l.last.Swap(now.UnixNano()); prev != 0 {
		elapsed = now.Sub(time.Unix(0, prev))
	}
	l.currentSink().Emit(Record{
		Namespace: l.namespace,
		Color:     l.color,
		Message:   l.formats.render(format, args),
		Elapsed:   elapsed,
		Time:      now,
	})
}

// Enabled reports whether the next Log call would emit. A per-instance
// override set via SetEnabled wins; otherwise the verdict comes from the
// active enable specification.
func (l *Logger) Enabled() bool {
	switch l.override.Load() {
	case overrideOn:
		return true
	case overrideOff:
		return false
	}
	return Enabled(l.namespace)
}

// SetEnabled force-sets the instance's enablement independent of the global
// rules, until ClearEnabledOverride is called.
func (l *Logger) SetEnabled(enabled bool) {
	if enabled {
		l.override.Store(overrideOn)
		return
	}
	l.override.Store(overrideOff)
}

// ClearEnabledOverride returns the instance to rule-based enablement.
func (l *Logger) ClearEnabledOverride() {
	l.override.Store(overrideNone)
}

// SetSink overrides where this instance emits, leaving other instances on
// the process default. A nil sink restores the default.
func (l *Logger) SetSink(s Sink) {
	if s == nil {
		l.sink.Store(nil)
		return
	}
	l.sink.Store(&sinkSlot{sink: s})
}

func (l *Logger) currentSink() Sink {
	if slot := l.sink.Load(); slot != nil {
		return slot.sink
	}
	return currentDefaultSink()
}

// Extend returns a new Logger whose namespace is the receiver's plus suffix,
// joined by the instance delimiter (":" unless changed with ExtendWith). The
// child shares global state but carries its own color, format cache, and
// overrides.
func (l *Logger) Extend(suffix string) *Logger {
	return l.extend(l.delimiter, suffix)
}

// ExtendWith is Extend with an explicit delimiter; the child keeps it for
// its own descendants.
func (l *Logger) ExtendWith(delimiter, suffix string) *Logger {
	return l.extend(delimiter, suffix)
}

func (l *Logger) extend(delimiter, suffix string) *Logger {
	namespace := l.namespace + delimiter + suffix
	child := New(namespace)
	child.delimiter = delimiter
	if slot := l.sink.Load(); slot != nil {
		child.sink.Store(slot)
	}
	return child
}

// FormatCacheStats reports the instance's compiled-format cache counters.
func (l *Logger) FormatCacheStats() FormatCacheStats {
	return l.formats.stats()
}
