package dbg

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"pkt.systems/dbg/ansi"
)

// Record is one rendered log event handed to a Sink. The sink owns all
// presentation decisions; dbg guarantees only that an enabled call produces
// at most one Record.
type Record struct {
	// Namespace is the emitting instance's channel name.
	Namespace string
	// Color is the namespace's palette index from SelectColor.
	Color ansi.ColorID
	// Message is the fully rendered format string.
	Message string
	// Elapsed is the time since the instance's previous enabled emit; zero on
	// the first one.
	Elapsed time.Duration
	// Time is the wall-clock instant of the call.
	Time time.Time
}

// Sink receives rendered records and performs actual output.
type Sink interface {
	Emit(Record)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Record)

// Emit calls f.
func (f SinkFunc) Emit(r Record) { f(r) }

// SinkStats captures cumulative write-failure counters for a ConsoleSink.
// Output errors are counted rather than returned: a logging call must never
// fail the host program.
type SinkStats struct {
	Failures    uint64
	ShortWrites uint64
}

// ConsoleOptions controls ConsoleSink rendering.
type ConsoleOptions struct {
	// ForceColor emits color even when the destination is not a terminal.
	ForceColor bool
	// NoColor disables color regardless of terminal detection. Wins over
	// ForceColor.
	NoColor bool
	// HideDate drops the wall-clock timestamp from non-color output.
	HideDate bool
	// TimeFormat overrides the non-color timestamp layout. Defaults to
	// time.RFC3339.
	TimeFormat string
	// Palette overrides the palette records are colored from. When nil the
	// active ansi palette is used.
	Palette *ansi.Palette
}

// ConsoleSink renders records as single lines. On color-capable terminals a
// record becomes "<bold+color>namespace<reset> message <color>+elapsed<reset>";
// otherwise a timestamp-prefixed plain line. Terminal capability is
// re-probed at most once per second.
type ConsoleSink struct {
	w          io.Writer
	opts       ConsoleOptions
	probe      *colorProbe
	timeFormat string

	failures    atomic.Uint64
	shortWrites atomic.Uint64
}

// NewConsole returns a ConsoleSink writing to w with default options.
func NewConsole(w io.Writer) *ConsoleSink {
	return NewConsoleSink(w, ConsoleOptions{})
}

// NewConsoleSink returns a ConsoleSink writing to w with explicit options.
func NewConsoleSink(w io.Writer, opts ConsoleOptions) *ConsoleSink {
	if w == nil {
		w = io.Discard
	}
	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	return &ConsoleSink{
		w:          w,
		opts:       opts,
		probe:      newColorProbe(w),
		timeFormat: timeFormat,
	}
}

// Emit renders and writes one record. Write errors are absorbed into the
// sink's counters.
func (s *ConsoleSink) Emit(r Record) {
	var b strings.Builder
	if s.colorEnabled() {
		palette := s.opts.Palette
		if palette == nil {
			palette = ansi.Active()
		}
		seq := palette.Sequence(r.Color)
		b.WriteString(ansi.Bold)
		b.WriteString(seq)
		b.WriteString(r.Namespace)
		b.WriteString(ansi.Reset)
		b.WriteByte(' ')
		b.WriteString(r.Message)
		b.WriteByte(' ')
		b.WriteString(seq)
		b.WriteByte('+')
		b.WriteString(humanizeDuration(r.Elapsed))
		b.WriteString(ansi.Reset)
	} else {
		if !s.opts.HideDate && !r.Time.IsZero() {
			b.WriteString(r.Time.Format(s.timeFormat))
			b.WriteByte(' ')
		}
		b.WriteString(r.Namespace)
		b.WriteByte(' ')
		b.WriteString(r.Message)
		b.WriteString(" +")
		b.WriteString(humanizeDuration(r.Elapsed))
	}
	b.WriteByte('\n')
	s.write(b.String())
}

func (s *ConsoleSink) colorEnabled() bool {
	if s.opts.NoColor {
		return false
	}
	if s.opts.ForceColor {
		return true
	}
	return s.probe.supported()
}

func (s *ConsoleSink) write(line string) {
	n, err := io.WriteString(s.w, line)
	if n != len(line) {
		s.shortWrites.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	if err != nil {
		s.failures.Add(1)
	}
}

// Stats returns cumulative write-failure counters.
func (s *ConsoleSink) Stats() SinkStats {
	return SinkStats{
		Failures:    s.failures.Load(),
		ShortWrites: s.shortWrites.Load(),
	}
}

// sinkSlot boxes a Sink so differing concrete types can share one atomic
// pointer slot.
type sinkSlot struct {
	sink Sink
}

var defaultSink atomic.Pointer[sinkSlot]

func init() {
	defaultSink.Store(&sinkSlot{sink: NewConsole(os.Stderr)})
}

// SetSink replaces the process-wide default sink used by instances without a
// per-instance override, returning the previous one. A nil sink restores the
// stderr console sink.
func SetSink(s Sink) Sink {
	if s == nil {
		s = NewConsole(os.Stderr)
	}
	prev := defaultSink.Swap(&sinkSlot{sink: s})
	return prev.sink
}

func currentDefaultSink() Sink {
	return defaultSink.Load().sink
}
