package dbg

import (
	"sync"
	"testing"
	"time"
)

// spySink records every emitted record.
type spySink struct {
	mu      sync.Mutex
	records []Record
}

func (s *spySink) Emit(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

func (s *spySink) all() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func withSpecInternal(t *testing.T, spec string) {
	t.Helper()
	prev := Namespaces()
	Enable(spec)
	t.Cleanup(func() { Enable(prev) })
}

func withFrozenTime(t *testing.T, at time.Time) *time.Time {
	t.Helper()
	prev := timeNow
	now := at
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = prev })
	return &now
}

func TestLoggerEmitsWhenEnabled(t *testing.T) {
	withSpecInternal(t, "emit:*")
	spy := &spySink{}

	logger := New("emit:server")
	logger.SetSink(spy)
	logger.Log("hello %s", "world")

	records := spy.all()
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.Namespace != "emit:server" {
		t.Fatalf("namespace = %q", r.Namespace)
	}
	if r.Message != "hello world" {
		t.Fatalf("message = %q", r.Message)
	}
	if r.Color != SelectColor("emit:server") {
		t.Fatalf("color = %d, want %d", r.Color, SelectColor("emit:server"))
	}
}

func TestDisabledLoggerShortCircuits(t *testing.T) {
	withSpecInternal(t, "")
	spy := &spySink{}

	logger := New("silent:channel")
	logger.SetSink(spy)
	logger.Log("should not render %s", "anything")

	if len(spy.all()) != 0 {
		t.Fatalf("disabled logger reached the sink")
	}
	// The format compiler must not have been consulted either.
	if stats := logger.FormatCacheStats(); stats.Misses != 0 || stats.Hits != 0 {
		t.Fatalf("disabled logger compiled a format: %+v", stats)
	}
}

func TestLoggerElapsedBetweenCalls(t *testing.T) {
	withSpecInternal(t, "elapsed:*")
	spy := &spySink{}
	now := withFrozenTime(t, time.Unix(1_700_000_000, 0))

	logger := New("elapsed:check")
	logger.SetSink(spy)

	logger.Log("first")
	*now = now.Add(250 * time.Millisecond)
	logger.Log("second")

	records := spy.all()
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Elapsed != 0 {
		t.Fatalf("first elapsed = %v, want 0", records[0].Elapsed)
	}
	if records[1].Elapsed != 250*time.Millisecond {
		t.Fatalf("second elapsed = %v, want 250ms", records[1].Elapsed)
	}
}

func TestLoggerFormatCacheReusedAcrossCalls(t *testing.T) {
	withSpecInternal(t, "cachehit:*")
	spy := &spySink{}

	logger := New("cachehit:ns")
	logger.SetSink(spy)
	logger.Log("x=%d", 1)
	logger.Log("x=%d", 2)
	logger.Log("x=%d", 3)

	records := spy.all()
	if records[0].Message != "x=1" || records[1].Message != "x=2" || records[2].Message != "x=3" {
		t.Fatalf("messages = %v", records)
	}
	stats := logger.FormatCacheStats()
	if stats.Misses != 1 {
		t.Fatalf("format compiled %d times, want 1", stats.Misses)
	}
	if stats.Hits != 2 {
		t.Fatalf("cache hits = %d, want 2", stats.Hits)
	}
}

func TestLoggerFormatCachesAreInstanceScoped(t *testing.T) {
	withSpecInternal(t, "scoped:*")
	spy := &spySink{}

	a := New("scoped:a")
	b := New("scoped:b")
	a.SetSink(spy)
	b.SetSink(spy)

	a.Log("shared %s", "format")
	b.Log("shared %s", "format")

	if stats := b.FormatCacheStats(); stats.Hits != 0 || stats.Misses != 1 {
		t.Fatalf("instance b should compile independently: %+v", stats)
	}
}

func TestLoggerSetEnabledOverridesRules(t *testing.T) {
	withSpecInternal(t, "")
	spy := &spySink{}

	logger := New("override:me")
	logger.SetSink(spy)

	logger.SetEnabled(true)
	if !logger.Enabled() {
		t.Fatalf("expected forced-on logger to report enabled")
	}
	logger.Log("forced on")
	if len(spy.all()) != 1 {
		t.Fatalf("forced-on logger did not emit")
	}

	Enable("override:*")
	logger.SetEnabled(false)
	if logger.Enabled() {
		t.Fatalf("expected forced-off logger to report disabled")
	}
	logger.Log("forced off")
	if len(spy.all()) != 1 {
		t.Fatalf("forced-off logger emitted despite override")
	}

	logger.ClearEnabledOverride()
	if !logger.Enabled() {
		t.Fatalf("expected rule-based enablement after clearing the override")
	}
}

func TestLoggerPerInstanceSinkDoesNotLeak(t *testing.T) {
	withSpecInternal(t, "sinks:*")
	spyA := &spySink{}
	spyDefault := &spySink{}
	prev := SetSink(spyDefault)
	t.Cleanup(func() { SetSink(prev) })

	a := New("sinks:a")
	a.SetSink(spyA)
	b := New("sinks:b")

	a.Log("to a")
	b.Log("to default")

	if len(spyA.all()) != 1 {
		t.Fatalf("instance sink got %d records, want 1", len(spyA.all()))
	}
	records := spyDefault.all()
	if len(records) != 1 || records[0].Namespace != "sinks:b" {
		t.Fatalf("default sink records = %+v", records)
	}

	a.SetSink(nil)
	a.Log("back to default")
	if len(spyDefault.all()) != 2 {
		t.Fatalf("clearing the instance sink should fall back to the default")
	}
}

func TestExtendJoinsNamespaces(t *testing.T) {
	withSpecInternal(t, "parent:*")
	spy := &spySink{}

	parent := New("parent")
	parent.SetSink(spy)
	child := parent.Extend("child")

	if child.Namespace() != "parent:child" {
		t.Fatalf("child namespace = %q", child.Namespace())
	}
	if !child.Enabled() {
		t.Fatalf("expected parent:* to enable the child")
	}

	child.Log("from child")
	records := spy.all()
	if len(records) != 1 || records[0].Namespace != "parent:child" {
		t.Fatalf("child should inherit the parent's sink override: %+v", records)
	}
}

func TestExtendWithCustomDelimiter(t *testing.T) {
	parent := New("svc")
	child := parent.ExtendWith(".", "db")
	if child.Namespace() != "svc.db" {
		t.Fatalf("child namespace = %q", child.Namespace())
	}
	grandchild := child.Extend("pool")
	if grandchild.Namespace() != "svc.db.pool" {
		t.Fatalf("grandchild should keep the delimiter: %q", grandchild.Namespace())
	}
}

func TestLoggerColorMatchesSelectColor(t *testing.T) {
	logger := New("color:stable")
	if logger.Color() != SelectColor("color:stable") {
		t.Fatalf("logger color %d != SelectColor %d", logger.Color(), SelectColor("color:stable"))
	}
}

func TestRuleChangeAppliesToExistingInstances(t *testing.T) {
	withSpecInternal(t, "")
	spy := &spySink{}

	logger := New("toggle:me")
	logger.SetSink(spy)

	logger.Log("while disabled")
	Enable("toggle:*")
	logger.Log("while enabled")
	Disable()
	logger.Log("after disable")

	records := spy.all()
	if len(records) != 1 || records[0].Message != "while enabled" {
		t.Fatalf("records = %+v, want only the enabled-phase emit", records)
	}
}
