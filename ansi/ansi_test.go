package ansi

import (
	"strings"
	"testing"
)

func TestSequenceWrapsOutOfRangeIDs(t *testing.T) {
	p := Palette{"a", "b", "c"}
	if got := p.Sequence(0); got != "a" {
		t.Fatalf("Sequence(0) = %q, want %q", got, "a")
	}
	if got := p.Sequence(4); got != "b" {
		t.Fatalf("Sequence(4) = %q, want %q", got, "b")
	}
	if got := p.Sequence(-1); got != "c" {
		t.Fatalf("Sequence(-1) = %q, want %q", got, "c")
	}
}

func TestSequenceEmptyPalette(t *testing.T) {
	var p Palette
	if got := p.Sequence(0); got != "" {
		t.Fatalf("empty palette should yield empty sequence, got %q", got)
	}
}

func TestSetPaletteNilRestoresDefault(t *testing.T) {
	before := Active()
	t.Cleanup(func() { SetPalette(before) })

	SetPalette(&Basic)
	if Active() != &Basic {
		t.Fatalf("expected Basic to be active")
	}
	SetPalette(nil)
	if Active() != &Extended {
		t.Fatalf("expected nil to restore Extended")
	}
}

func TestExtendedEntriesAreColorSequences(t *testing.T) {
	for i, seq := range Extended {
		if !strings.HasPrefix(seq, "\x1b[38;5;") || !strings.HasSuffix(seq, "m") {
			t.Fatalf("Extended[%d] = %q is not a 256-color foreground sequence", i, seq)
		}
	}
}

func TestPaletteByNameAliases(t *testing.T) {
	cases := map[string]*Palette{
		"extended": &Extended,
		"256":      &Extended,
		"Default":  &Extended,
		"basic":    &Basic,
		"ANSI":     &Basic,
		"mono":     &Mono,
		"plain":    &Mono,
		"bogus":    &Extended,
	}
	for name, want := range cases {
		if got := PaletteByName(name); got != want {
			t.Fatalf("PaletteByName(%q) resolved to the wrong palette", name)
		}
	}
}

func TestPaletteNamesSorted(t *testing.T) {
	names := PaletteNames()
	if len(names) != len(namedPalettes) {
		t.Fatalf("expected %d names, got %d", len(namedPalettes), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
