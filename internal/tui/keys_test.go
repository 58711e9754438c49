package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDecodeKeyDistinguishesArrowFromRune(t *testing.T) {
	up := decodeKey(tea.KeyMsg{Type: tea.KeyUp})
	if up.key != keyUp {
		t.Fatalf("expected keyUp, got %d", up.key)
	}

	a := decodeKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if a.key != keyRune || a.r != 'a' {
		t.Fatalf("expected rune 'a', got key=%d r=%q", a.key, a.r)
	}
	if !a.isRune('a') || a.isRune('b') {
		t.Fatalf("isRune mismatch for %q", a.r)
	}
}

func TestDecodeKeySpaceIsARune(t *testing.T) {
	sp := decodeKey(tea.KeyMsg{Type: tea.KeySpace})
	if !sp.isRune(' ') {
		t.Fatalf("expected space rune, got key=%d r=%q", sp.key, sp.r)
	}
}

func TestDecodeKeyUnknownSequencesDropToNone(t *testing.T) {
	ev := decodeKey(tea.KeyMsg{Type: tea.KeyF5})
	if ev.key != keyNone {
		t.Fatalf("expected keyNone for out-of-set key, got %d", ev.key)
	}
	empty := decodeKey(tea.KeyMsg{Type: tea.KeyRunes})
	if empty.key != keyNone {
		t.Fatalf("expected keyNone for empty rune payload, got %d", empty.key)
	}
}
