package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testChoiceForm(t *testing.T) *form {
	t.Helper()
	return newForm("test", "tab", "shift+tab",
		newTextField("a", "A", "", true, nil),
		newChoiceField("b", "B", []choiceOption{
			{value: "1", label: "one"},
			{value: "2", label: "two"},
			{value: "3", label: "three"},
		}, "1"),
	)
}

func TestFormFocusClampsAtBothEnds(t *testing.T) {
	f := testChoiceForm(t)
	if f.idx != 1 {
		t.Fatalf("new form must focus the first field, got %d", f.idx)
	}

	// Previous from the first field stays put.
	f.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.idx != 1 {
		t.Fatalf("prev at start: expected idx 1, got %d", f.idx)
	}

	// Next walks fields then the save action, then clamps.
	f.update(tea.KeyMsg{Type: tea.KeyTab})
	f.update(tea.KeyMsg{Type: tea.KeyTab})
	if !f.onSave() {
		t.Fatalf("expected focus on save action, idx=%d", f.idx)
	}
	f.update(tea.KeyMsg{Type: tea.KeyTab})
	if f.idx != f.saveIndex() {
		t.Fatalf("next at end: expected idx %d, got %d", f.saveIndex(), f.idx)
	}
}

func TestFormConfiguredNavigationKeys(t *testing.T) {
	f := newForm("test", "ctrl+n", "ctrl+p",
		newTextField("a", "A", "", false, nil),
		newTextField("b", "B", "", false, nil),
	)
	f.update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if f.idx != 2 {
		t.Fatalf("ctrl+n must advance focus, got idx %d", f.idx)
	}
	f.update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if f.idx != 1 {
		t.Fatalf("ctrl+p must retreat focus, got idx %d", f.idx)
	}
	// Tab is no longer a navigation key; on a text field it feeds the input.
	f.update(tea.KeyMsg{Type: tea.KeyTab})
	if f.idx != 1 {
		t.Fatalf("tab must not move focus when remapped, got idx %d", f.idx)
	}
}

func TestChoiceFieldCyclesWithWrapAndNeverMovesFocus(t *testing.T) {
	f := testChoiceForm(t)
	f.update(tea.KeyMsg{Type: tea.KeyTab}) // focus the choice field
	if f.idx != 2 {
		t.Fatalf("expected focus on choice field, got %d", f.idx)
	}

	// Up from the first option wraps to the last.
	f.update(tea.KeyMsg{Type: tea.KeyUp})
	if got := f.value("b"); got != "3" {
		t.Fatalf("up-wrap: expected option 3, got %q", got)
	}
	// Down from the last wraps back to the first.
	f.update(tea.KeyMsg{Type: tea.KeyDown})
	if got := f.value("b"); got != "1" {
		t.Fatalf("down-wrap: expected option 1, got %q", got)
	}
	if f.idx != 2 {
		t.Fatalf("cycling must not move focus, got idx %d", f.idx)
	}
}

func TestChoiceFieldDigitJump(t *testing.T) {
	f := testChoiceForm(t)
	f.update(tea.KeyMsg{Type: tea.KeyTab})

	f.update(runeMsg('3'))
	if got := f.value("b"); got != "3" {
		t.Fatalf("digit jump: expected option 3, got %q", got)
	}
	// Out-of-range digit is ignored.
	f.update(runeMsg('9'))
	if got := f.value("b"); got != "3" {
		t.Fatalf("out-of-range digit must not change selection, got %q", got)
	}
}

func TestTextFieldTypingAndBackspace(t *testing.T) {
	f := newForm("test", "tab", "shift+tab",
		newTextField("a", "A", "", true, nil),
	)

	// Backspace on an empty buffer is a no-op, not a fault.
	f.update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := f.value("a"); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}

	f.update(runeMsg('h'))
	f.update(runeMsg('é'))
	f.update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := f.value("a"); got != "h" {
		t.Fatalf("backspace must remove one rune, got %q", got)
	}
}

func TestEnterRequestsSaveFromAnyField(t *testing.T) {
	f := testChoiceForm(t)
	if !f.update(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Fatalf("enter on the first field must request save")
	}
	f.idx = f.saveIndex()
	if !f.update(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Fatalf("enter on the save action must request save")
	}
}

func TestValidateAllCollectsEveryViolation(t *testing.T) {
	f := newForm("test", "tab", "shift+tab",
		newTextField("name", "Name", "   ", true, nil),
		newTextField("due", "Due", "not-a-date", false, validateDate),
		newTextField("color", "Color", "#12", false, validateColor),
	)

	errs := f.validateAll()
	if len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(errs), errs)
	}
	if _, ok := errs["name"]; !ok {
		t.Fatalf("whitespace-only required field must be a violation")
	}
	if _, ok := errs["due"]; !ok {
		t.Fatalf("malformed date must be a violation")
	}
	if _, ok := errs["color"]; !ok {
		t.Fatalf("malformed color must be a violation")
	}
}

func TestValidateDate(t *testing.T) {
	if msg := validateDate(""); msg != "" {
		t.Fatalf("empty date is allowed, got %q", msg)
	}
	if msg := validateDate("2026-09-01"); msg != "" {
		t.Fatalf("valid date rejected: %q", msg)
	}
	if msg := validateDate("2026-9-1"); msg == "" {
		t.Fatalf("loose format must be rejected")
	}
	if msg := validateDate("2026-02-30"); msg == "" {
		t.Fatalf("impossible calendar date must be rejected")
	}
}
