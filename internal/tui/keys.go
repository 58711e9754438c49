package tui

import tea "github.com/charmbracelet/bubbletea"

// logicalKey is the closed set of input events the screen handlers work with.
// Byte-level escape-sequence parsing (including resolving a lone ESC after a
// short read timeout) is owned by the bubbletea input driver; this decoder
// normalizes its key messages so no handler depends on raw encodings.
type logicalKey int

const (
	keyNone logicalKey = iota
	keyRune
	keyUp
	keyDown
	keyLeft
	keyRight
	keyEnter
	keyEscape
	keyTab
	keyShiftTab
	keyBackspace
	keyCtrlC
)

// keyEvent pairs a logical key with its rune payload (keyRune only).
type keyEvent struct {
	key logicalKey
	r   rune
}

// decodeKey maps a bubbletea key message onto the logical key set. Sequences
// outside the set decode to keyNone and are dropped by the dispatcher.
func decodeKey(msg tea.KeyMsg) keyEvent {
	switch msg.Type {
	case tea.KeyUp:
		return keyEvent{key: keyUp}
	case tea.KeyDown:
		return keyEvent{key: keyDown}
	case tea.KeyLeft:
		return keyEvent{key: keyLeft}
	case tea.KeyRight:
		return keyEvent{key: keyRight}
	case tea.KeyEnter:
		return keyEvent{key: keyEnter}
	case tea.KeyEsc:
		return keyEvent{key: keyEscape}
	case tea.KeyTab:
		return keyEvent{key: keyTab}
	case tea.KeyShiftTab:
		return keyEvent{key: keyShiftTab}
	case tea.KeyBackspace:
		return keyEvent{key: keyBackspace}
	case tea.KeyCtrlC:
		return keyEvent{key: keyCtrlC}
	case tea.KeySpace:
		return keyEvent{key: keyRune, r: ' '}
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return keyEvent{key: keyNone}
		}
		return keyEvent{key: keyRune, r: msg.Runes[0]}
	}
	return keyEvent{key: keyNone}
}

// isRune reports whether ev is the printable character r.
func (ev keyEvent) isRune(r rune) bool {
	return ev.key == keyRune && ev.r == r
}
