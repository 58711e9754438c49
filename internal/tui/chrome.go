package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// keyHint is one (key, action) pair in the footer.
type keyHint struct {
	key   string
	label string
}

func renderHeader(title, subtitle string, width int) string {
	t := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(title)
	if subtitle != "" {
		t += "  " + styleMuted().Render(subtitle)
	}
	return truncateToWidth(t, width)
}

// renderFooter builds the keybinding line from ordered hints.
func renderFooter(hints []keyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, h.key+": "+h.label)
	}
	return truncateToWidth(styleMuted().Render(strings.Join(parts, "   ")), width)
}

func renderNotice(n notice, width int) string {
	if n.empty() {
		return ""
	}
	var st lipgloss.Style
	switch n.kind {
	case noticeSuccess:
		st = lipgloss.NewStyle().Foreground(colorSuccessFg)
	case noticeError:
		st = lipgloss.NewStyle().Foreground(colorErrorFg).Bold(true)
	case noticeWarning:
		st = lipgloss.NewStyle().Foreground(colorWarnFg)
	default:
		st = lipgloss.NewStyle().Foreground(colorInfoFg)
	}
	return truncateToWidth(st.Render(n.text), width)
}
