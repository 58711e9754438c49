package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// On-screen alignment has to account for invisible styling sequences, so every
// table renderer goes through these helpers instead of len().

// visibleWidth returns the on-screen cell width of s, ignoring ANSI markup.
func visibleWidth(s string) int {
	return xansi.StringWidth(s)
}

// padToWidth right-pads s with spaces to visible width w.
func padToWidth(s string, w int) string {
	sw := visibleWidth(s)
	if sw >= w {
		return s
	}
	return s + strings.Repeat(" ", w-sw)
}

// truncateToWidth cuts s to at most visible width w, preserving markup.
func truncateToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if visibleWidth(s) <= w {
		return s
	}
	return xansi.Cut(s, 0, w)
}

// cell truncates then pads, yielding exactly width w.
func cell(s string, w int) string {
	return padToWidth(truncateToWidth(s, w), w)
}
