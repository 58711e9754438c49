package tui

// Navigation history is an explicit stack: goTo pushes the screen being left,
// goBack pops. Flows that jump straight to results (completing a filter
// selection, finishing a delete) use jumpTo, which clears the stack so no
// stale back-target survives.

func (m *appModel) goTo(s screen) {
	m.navStack = append(m.navStack, m.screen)
	m.screen = s
}

// goBack returns to the previously visited screen; with an empty stack it is a
// no-op.
func (m *appModel) goBack() {
	n := len(m.navStack)
	if n == 0 {
		return
	}
	m.screen = m.navStack[n-1]
	m.navStack = m.navStack[:n-1]
}

func (m *appModel) jumpTo(s screen) {
	m.navStack = m.navStack[:0]
	m.screen = s
}
