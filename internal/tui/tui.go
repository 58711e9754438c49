package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/store"
)

// Run starts the interactive session. The bubbletea program owns raw-mode
// acquisition and restores the original terminal state on every exit path,
// including panics and interrupt signals.
func Run(dir string) error {
	s := store.Store{Dir: dir}
	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}

	applyColorProfilePreference()
	theme := ""
	if cfg.TUI != nil {
		theme = cfg.TUI.Theme
	}
	applyThemePreference(theme)

	m, err := newAppModel(s, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
