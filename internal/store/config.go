package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const configFileName = "config.json"

// GlobalConfig holds user preferences persisted next to the database.
type GlobalConfig struct {
	// TUI holds optional preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme forces the palette: "light", "dark" or "" (auto-detect).
	Theme string `json:"theme,omitempty"`
	// NextFieldKey/PrevFieldKey override the form focus-navigation keys.
	// Values use bubbletea key names (e.g. "tab", "shift+tab", "ctrl+n").
	NextFieldKey string `json:"nextFieldKey,omitempty"`
	PrevFieldKey string `json:"prevFieldKey,omitempty"`
}

// FormNextKey returns the configured next-field key, defaulting to tab.
func (c GlobalConfig) FormNextKey() string {
	if c.TUI != nil && strings.TrimSpace(c.TUI.NextFieldKey) != "" {
		return strings.TrimSpace(c.TUI.NextFieldKey)
	}
	return "tab"
}

// FormPrevKey returns the configured previous-field key, defaulting to shift+tab.
func (c GlobalConfig) FormPrevKey() string {
	if c.TUI != nil && strings.TrimSpace(c.TUI.PrevFieldKey) != "" {
		return strings.TrimSpace(c.TUI.PrevFieldKey)
	}
	return "shift+tab"
}

func (s Store) configPath() string {
	return filepath.Join(s.Dir, configFileName)
}

// LoadConfig reads config.json; a missing file yields the zero config.
func (s Store) LoadConfig() (GlobalConfig, error) {
	var cfg GlobalConfig
	b, err := os.ReadFile(s.configPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

func (s Store) SaveConfig(cfg GlobalConfig) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.configPath(), append(b, '\n'), 0o644)
}
