package tui

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cyberempirex/installguard/internal/logging"
)

// prefsFile under ~/.installguard holds menu settings only, never results.
const prefsFile = "tui_prefs.json"

// Prefs are the menu settings remembered between sessions.
type Prefs struct {
	// Highlight colours report previews as shell.
	Highlight bool `json:"highlight"`
}

func DefaultPrefs() Prefs { return Prefs{} }

func prefsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".installguard", prefsFile), nil
}

// LoadPrefs never fails: a missing or damaged file yields the defaults.
func LoadPrefs() Prefs {
	prefs := DefaultPrefs()
	path, err := prefsPath()
	if err != nil {
		return prefs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		logging.L().Debugw("ignoring unreadable menu prefs", "path", path, "err", err)
		return DefaultPrefs()
	}
	return prefs
}

// SavePrefs writes prefs owner-only, creating ~/.installguard when needed.
func SavePrefs(prefs Prefs) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
