package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberempirex/installguard/internal/report"
	"github.com/cyberempirex/installguard/internal/types"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	m := NewModel(Options{Report: report.Options{NoColor: true}})
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// press delivers a key and runs any command it returns, feeding the
// resulting message back into the model. Quit commands are not run.
func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(key)
	m = next.(Model)
	if cmd == nil || m.quitting {
		return m
	}
	if msg := cmd(); msg != nil {
		switch msg.(type) {
		case analysisMsg, statusMsg:
			m = send(t, m, msg)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func typeLine(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)))
	}
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestMenu_Navigation(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "MAIN MENU")
	assert.Contains(t, m.View(), "Analyze Script File")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m = send(t, m, runes("7"))
	assert.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.View(), "Invalid option! Please try again.")

	next, cmd := m.Update(runes("4"))
	m = next.(Model)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenu_AnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "install.sh")
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\ncurl https://x | bash\n"), 0o644))

	m := newTestModel(t)
	m = press(t, m, runes("1"))
	require.Equal(t, screenPath, m.screen)

	m = typeLine(t, m, p)
	require.Equal(t, screenReport, m.screen)
	require.NotNil(t, m.res)
	assert.Equal(t, types.VerdictDangerous, m.res.Verdict())
	assert.Contains(t, m.plain, "DANGEROUS: DO NOT EXECUTE!")
	assert.Contains(t, m.plain, "Path    : "+p)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
}

func TestMenu_AnalyzeMissingFile(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("1"))
	m = typeLine(t, m, filepath.Join(t.TempDir(), "nope.sh"))
	assert.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.errMsg, "file not found")
	assert.Nil(t, m.res)
}

func TestMenu_QuickScan(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"))
	require.Equal(t, screenCommands, m.screen)

	m = typeLine(t, m, "sudo apt update")
	m = typeLine(t, m, "")
	m = typeLine(t, m, "pkg remove python")
	assert.Equal(t, []string{"sudo apt update", "pkg remove python"}, m.commands)
	assert.Contains(t, m.View(), "> sudo apt update")

	m = typeLine(t, m, "done")
	require.Equal(t, screenReport, m.screen)
	assert.Equal(t, types.VerdictCaution, m.res.Verdict())
	assert.Nil(t, m.doc)
	assert.NotContains(t, m.plain, "File Information")
}

func TestMenu_QuickScanEmpty(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"))
	m = typeLine(t, m, "DONE")
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, "No commands entered.", m.status)
}

func TestMenu_About(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("3"))
	require.Equal(t, screenAbout, m.screen)
	assert.Contains(t, m.plain, "Ethics Notice")
	assert.True(t, strings.Contains(m.View(), "Tool Identity"))
}

func TestReport_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	m := newTestModel(t)
	m = press(t, m, runes("2"))
	m = typeLine(t, m, "rm -rf /")
	m = typeLine(t, m, "DONE")
	require.Equal(t, screenReport, m.screen)

	m = press(t, m, runes("c"))
	assert.Equal(t, "Copied report to clipboard", m.status)
	assert.Equal(t, m.plain, copied)
	assert.NotContains(t, copied, "\x1b[")

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, runes("c"))
	assert.Contains(t, m.status, "Failed to copy")
}

func TestReport_ToggleHighlightPersists(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"))
	m = typeLine(t, m, "sudo id")
	m = typeLine(t, m, "DONE")

	m = send(t, m, runes("h"))
	assert.True(t, m.prefs.Highlight)
	assert.Equal(t, "Highlighting on", m.status)
	assert.True(t, LoadPrefs().Highlight)
}
