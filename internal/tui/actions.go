package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/logging"
	"github.com/cyberempirex/installguard/internal/source"
)

// writeClipboard is swapped out in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

func (m Model) analyzeFile(path string) tea.Cmd {
	rs := m.opts.Rules
	return func() tea.Msg {
		doc, err := source.ReadFile(path)
		if err != nil {
			return analysisMsg{err: err}
		}
		logging.L().Debugw("menu analysis", "path", path)
		return analysisMsg{doc: doc, res: engine.Scan(rs, doc.Lines)}
	}
}

func (m Model) analyzeCommands(cmds []string) tea.Cmd {
	rs := m.opts.Rules
	cmds = append([]string(nil), cmds...)
	return func() tea.Msg {
		res, err := engine.ScanCommands(rs, cmds)
		if err != nil {
			return analysisMsg{err: err}
		}
		return analysisMsg{res: res}
	}
}

// copyReport copies the plain-text version of the current screen.
func (m Model) copyReport() tea.Cmd {
	text := m.plain
	return func() tea.Msg {
		if text == "" {
			return statusMsg("Nothing to copy")
		}
		if err := writeClipboard(text); err != nil {
			return statusMsg("Failed to copy: " + err.Error())
		}
		return statusMsg("Copied report to clipboard")
	}
}
