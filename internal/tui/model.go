package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cyberempirex/installguard/internal/about"
	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/report"
	"github.com/cyberempirex/installguard/internal/rules"
	"github.com/cyberempirex/installguard/internal/source"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	menuItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("232")).
				Background(lipgloss.Color("208")).
				Bold(true)

	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	paneBorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

type screen int

const (
	screenMenu screen = iota
	screenPath
	screenCommands
	screenReport
	screenAbout
)

// menu entries, in the order they are numbered on screen
var menuItems = []string{
	"Analyze Script File",
	"Quick Command Scan",
	"About",
	"Exit",
}

const (
	itemAnalyze = iota
	itemQuick
	itemAbout
	itemExit
)

// Options configures the interactive session.
type Options struct {
	Rules    *rules.RuleSet
	Report   report.Options
	Identity about.Identity
}

// Model is the state of the interactive menu.
type Model struct {
	opts  Options
	prefs Prefs

	screen   screen
	cursor   int
	input    textinput.Model
	viewport viewport.Model
	commands []string

	// last rendered analysis, kept so highlighting can be toggled and the
	// plain text copied
	doc *source.Document
	res *engine.Result

	plain    string
	errMsg   string
	status   string
	width    int
	height   int
	ready    bool
	quitting bool
}

type analysisMsg struct {
	doc *source.Document
	res *engine.Result
	err error
}

type statusMsg string

// NewModel initializes the menu model.
func NewModel(opts Options) Model {
	if opts.Rules == nil {
		opts.Rules = rules.Default()
	}
	if opts.Identity.Name == "" {
		opts.Identity = about.Default()
	}
	ti := textinput.New()
	ti.CharLimit = 4096
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	vp := viewport.New(80, 20)

	return Model{
		opts:     opts,
		prefs:    LoadPrefs(),
		input:    ti,
		viewport: vp,
		status:   "↑/↓ or 1-4: choose | enter: select | q: quit",
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = max(msg.Height-6, 3)
		m.input.Width = max(msg.Width-10, 20)
		m.ready = true
		return m, nil

	case analysisMsg:
		if msg.err != nil {
			if errors.Is(msg.err, engine.ErrNoCommands) {
				m.status = "No commands entered."
			} else {
				m.errMsg = "Error: " + msg.err.Error()
			}
			m.screen = screenMenu
			return m, nil
		}
		m.doc, m.res = msg.doc, msg.res
		m.showReport()
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenPath:
			return m.updatePath(msg)
		case screenCommands:
			return m.updateCommands(msg)
		case screenReport, screenAbout:
			return m.updatePager(msg)
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.choose(m.cursor)
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] < '1'+byte(len(menuItems)) {
		m.cursor = int(s[0] - '1')
		return m.choose(m.cursor)
	}
	m.errMsg = "Invalid option! Please try again."
	return m, nil
}

func (m Model) choose(item int) (tea.Model, tea.Cmd) {
	m.status = ""
	switch item {
	case itemAnalyze:
		m.screen = screenPath
		m.input.Reset()
		m.input.Prompt = "Enter script path: "
		m.input.Placeholder = "./install.sh"
		m.input.Focus()
		return m, nil
	case itemQuick:
		m.screen = screenCommands
		m.commands = nil
		m.input.Reset()
		m.input.Prompt = "> "
		m.input.Placeholder = "type DONE on a new line to finish"
		m.input.Focus()
		return m, nil
	case itemAbout:
		var b strings.Builder
		_ = m.opts.Identity.Render(&b, m.opts.Report.NoColor)
		m.plain = plainAbout(m.opts.Identity)
		m.viewport.SetContent(b.String())
		m.viewport.GotoTop()
		m.screen = screenAbout
		m.status = "esc/q: back | c: copy"
		return m, nil
	default:
		m.quitting = true
		return m, tea.Quit
	}
}

func (m Model) updatePath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		if path == "" {
			m.screen = screenMenu
			m.errMsg = "Error: no path entered"
			return m, nil
		}
		return m, m.analyzeFile(path)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateCommands(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if strings.EqualFold(line, source.DoneSentinel) {
			m.input.Blur()
			return m, m.analyzeCommands(m.commands)
		}
		if line != "" {
			m.commands = append(m.commands, line)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updatePager(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.screen = screenMenu
		m.status = ""
		return m, nil
	case "c":
		return m, m.copyReport()
	case "h":
		if m.screen == screenReport {
			m.prefs.Highlight = !m.prefs.Highlight
			m.showReport()
			_ = SavePrefs(m.prefs)
			if m.prefs.Highlight {
				m.status = "Highlighting on"
			} else {
				m.status = "Highlighting off"
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// showReport renders the current analysis into the viewport.
func (m *Model) showReport() {
	opts := m.opts.Report
	opts.Source = m.doc
	opts.Highlight = opts.Highlight || m.prefs.Highlight

	var styled strings.Builder
	_ = report.PrintText(&styled, m.res, opts)

	plainOpts := opts
	plainOpts.NoColor = true
	plainOpts.Highlight = false
	var plain strings.Builder
	_ = report.PrintText(&plain, m.res, plainOpts)

	m.plain = plain.String()
	m.viewport.SetContent(styled.String())
	m.viewport.GotoTop()
	m.screen = screenReport
	m.status = "↑/↓: scroll | c: copy | h: highlight | esc/q: back"
}

func (m Model) View() string {
	if m.quitting {
		return fmt.Sprintf("Thank you for using %s!\nStay secure!\n", m.opts.Identity.Name)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.opts.Identity.Banner()))
	b.WriteString("\n")

	switch m.screen {
	case screenMenu:
		b.WriteString(titleStyle.Render("MAIN MENU"))
		b.WriteString("\n")
		for i, item := range menuItems {
			label := item
			if i == itemAbout {
				label = "About " + m.opts.Identity.Name
			}
			line := fmt.Sprintf("%s %s", numberStyle.Render(fmt.Sprintf("%d.", i+1)), label)
			if i == m.cursor {
				line = menuSelectedStyle.Render(fmt.Sprintf("%d. %s", i+1, label))
			} else {
				line = menuItemStyle.Render(line)
			}
			b.WriteString("  " + line + "\n")
		}
	case screenPath:
		b.WriteString(titleStyle.Render("SCRIPT ANALYSIS"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case screenCommands:
		b.WriteString(titleStyle.Render("QUICK COMMAND SCAN"))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Enter commands to analyze (type 'DONE' on new line to finish):"))
		b.WriteString("\n")
		for _, c := range m.commands {
			b.WriteString("> " + c + "\n")
		}
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case screenReport, screenAbout:
		b.WriteString(paneBorderStyle.Render(m.viewport.View()))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

func plainAbout(id about.Identity) string {
	var b strings.Builder
	_ = id.Render(&b, true)
	return b.String()
}
