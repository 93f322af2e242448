// Package about describes the tool itself. The record is read-only metadata
// for presentation; the analysis engine never consults it.
package about

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Version is overridden at build time with -ldflags "-X ...about.Version=...".
var Version = "2.0.1"

// Identity is the descriptive metadata shown by the about screen.
type Identity struct {
	Name      string
	Version   string
	Purpose   string
	Platform  string
	License   string
	Creator   string
	Focus     string
	Approach  string
	Website   string
	GitHub    string
	Community string
	Ethics    []string
}

// Default returns the identity of this build.
func Default() Identity {
	return Identity{
		Name:      "InstallGuard",
		Version:   Version,
		Purpose:   "Analyze install scripts before execution",
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		License:   "MIT",
		Creator:   "CyberEmpireX",
		Focus:     "Practical cybersecurity & research tools",
		Approach:  "Simple, offline-first, ethical",
		Website:   "https://cyberempirex.com",
		GitHub:    "https://github.com/cyberempirex",
		Community: "https://t.me/CyberEmpireXChat",
		Ethics: []string{
			"This tool is for educational and defensive use only.",
			"Use only on scripts and systems you own or trust.",
			"The author is not responsible for misuse.",
		},
	}
}

// Banner is the one-line title used by reports and the menu header.
func (id Identity) Banner() string {
	return fmt.Sprintf("%s v%s", id.Name, strings.TrimPrefix(id.Version, "v"))
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

type section struct {
	title string
	rows  [][2]string
}

// Render writes the about section. With noColor the output is plain text.
func (id Identity) Render(w io.Writer, noColor bool) error {
	style := func(s lipgloss.Style, text string) string {
		if noColor {
			return text
		}
		return s.Render(text)
	}
	sections := []section{
		{"Tool Identity", [][2]string{
			{"Tool", id.Name}, {"Version", id.Version}, {"Purpose", id.Purpose},
			{"Platform", id.Platform}, {"License", id.License},
		}},
		{"Creator Identity", [][2]string{
			{"Created by", id.Creator}, {"Focus", id.Focus}, {"Approach", id.Approach},
		}},
		{"Project Links", [][2]string{
			{"Website", id.Website}, {"GitHub", id.GitHub}, {"Community", id.Community},
		}},
	}

	var b strings.Builder
	fmt.Fprintln(&b, style(headingStyle, "ABOUT "+id.Banner()))
	for _, s := range sections {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, style(headingStyle, s.title))
		fmt.Fprintln(&b, style(ruleStyle, strings.Repeat("─", 45)))
		for _, r := range s.rows {
			fmt.Fprintf(&b, "%s %s\n", style(labelStyle, fmt.Sprintf("%-12s:", r[0])), r[1])
		}
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, style(headingStyle, "Ethics Notice"))
	fmt.Fprintln(&b, style(ruleStyle, strings.Repeat("─", 45)))
	for _, line := range id.Ethics {
		fmt.Fprintln(&b, style(noticeStyle, line))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
