package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/types"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

func verdictStyle(v types.Verdict) lipgloss.Style {
	switch v {
	case types.VerdictDangerous:
		return highStyle.Bold(true)
	case types.VerdictCaution, types.VerdictWarning:
		return warnStyle.Bold(true)
	default:
		return okStyle.Bold(true)
	}
}

func tierStyle(t types.Tier) lipgloss.Style {
	if t == types.TierHigh {
		return highStyle
	}
	return warnStyle
}

type printer struct {
	b       strings.Builder
	noColor bool
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if p.noColor {
		return text
	}
	return s.Render(text)
}

func (p *printer) heading(title string) {
	fmt.Fprintf(&p.b, "\n%s\n%s\n", p.style(headingStyle, title), p.style(ruleStyle, strings.Repeat("─", 45)))
}

func (p *printer) field(label, value string) {
	fmt.Fprintf(&p.b, "%s %s\n", p.style(labelStyle, label), value)
}

// PrintText writes the human report: file information, risk assessment,
// verdict, sample findings and the distinct keywords.
func PrintText(w io.Writer, r *engine.Result, opts Options) error {
	if r == nil {
		r = &engine.Result{}
	}
	p := &printer{noColor: opts.NoColor}

	if doc := opts.Source; doc != nil {
		p.heading("File Information")
		path := doc.Path
		if doc.Rev != "" {
			path = doc.Rev + ":" + path
		}
		p.field("Path    :", path)
		p.field("Size    :", fmt.Sprintf("%d bytes", doc.Size))
		p.field("Lines   :", fmt.Sprintf("%d", doc.LineCount()))
		p.field("Hash    :", doc.ShortHash())
	}

	p.heading("Risk Assessment")
	for _, t := range types.Tiers() {
		n := r.Count(t)
		line := fmt.Sprintf("%-12s : %d patterns", tierLabel(t), n)
		if n > 0 {
			fmt.Fprintln(&p.b, p.style(tierStyle(t), line))
		} else {
			fmt.Fprintln(&p.b, p.style(okStyle, line))
		}
	}
	kw := fmt.Sprintf("%-12s : %d keywords", "Suspicious", r.KeywordCount())
	if r.KeywordCount() > 0 {
		fmt.Fprintln(&p.b, p.style(keywordStyle, kw))
	} else {
		fmt.Fprintln(&p.b, p.style(okStyle, kw))
	}

	v := engine.Evaluate(r)
	title, detail := Headline(r)
	p.heading("Overall Verdict")
	fmt.Fprintln(&p.b, p.style(verdictStyle(v), title))
	fmt.Fprintln(&p.b, p.style(verdictStyle(v).UnsetBold(), detail))

	unique := UniqueKeywords(r)
	if len(r.All()) > 0 || len(unique) > 0 {
		p.heading("Sample Findings")
		lexName := ""
		if opts.Source != nil {
			lexName = opts.Source.Path
		}
		for _, t := range types.Tiers() {
			fs := r.Findings(t)
			if len(fs) == 0 {
				continue
			}
			fmt.Fprintf(&p.b, "\n%s\n", p.style(tierStyle(t), tierLabel(t)+" Examples:"))
			for _, f := range Samples(fs, opts.samples()) {
				content := f.Content
				if opts.Highlight && !opts.NoColor {
					content = highlightLine(content, lexName)
				}
				fmt.Fprintf(&p.b, "  Line %d: %s  %s\n", f.Line, content, p.style(ruleStyle, "["+f.Rule+"]"))
			}
			if extra := len(fs) - opts.samples(); extra > 0 {
				fmt.Fprintf(&p.b, "  ... and %d more\n", extra)
			}
		}
		if len(unique) > 0 {
			fmt.Fprintf(&p.b, "\n%s\n", p.style(keywordStyle, "Suspicious Keywords Found:"))
			for _, k := range unique {
				fmt.Fprintf(&p.b, "  '%s' found in script\n", k)
			}
		}
	}
	_, err := io.WriteString(w, p.b.String())
	return err
}

// highlightLine colours one shell line for a 256-colour terminal. Previews
// are shell by nature, so the bash lexer is used unless the file name maps
// to something more specific.
func highlightLine(line, filename string) string {
	var lexer chroma.Lexer
	if filename != "" {
		lexer = lexers.Match(filepath.Base(filename))
	}
	if lexer == nil {
		lexer = lexers.Get("bash")
	}
	if lexer == nil {
		return line
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return line
	}
	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return line
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
