package installguard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cyberempirex/installguard/internal/config"
	"github.com/cyberempirex/installguard/internal/logging"
	"github.com/cyberempirex/installguard/internal/report"
	"github.com/cyberempirex/installguard/internal/rules"
	"github.com/cyberempirex/installguard/internal/source"
)

// settings is the effective configuration after merging CLI > local > global.
type settings struct {
	format    string
	noColor   bool
	failOn    string
	disable   []string
	samples   int
	highlight bool
	baseline  string
	rules     *rules.RuleSet

	local, global config.FileConfig
}

var current settings

func prepare(cmd *cobra.Command, _ []string) error {
	if err := logging.Init(flagDebug); err != nil {
		return err
	}
	s, err := resolve(cmd)
	if err != nil {
		return err
	}
	current = s
	return nil
}

func loadConfigs() (local, global config.FileConfig, err error) {
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	} else if !errors.Is(err, config.ErrNoConfig) {
		return local, global, err
	}
	if c, err := config.LoadLocal("."); err == nil {
		local = c
	} else if !errors.Is(err, config.ErrNoConfig) {
		return local, global, err
	}
	return local, global, nil
}

func resolve(cmd *cobra.Command) (settings, error) {
	var s settings
	lcfg, gcfg, err := loadConfigs()
	if err != nil {
		return s, err
	}
	s.local, s.global = lcfg, gcfg

	format, err := flagFormat()
	if err != nil {
		return s, err
	}
	s.format = strings.ToLower(pickString(format, lcfg.Format, gcfg.Format))
	if s.format == "" {
		s.format = "text"
	}
	s.failOn = strings.ToLower(pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn))
	if err := report.ValidateFailOn(s.failOn); err != nil {
		return s, err
	}
	s.noColor = pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) || !isTerminal(cmd.OutOrStdout())
	s.samples = pickInt(flagSamples, lcfg.Samples, gcfg.Samples)
	if s.samples < 0 {
		return s, fmt.Errorf("--samples must not be negative, got %d", s.samples)
	}
	s.highlight = pickBool(flagHighlight, lcfg.Highlight, gcfg.Highlight)
	s.baseline = pickString("", lcfg.Baseline, gcfg.Baseline)
	s.disable = config.SplitList(pickString(flagDisable, lcfg.Disable, gcfg.Disable))
	s.rules = buildRules(s.disable)
	return s, nil
}

func flagFormat() (string, error) {
	var set []string
	if flagJSON {
		set = append(set, "json")
	}
	if flagSARIF {
		set = append(set, "sarif")
	}
	if flagTable {
		set = append(set, "table")
	}
	if len(set) > 1 {
		return "", fmt.Errorf("choose only one of --json, --sarif, --table")
	}
	if len(set) == 1 {
		return set[0], nil
	}
	return "", nil
}

func buildRules(disable []string) *rules.RuleSet {
	rs := rules.Default()
	for _, id := range disable {
		if _, ok := rs.Only(id); !ok {
			logging.L().Warnw("unknown rule or keyword in disable list", "id", id)
		}
	}
	if len(disable) == 0 {
		return rs
	}
	return rs.Without(disable...)
}

func (s settings) reportOptions(doc *source.Document) report.Options {
	return report.Options{
		NoColor:   s.noColor,
		Highlight: s.highlight,
		Samples:   s.samples,
		Source:    doc,
	}
}

// render writes the analyses in the selected format. Machine formats emit a
// single object for one analysis and an array (or multi-run SARIF) otherwise.
func render(w io.Writer, s settings, as []report.Analysis) error {
	switch s.format {
	case "json":
		if len(as) == 1 {
			return report.WriteJSON(w, as[0].Result, s.reportOptions(as[0].Source))
		}
		return report.WriteJSONMany(w, as)
	case "sarif":
		if len(as) == 1 {
			return report.WriteSARIF(w, as[0].Result, s.reportOptions(as[0].Source))
		}
		return report.WriteSARIFMany(w, as)
	case "table":
		for i, a := range as {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := report.PrintTable(w, a.Result, s.reportOptions(a.Source)); err != nil {
				return err
			}
		}
	default:
		for i, a := range as {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := report.PrintText(w, a.Result, s.reportOptions(a.Source)); err != nil {
				return err
			}
		}
	}
	return nil
}

// failure maps the worst verdict onto the exit policy.
func failure(s settings, as []report.Analysis) error {
	for _, a := range as {
		if report.ShouldFail(a.Result.Verdict(), s.failOn) {
			return exitError{code: 1}
		}
	}
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
