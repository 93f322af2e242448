package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/types"
)

// PrintTable lists every finding in a bordered table, tier findings first
// and then keyword occurrences, followed by the verdict.
func PrintTable(w io.Writer, r *engine.Result, opts Options) error {
	if r == nil {
		r = &engine.Result{}
	}
	if opts.Source != nil {
		fmt.Fprintf(w, "%s (%d lines, sha256 %s)\n", opts.Source.Path, opts.Source.LineCount(), opts.Source.ShortHash())
	}
	if len(r.All()) == 0 && r.KeywordCount() == 0 {
		fmt.Fprintln(w, "No risky patterns found ✅")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("TIER", "LINE", "RULE", "CONTENT")
		for _, f := range r.All() {
			tier := f.Tier.String()
			if !opts.NoColor {
				tier = colorTier(f.Tier)
			}
			if err := table.Append([]string{tier, strconv.Itoa(f.Line), f.Rule, f.Content}); err != nil {
				return err
			}
		}
		for _, k := range r.Keywords {
			if err := table.Append([]string{"keyword", strconv.Itoa(k.Line), k.Keyword, k.Content}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	title, _ := Headline(r)
	fmt.Fprintf(w, "\nFindings: %d (high: %d, medium: %d, low: %d, keywords: %d)\n",
		len(r.All())+r.KeywordCount(), r.Count(types.TierHigh), r.Count(types.TierMedium), r.Count(types.TierLow), r.KeywordCount())
	fmt.Fprintf(w, "Verdict: %s\n", title)
	return nil
}

func colorTier(t types.Tier) string {
	switch t {
	case types.TierHigh:
		return "\x1b[31mhigh\x1b[0m" // red
	case types.TierMedium:
		return "\x1b[33mmedium\x1b[0m" // yellow
	default:
		return "\x1b[36mlow\x1b[0m" // cyan
	}
}
