package engine

import (
	"errors"
	"strings"

	"github.com/cyberempirex/installguard/internal/rules"
	"github.com/cyberempirex/installguard/internal/types"
)

// ErrNoCommands is returned by ScanCommands when nothing remains to analyze
// after trimming. It is a notice for the user, not a failure.
var ErrNoCommands = errors.New("no commands entered")

// Result holds every finding of one analysis run, grouped by category and in
// line order. It is owned by the caller and never shared between runs.
type Result struct {
	High     []types.Finding        `json:"high"`
	Medium   []types.Finding        `json:"medium"`
	Low      []types.Finding        `json:"low"`
	Keywords []types.KeywordFinding `json:"keywords"`
	// Lines is the number of lines examined, skipped ones included.
	Lines int `json:"lines"`
}

// Findings returns the findings recorded for tier t.
func (r *Result) Findings(t types.Tier) []types.Finding {
	switch t {
	case types.TierHigh:
		return r.High
	case types.TierMedium:
		return r.Medium
	case types.TierLow:
		return r.Low
	}
	return nil
}

// Count is the number of lines that matched at least one rule of tier t.
func (r *Result) Count(t types.Tier) int { return len(r.Findings(t)) }

// KeywordCount counts every keyword occurrence, duplicates included.
func (r *Result) KeywordCount() int { return len(r.Keywords) }

// All returns tier findings in severity order, then line order.
func (r *Result) All() []types.Finding {
	out := make([]types.Finding, 0, len(r.High)+len(r.Medium)+len(r.Low))
	out = append(out, r.High...)
	out = append(out, r.Medium...)
	return append(out, r.Low...)
}

// Verdict derives the overall judgment; it is recomputed on every call.
func (r *Result) Verdict() types.Verdict { return Evaluate(r) }

func (r *Result) add(c Classification) {
	for _, f := range c.Findings {
		switch f.Tier {
		case types.TierHigh:
			r.High = append(r.High, f)
		case types.TierMedium:
			r.Medium = append(r.Medium, f)
		case types.TierLow:
			r.Low = append(r.Low, f)
		}
	}
	r.Keywords = append(r.Keywords, c.Keywords...)
}

// Scan classifies lines in order, numbering them from 1.
func Scan(rs *rules.RuleSet, lines []string) *Result {
	res := &Result{Lines: len(lines)}
	for i, line := range lines {
		res.add(ClassifyLine(rs, i+1, line))
	}
	return res
}

// ScanText splits a script on newlines and scans every physical line.
func ScanText(rs *rules.RuleSet, text string) *Result {
	return Scan(rs, SplitLines(text))
}

// ScanCommands scans interactively entered commands. Blank entries are
// dropped before numbering; ErrNoCommands is returned if none remain.
func ScanCommands(rs *rules.RuleSet, cmds []string) (*Result, error) {
	kept := make([]string, 0, len(cmds))
	for _, c := range cmds {
		if c = strings.TrimSpace(c); c != "" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoCommands
	}
	return Scan(rs, kept), nil
}

// SplitLines splits on "\n" only; a trailing newline yields a final empty
// line, which is skipped during classification but still counted.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}
