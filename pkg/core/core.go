package core

import (
	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/rules"
	"github.com/cyberempirex/installguard/internal/source"
	"github.com/cyberempirex/installguard/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Result         = engine.Result
	Finding        = types.Finding
	KeywordFinding = types.KeywordFinding
	Tier           = types.Tier
	Verdict        = types.Verdict
)

const (
	High   = types.TierHigh
	Medium = types.TierMedium
	Low    = types.TierLow

	Clean     = types.VerdictClean
	Warning   = types.VerdictWarning
	Caution   = types.VerdictCaution
	Dangerous = types.VerdictDangerous
)

// ErrNoCommands is returned by AnalyzeCommands when every entry is blank.
var ErrNoCommands = engine.ErrNoCommands

// Analyze scans script text with the built-in rules.
func Analyze(text string) *Result {
	return engine.ScanText(rules.Default(), text)
}

// AnalyzeFile reads and scans a script. Read failures are returned before
// any analysis happens.
func AnalyzeFile(path string) (*Result, error) {
	doc, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return engine.Scan(rules.Default(), doc.Lines), nil
}

// AnalyzeCommands scans individual commands, numbered from 1 after blank
// entries are dropped.
func AnalyzeCommands(cmds []string) (*Result, error) {
	return engine.ScanCommands(rules.Default(), cmds)
}

// RuleIDs returns the built-in rule IDs in evaluation order.
func RuleIDs() []string { return rules.Default().IDs() }

// Keywords returns the built-in suspicious keywords.
func Keywords() []string { return rules.Default().Keywords() }
