package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/types"
)

// DefaultBaselineFile is where reviewed findings are recorded.
const DefaultBaselineFile = "installguard.baseline.json"

// Baseline is a set of findings a reviewer has already accepted.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(f, &b); err != nil {
		return Baseline{Items: map[string]bool{}}, fmt.Errorf("parse baseline %s: %w", path, err)
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

// SaveBaseline merges every finding of r for script into the file at path.
func SaveBaseline(path, script string, r *engine.Result) error {
	b, err := LoadBaseline(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, f := range r.All() {
		b.Items[findingKey(script, f)] = true
	}
	for _, k := range r.Keywords {
		b.Items[keywordKey(script, k)] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// FilterNew returns a copy of r without the findings already in base. The
// verdict of the copy reflects only what is new.
func FilterNew(r *engine.Result, base Baseline, script string) *engine.Result {
	out := &engine.Result{Lines: r.Lines}
	keep := func(fs []types.Finding) []types.Finding {
		var kept []types.Finding
		for _, f := range fs {
			if !base.Items[findingKey(script, f)] {
				kept = append(kept, f)
			}
		}
		return kept
	}
	out.High = keep(r.High)
	out.Medium = keep(r.Medium)
	out.Low = keep(r.Low)
	for _, k := range r.Keywords {
		if !base.Items[keywordKey(script, k)] {
			out.Keywords = append(out.Keywords, k)
		}
	}
	return out
}

func findingKey(script string, f types.Finding) string {
	return script + "|" + f.Rule + "|" + f.Content
}

func keywordKey(script string, k types.KeywordFinding) string {
	return script + "|keyword/" + k.Keyword + "|" + k.Content
}
