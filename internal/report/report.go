// Package report renders engine results for people and machines. Nothing
// here changes what was found; deduplication and sampling are views over
// the complete result.
package report

import (
	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/source"
	"github.com/cyberempirex/installguard/internal/types"
)

// DefaultSamples is how many findings per tier the text report lists.
const DefaultSamples = 3

// Options controls every renderer. Source is nil for quick command scans.
type Options struct {
	NoColor   bool
	Highlight bool
	Samples   int
	Source    *source.Document
}

func (o Options) samples() int {
	if o.Samples <= 0 {
		return DefaultSamples
	}
	return o.Samples
}

// Analysis pairs a result with the document it came from.
type Analysis struct {
	Source *source.Document
	Result *engine.Result
}

// UniqueKeywords lists distinct keywords in order of first occurrence.
func UniqueKeywords(r *engine.Result) []string {
	if r == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, k := range r.Keywords {
		if !seen[k.Keyword] {
			seen[k.Keyword] = true
			out = append(out, k.Keyword)
		}
	}
	return out
}

// Samples returns at most the first n findings.
func Samples(findings []types.Finding, n int) []types.Finding {
	if n < 0 {
		n = 0
	}
	if len(findings) <= n {
		return findings
	}
	return findings[:n]
}

// Headline is the verdict title and the sentence explaining it.
func Headline(r *engine.Result) (title, detail string) {
	switch engine.Evaluate(r) {
	case types.VerdictDangerous:
		return "DANGEROUS: DO NOT EXECUTE!", "This script contains high-risk commands."
	case types.VerdictCaution:
		return "CAUTION: Review carefully", "Contains medium-risk commands."
	case types.VerdictWarning:
		if r.Count(types.TierLow) > 0 {
			return "WARNING: Some risks detected", "Contains low-risk patterns."
		}
		return "WARNING: Some risks detected", "Contains suspicious keywords."
	default:
		return "CLEAN: Seems safe", "No dangerous patterns detected."
	}
}

func tierLabel(t types.Tier) string {
	switch t {
	case types.TierHigh:
		return "High Risk"
	case types.TierMedium:
		return "Medium Risk"
	default:
		return "Low Risk"
	}
}
