package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/cyberempirex/installguard/internal/rules"
	"github.com/cyberempirex/installguard/internal/types"
)

const (
	// PreviewLimit bounds tier finding previews, in characters.
	PreviewLimit = 80
	// KeywordPreviewLimit bounds keyword finding previews, in characters.
	KeywordPreviewLimit = 60
	// TruncationMarker is appended to previews of longer lines.
	TruncationMarker = "..."
)

// Classification is everything one line produced: at most one finding per
// tier and one keyword finding per distinct keyword contained in the line.
type Classification struct {
	Findings []types.Finding
	Keywords []types.KeywordFinding
}

// Empty reports whether the line produced nothing.
func (c Classification) Empty() bool {
	return len(c.Findings) == 0 && len(c.Keywords) == 0
}

// Skipped reports whether a line is ignored entirely: blank or a comment.
func Skipped(line string) bool {
	t := strings.TrimSpace(line)
	return t == "" || strings.HasPrefix(t, "#")
}

// ClassifyLine tests one physical line. Continuation lines are not joined;
// every line is judged on its own text.
func ClassifyLine(rs *rules.RuleSet, lineNo int, line string) Classification {
	var c Classification
	line = strings.TrimSpace(line)
	if Skipped(line) {
		return c
	}
	for _, tier := range types.Tiers() {
		for _, r := range rs.Rules(tier) {
			if r.MatchString(line) {
				c.Findings = append(c.Findings, types.Finding{
					Line:    lineNo,
					Tier:    tier,
					Rule:    r.ID,
					Content: Preview(line, PreviewLimit),
				})
				break
			}
		}
	}
	lower := strings.ToLower(line)
	for _, k := range rs.Keywords() {
		if strings.Contains(lower, k) {
			c.Keywords = append(c.Keywords, types.KeywordFinding{
				Line:    lineNo,
				Keyword: k,
				Content: Preview(line, KeywordPreviewLimit),
			})
		}
	}
	return c
}

// Preview returns the first limit characters of line, followed by
// TruncationMarker when anything was cut. Cuts never split a rune.
func Preview(line string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(line) <= limit {
		return line
	}
	n := 0
	for i := range line {
		if n == limit {
			return line[:i] + TruncationMarker
		}
		n++
	}
	return line
}
