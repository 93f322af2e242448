package report

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/cyberempirex/installguard/internal/about"
	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/source"
	"github.com/cyberempirex/installguard/internal/types"
)

// Counts mirrors the risk assessment block.
type Counts struct {
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Keywords int `json:"keywords"`
}

// SourceInfo describes the analyzed input without its content.
type SourceInfo struct {
	Kind   source.Kind `json:"kind"`
	Path   string      `json:"path,omitempty"`
	Rev    string      `json:"rev,omitempty"`
	Size   int64       `json:"size"`
	Lines  int         `json:"lines"`
	SHA256 string      `json:"sha256"`
}

// Envelope is the machine-readable form of one analysis.
type Envelope struct {
	ScanID         string                 `json:"scan_id"`
	Tool           string                 `json:"tool"`
	Version        string                 `json:"version"`
	Source         *SourceInfo            `json:"source,omitempty"`
	Verdict        types.Verdict          `json:"verdict"`
	Advice         string                 `json:"advice"`
	Counts         Counts                 `json:"counts"`
	Lines          int                    `json:"lines"`
	Findings       []types.Finding        `json:"findings"`
	Keywords       []types.KeywordFinding `json:"keywords"`
	UniqueKeywords []string               `json:"unique_keywords"`
}

// NewEnvelope builds the export record; every call gets a fresh scan ID.
func NewEnvelope(r *engine.Result, doc *source.Document) Envelope {
	if r == nil {
		r = &engine.Result{}
	}
	id := about.Default()
	v := engine.Evaluate(r)
	env := Envelope{
		ScanID:  uuid.New().String(),
		Tool:    id.Name,
		Version: id.Version,
		Verdict: v,
		Advice:  v.Advice(),
		Counts: Counts{
			High:     r.Count(types.TierHigh),
			Medium:   r.Count(types.TierMedium),
			Low:      r.Count(types.TierLow),
			Keywords: r.KeywordCount(),
		},
		Lines:          r.Lines,
		Findings:       r.All(),
		Keywords:       r.Keywords,
		UniqueKeywords: UniqueKeywords(r),
	}
	// no `null` in JSON
	if env.Keywords == nil {
		env.Keywords = []types.KeywordFinding{}
	}
	if env.UniqueKeywords == nil {
		env.UniqueKeywords = []string{}
	}
	if doc != nil {
		env.Source = &SourceInfo{
			Kind:   doc.Kind,
			Path:   doc.Path,
			Rev:    doc.Rev,
			Size:   doc.Size,
			Lines:  doc.LineCount(),
			SHA256: doc.SHA256,
		}
	}
	return env
}

// WriteJSON encodes the envelope with two-space indentation.
func WriteJSON(w io.Writer, r *engine.Result, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewEnvelope(r, opts.Source))
}

// WriteJSONMany encodes one envelope per analysis as a JSON array.
func WriteJSONMany(w io.Writer, as []Analysis) error {
	envs := make([]Envelope, 0, len(as))
	for _, a := range as {
		envs = append(envs, NewEnvelope(a.Result, a.Source))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(envs)
}
