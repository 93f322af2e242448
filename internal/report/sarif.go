package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cyberempirex/installguard/internal/about"
	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/source"
	"github.com/cyberempirex/installguard/internal/types"
)

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool      `json:"tool"`
	Results    []sarifResult  `json:"results"`
	Properties map[string]any `json:"properties,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
	DefaultConfig    sarifConfig  `json:"defaultConfiguration"`
}

type sarifConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	RuleIndex int          `json:"ruleIndex"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int          `json:"startLine"`
	Snippet   sarifMessage `json:"snippet"`
}

func tierToLevel(t types.Tier) string {
	switch t {
	case types.TierHigh:
		return "error"
	case types.TierMedium:
		return "warning"
	default:
		return "note"
	}
}

// WriteSARIF writes the result as SARIF 2.1.0. Keyword occurrences become
// results of "keyword/<word>" rules at note level.
func WriteSARIF(w io.Writer, r *engine.Result, opts Options) error {
	return writeSARIF(w, []sarifRun{buildRun(r, opts.Source)})
}

// WriteSARIFMany writes one run per analysis in a single document.
func WriteSARIFMany(w io.Writer, as []Analysis) error {
	runs := make([]sarifRun, 0, len(as))
	for _, a := range as {
		runs = append(runs, buildRun(a.Result, a.Source))
	}
	return writeSARIF(w, runs)
}

func writeSARIF(w io.Writer, runs []sarifRun) error {
	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    runs,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func buildRun(r *engine.Result, doc *source.Document) sarifRun {
	if r == nil {
		r = &engine.Result{}
	}
	id := about.Default()
	uri := "stdin"
	if doc != nil && doc.Path != "" {
		uri = doc.Path
	}

	run := sarifRun{
		Tool:    sarifTool{Driver: sarifDriver{Name: id.Name, Version: id.Version, InformationURI: id.GitHub}},
		Results: []sarifResult{},
		Properties: map[string]any{
			"verdict": engine.Evaluate(r).String(),
			"lines":   r.Lines,
		},
	}
	index := map[string]int{}
	ruleIndex := func(ruleID, desc, level string) int {
		if i, ok := index[ruleID]; ok {
			return i
		}
		index[ruleID] = len(run.Tool.Driver.Rules)
		run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
			ID:               ruleID,
			ShortDescription: sarifMessage{Text: desc},
			DefaultConfig:    sarifConfig{Level: level},
		})
		return index[ruleID]
	}
	result := func(ruleID, level, msg string, line int, snippet string) sarifResult {
		return sarifResult{
			RuleID:  ruleID,
			Level:   level,
			Message: sarifMessage{Text: msg},
			Locations: []sarifLoc{{PhysicalLocation: sarifPhys{
				ArtifactLocation: sarifArt{URI: uri},
				Region:           sarifRegion{StartLine: line, Snippet: sarifMessage{Text: snippet}},
			}}},
		}
	}

	for _, f := range r.All() {
		level := tierToLevel(f.Tier)
		res := result(f.Rule, level, fmt.Sprintf("%s risk command (%s)", f.Tier, f.Rule), f.Line, f.Content)
		res.RuleIndex = ruleIndex(f.Rule, fmt.Sprintf("%s risk pattern %s", f.Tier, f.Rule), level)
		run.Results = append(run.Results, res)
	}
	for _, k := range r.Keywords {
		ruleID := "keyword/" + k.Keyword
		res := result(ruleID, "note", fmt.Sprintf("suspicious keyword '%s'", k.Keyword), k.Line, k.Content)
		res.RuleIndex = ruleIndex(ruleID, "suspicious keyword "+k.Keyword, "note")
		run.Results = append(run.Results, res)
	}
	if run.Tool.Driver.Rules == nil {
		run.Tool.Driver.Rules = []sarifRule{}
	}
	return run
}
