package core

import (
	"encoding/json"
	"io"

	"github.com/cyberempirex/installguard/internal/report"
)

// MarshalResult writes the JSON report envelope for res.
func MarshalResult(w io.Writer, res *Result) error {
	return report.WriteJSON(w, res, report.Options{})
}

// Envelope is the decoded form of MarshalResult output.
type Envelope = report.Envelope

// UnmarshalResult decodes a JSON report, useful for ingestion tests.
func UnmarshalResult(r io.Reader) (Envelope, error) {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}
