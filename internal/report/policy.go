package report

import (
	"fmt"
	"strings"

	"github.com/cyberempirex/installguard/internal/types"
)

// FailOnValues are the accepted --fail-on thresholds, strictest last.
var FailOnValues = []string{"dangerous", "caution", "warning", "never"}

// ValidateFailOn rejects unknown thresholds; empty means the default.
func ValidateFailOn(failOn string) error {
	if failOn == "" {
		return nil
	}
	for _, v := range FailOnValues {
		if strings.EqualFold(failOn, v) {
			return nil
		}
	}
	return fmt.Errorf("invalid --fail-on %q (want %s)", failOn, strings.Join(FailOnValues, "|"))
}

// ShouldFail reports whether v meets the failOn threshold. Unknown or empty
// thresholds behave like "dangerous".
func ShouldFail(v types.Verdict, failOn string) bool {
	var th types.Verdict
	switch strings.ToLower(failOn) {
	case "never":
		return false
	case "warning":
		th = types.VerdictWarning
	case "caution":
		th = types.VerdictCaution
	default:
		th = types.VerdictDangerous
	}
	return v >= th
}
