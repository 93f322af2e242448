package engine

import "github.com/cyberempirex/installguard/internal/types"

// Evaluate maps finding counts to a verdict. The first matching condition
// wins: any HIGH finding is DANGEROUS, then MEDIUM is CAUTION, then LOW or
// any keyword is WARNING. A nil or empty result is CLEAN.
func Evaluate(r *Result) types.Verdict {
	switch {
	case r == nil:
		return types.VerdictClean
	case r.Count(types.TierHigh) > 0:
		return types.VerdictDangerous
	case r.Count(types.TierMedium) > 0:
		return types.VerdictCaution
	case r.Count(types.TierLow) > 0 || r.KeywordCount() > 0:
		return types.VerdictWarning
	default:
		return types.VerdictClean
	}
}
