package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyberempirex/installguard/internal/types"
)

func resultWith(high, med, low, kw int) *Result {
	r := &Result{}
	for i := 0; i < high; i++ {
		r.High = append(r.High, types.Finding{Line: i + 1, Tier: types.TierHigh})
	}
	for i := 0; i < med; i++ {
		r.Medium = append(r.Medium, types.Finding{Line: i + 1, Tier: types.TierMedium})
	}
	for i := 0; i < low; i++ {
		r.Low = append(r.Low, types.Finding{Line: i + 1, Tier: types.TierLow})
	}
	for i := 0; i < kw; i++ {
		r.Keywords = append(r.Keywords, types.KeywordFinding{Line: i + 1, Keyword: "rat"})
	}
	return r
}

func TestEvaluate_Precedence(t *testing.T) {
	tests := []struct {
		high, med, low, kw int
		want               types.Verdict
	}{
		{0, 0, 0, 0, types.VerdictClean},
		{0, 0, 0, 1, types.VerdictWarning},
		{0, 0, 2, 0, types.VerdictWarning},
		{0, 1, 0, 0, types.VerdictCaution},
		{0, 3, 5, 7, types.VerdictCaution},
		{1, 0, 0, 0, types.VerdictDangerous},
		{1, 4, 4, 4, types.VerdictDangerous},
	}
	for _, tt := range tests {
		got := Evaluate(resultWith(tt.high, tt.med, tt.low, tt.kw))
		assert.Equal(t, tt.want, got, "counts h=%d m=%d l=%d k=%d", tt.high, tt.med, tt.low, tt.kw)
	}
}

func TestEvaluate_NilIsClean(t *testing.T) {
	assert.Equal(t, types.VerdictClean, Evaluate(nil))
}

func TestVerdict_Ordering(t *testing.T) {
	assert.Less(t, types.VerdictClean, types.VerdictWarning)
	assert.Less(t, types.VerdictWarning, types.VerdictCaution)
	assert.Less(t, types.VerdictCaution, types.VerdictDangerous)
	assert.Equal(t, "do not execute", types.VerdictDangerous.Advice())
}
