package types

import (
	"fmt"
	"strings"
)

// Verdict is the overall risk judgment for one scan. Values are ordinal:
// a larger Verdict is a more severe one.
type Verdict int

const (
	VerdictClean Verdict = iota
	VerdictWarning
	VerdictCaution
	VerdictDangerous
)

var verdictNames = [...]string{"CLEAN", "WARNING", "CAUTION", "DANGEROUS"}

var verdictAdvice = [...]string{
	"no dangerous patterns detected",
	"some risk detected",
	"review carefully",
	"do not execute",
}

func (v Verdict) valid() bool { return v >= VerdictClean && v <= VerdictDangerous }

func (v Verdict) String() string {
	if !v.valid() {
		return fmt.Sprintf("verdict(%d)", int(v))
	}
	return verdictNames[v]
}

// Advice is the short recommendation shown next to the verdict.
func (v Verdict) Advice() string {
	if !v.valid() {
		return ""
	}
	return verdictAdvice[v]
}

func (v Verdict) MarshalText() ([]byte, error) {
	if !v.valid() {
		return nil, fmt.Errorf("invalid verdict %d", int(v))
	}
	return []byte(verdictNames[v]), nil
}

func (v *Verdict) UnmarshalText(b []byte) error {
	p, err := ParseVerdict(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseVerdict is case-insensitive.
func ParseVerdict(s string) (Verdict, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range verdictNames {
		if n == up {
			return Verdict(i), nil
		}
	}
	return 0, fmt.Errorf("unknown verdict %q", s)
}
