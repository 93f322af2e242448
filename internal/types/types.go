package types

import "fmt"

// Tier is a fixed severity bucket for command risk. Lower values are more
// severe so iterating from TierHigh upwards walks tiers in severity order.
type Tier int

const (
	TierHigh Tier = iota
	TierMedium
	TierLow
)

var tierNames = [...]string{"high", "medium", "low"}

// Tiers returns all tiers in fixed severity order.
func Tiers() []Tier { return []Tier{TierHigh, TierMedium, TierLow} }

// Valid reports whether t is one of the declared tiers.
func (t Tier) Valid() bool { return t >= TierHigh && t <= TierLow }

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// MarshalText encodes the tier as its lowercase name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(tierNames[t]), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTier converts "high", "medium" or "low" into a Tier.
func ParseTier(s string) (Tier, error) {
	for i, n := range tierNames {
		if n == s {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tier %q", s)
}

// Finding records the first rule of a tier that matched a line.
type Finding struct {
	Line    int    `json:"line"`
	Tier    Tier   `json:"tier"`
	Rule    string `json:"rule"`
	Content string `json:"content"`
}

// KeywordFinding records one suspicious keyword contained in a line. Every
// occurrence is kept; deduplication is a presentation concern.
type KeywordFinding struct {
	Line    int    `json:"line"`
	Keyword string `json:"keyword"`
	Content string `json:"content"`
}
