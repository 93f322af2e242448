package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cyberempirex/installguard/internal/types"
)

// Rule is a single pattern detector belonging to exactly one tier.
type Rule struct {
	ID          string
	Tier        types.Tier
	Description string
	// Pattern is matched case-insensitively; do not add a (?i) flag.
	Pattern string

	re *regexp.Regexp
}

// MatchString reports whether the compiled pattern matches line.
func (r Rule) MatchString(line string) bool {
	return r.re != nil && r.re.MatchString(line)
}

// RuleSet is the immutable, validated rule configuration. Tiers iterate in
// severity order and rules keep their declaration order within a tier.
type RuleSet struct {
	tiers    [3][]Rule
	keywords []string
	byID     map[string]Rule
}

// New compiles and validates rules and keywords. Any malformed entry is a
// configuration fault and is reported here, never at match time.
func New(rules []Rule, keywords []string) (*RuleSet, error) {
	rs := &RuleSet{byID: make(map[string]Rule, len(rules))}
	var errs []error
	for i, r := range rules {
		if strings.TrimSpace(r.ID) == "" {
			errs = append(errs, fmt.Errorf("rule #%d: empty id", i))
			continue
		}
		if _, dup := rs.byID[r.ID]; dup {
			errs = append(errs, fmt.Errorf("rule %s: duplicate id", r.ID))
			continue
		}
		if !r.Tier.Valid() {
			errs = append(errs, fmt.Errorf("rule %s: invalid tier %d", r.ID, int(r.Tier)))
			continue
		}
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %s: %w", r.ID, err))
			continue
		}
		r.re = re
		rs.tiers[r.Tier] = append(rs.tiers[r.Tier], r)
		rs.byID[r.ID] = r
	}
	seen := map[string]bool{}
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			errs = append(errs, errors.New("empty keyword"))
			continue
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		rs.keywords = append(rs.keywords, k)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid rule set: %w", errors.Join(errs...))
	}
	return rs, nil
}

// Rules returns the ordered rules of one tier.
func (rs *RuleSet) Rules(t types.Tier) []Rule {
	if !t.Valid() {
		return nil
	}
	return append([]Rule(nil), rs.tiers[t]...)
}

// All returns every rule, tiers in severity order.
func (rs *RuleSet) All() []Rule {
	var out []Rule
	for _, t := range types.Tiers() {
		out = append(out, rs.tiers[t]...)
	}
	return out
}

// Keywords returns the keyword list in declaration order.
func (rs *RuleSet) Keywords() []string {
	return append([]string(nil), rs.keywords...)
}

// IDs returns rule IDs in tier then declaration order.
func (rs *RuleSet) IDs() []string {
	var ids []string
	for _, r := range rs.All() {
		ids = append(ids, r.ID)
	}
	return ids
}

func (rs *RuleSet) Lookup(id string) (Rule, bool) {
	r, ok := rs.byID[id]
	return r, ok
}

// Len is the number of pattern rules, keywords excluded.
func (rs *RuleSet) Len() int { return len(rs.byID) }

// Without returns a copy of the set with the named rule IDs and keywords
// removed. Unknown names are ignored.
func (rs *RuleSet) Without(names ...string) *RuleSet {
	drop := map[string]bool{}
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			drop[n] = true
			drop[strings.ToLower(n)] = true
		}
	}
	out := &RuleSet{byID: map[string]Rule{}}
	for _, t := range types.Tiers() {
		for _, r := range rs.tiers[t] {
			if drop[r.ID] {
				continue
			}
			out.tiers[t] = append(out.tiers[t], r)
			out.byID[r.ID] = r
		}
	}
	for _, k := range rs.keywords {
		if !drop[k] {
			out.keywords = append(out.keywords, k)
		}
	}
	return out
}

// Only returns a set holding just the named rule, or just the named keyword
// when no rule carries that ID. ok is false when neither exists.
func (rs *RuleSet) Only(name string) (*RuleSet, bool) {
	out := &RuleSet{byID: map[string]Rule{}}
	if r, ok := rs.byID[name]; ok {
		out.tiers[r.Tier] = []Rule{r}
		out.byID[r.ID] = r
		return out, true
	}
	lower := strings.ToLower(name)
	for _, k := range rs.keywords {
		if k == lower {
			out.keywords = []string{k}
			return out, true
		}
	}
	return nil, false
}
