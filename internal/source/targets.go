package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandTargets resolves glob patterns (with ** support) to a sorted,
// de-duplicated list of regular files. Arguments without glob metacharacters
// are kept as given, even when missing, so the read error names them.
func ExpandTargets(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, pat := range patterns {
		if !hasMeta(pat) {
			add(pat)
			continue
		}
		pat = filepath.ToSlash(pat)
		base, rest := doublestar.SplitPattern(pat)
		if !doublestar.ValidatePattern(rest) {
			return nil, fmt.Errorf("invalid pattern %q", pat)
		}
		matches, err := doublestar.Glob(os.DirFS(base), rest, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pat, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(filepath.Join(filepath.FromSlash(base), filepath.FromSlash(m)))
		}
	}
	return out, nil
}

func hasMeta(p string) bool {
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
