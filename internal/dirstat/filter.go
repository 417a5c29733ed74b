package dirstat

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Filter decides which entries a walk considers. It is read-only once built.
type Filter struct {
	// IncludeHidden keeps entries whose name starts with a dot.
	IncludeHidden bool
	// Excludes are shell globs matched against file base names.
	Excludes []string
	// MaxDepth is the deepest directory whose files are processed (root=0).
	MaxDepth int
}

// NewFilter validates the exclusion globs and depth and returns a Filter.
// The fnmatch negation form "[!...]" is accepted and rewritten to "[^...]".
func NewFilter(includeHidden bool, excludes []string, maxDepth int) (Filter, error) {
	if maxDepth < 0 {
		return Filter{}, fmt.Errorf("depth cannot be negative: %d", maxDepth)
	}

	patterns := make([]string, 0, len(excludes))

	for _, p := range excludes {
		p = strings.Trim(strings.TrimSpace(p), "'\"")
		if p == "" {
			continue
		}

		p = strings.ReplaceAll(p, "[!", "[^")

		if _, err := filepath.Match(p, ""); err != nil {
			return Filter{}, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		patterns = append(patterns, p)
	}

	return Filter{
		IncludeHidden: includeHidden,
		Excludes:      patterns,
		MaxDepth:      maxDepth,
	}, nil
}

// hidden reports whether name should be skipped under the hidden rule.
func (f Filter) hidden(name string) bool {
	return !f.IncludeHidden && strings.HasPrefix(name, ".")
}

// excluded returns the first exclusion glob matching the base name, or "".
func (f Filter) excluded(name string) string {
	for _, p := range f.Excludes {
		if ok, _ := filepath.Match(p, name); ok {
			return p
		}
	}

	return ""
}
