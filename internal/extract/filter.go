package extract

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter keeps paths matching any include pattern (all when include is
// empty) and drops paths matching any exclude pattern. Patterns use
// doublestar syntax, so "src/**/*.cs" crosses directories.
func Filter(files map[string]string, include, exclude []string) (map[string]string, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return files, nil
	}
	inc, err := normalizePatterns(include)
	if err != nil {
		return nil, err
	}
	exc, err := normalizePatterns(exclude)
	if err != nil {
		return nil, err
	}

	kept := make(map[string]string, len(files))
	for p, content := range files {
		if len(inc) > 0 && !matchAny(inc, p) {
			continue
		}
		if matchAny(exc, p) {
			continue
		}
		kept[p] = content
	}
	return kept, nil
}

func normalizePatterns(patterns []string) ([]string, error) {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern: %s", p)
		}
		out = append(out, p)
	}
	return out, nil
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}
