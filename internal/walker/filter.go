package walker

import (
	"path"
	"path/filepath"
	"strings"
)

// IncludeAll is the include list that matches every file. It is only meant
// for dry scans, where the caller wants to enumerate candidates.
var IncludeAll = []string{""}

// NormalizePattern trims whitespace and strips a leading "./" or "/" from a
// pattern. The result is stable: normalizing it again returns it unchanged.
func NormalizePattern(pattern string) string {
	for {
		next := strings.TrimSpace(pattern)
		next = strings.TrimPrefix(next, "./")
		next = strings.TrimPrefix(next, "/")
		if next == pattern {
			return next
		}
		pattern = next
	}
}

// CleanPatterns normalizes every pattern and drops the ones that end up empty.
// User supplied lists go through here so that a blank line never turns into
// a match-everything pattern.
func CleanPatterns(patterns []string) []string {
	var out []string
	for _, p := range patterns {
		if p = NormalizePattern(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsIgnored reports whether path should be skipped. Scan passes paths relative
// to its root. A pattern matches when it is a substring of the path or of its
// final component. Matching is not
// anchored to path segments, so "target" also matches "targetless.rs".
func IsIgnored(p string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	normalized := filepath.ToSlash(p)
	base := path.Base(normalized)

	for _, pattern := range patterns {
		pattern = NormalizePattern(pattern)
		// An empty pattern would be a substring of everything.
		if pattern == "" {
			continue
		}
		if strings.Contains(normalized, pattern) || strings.Contains(base, pattern) {
			return true
		}
	}
	return false
}

// IsIncluded reports whether the file name at path ends with any include
// pattern. Patterns are usually extensions (".rs") or exact file names
// ("Cargo.toml"). An empty list includes nothing; IncludeAll includes
// everything.
func IsIncluded(p string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	base := path.Base(filepath.ToSlash(p))
	for _, pattern := range patterns {
		if strings.HasSuffix(base, NormalizePattern(pattern)) {
			return true
		}
	}
	return false
}
