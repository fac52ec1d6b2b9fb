// Package finder locates directories by name below a root, for picking the
// part of a repository to assemble.
package finder

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/reatler/internal/walker"
)

// Accelerator is an optional fast path for directory lookups. A result is
// only trusted when err is nil and the slice is non-empty.
type Accelerator interface {
	FindDirs(root, query string) ([]string, error)
}

// Finder looks up directories whose base name contains a query.
type Finder struct {
	accel Accelerator
	// Logf receives diagnostics about the accelerator. Nil discards them.
	Logf func(format string, args ...any)
}

// New returns a Finder that tries accel first. A nil accel always uses the
// built-in walk.
func New(accel Accelerator) *Finder {
	return &Finder{accel: accel}
}

// FindDirectories returns directories under root whose name contains query,
// case-insensitively. Glob characters in query are honoured. Directories
// matching any ignore pattern are left out, along with everything below them.
func (f *Finder) FindDirectories(root, query string, ignore []string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("finder: empty query")
	}

	if f.accel != nil {
		dirs, err := f.accel.FindDirs(root, query)
		switch {
		case err != nil:
			f.logf("finder: accelerator failed, walking instead: %v", err)
		default:
			dirs = filterIgnored(root, dirs, ignore)
			if len(dirs) > 0 {
				return dirs, nil
			}
			f.logf("finder: accelerator returned no directories, walking instead")
		}
	}

	return walkDirectories(root, query, ignore)
}

func (f *Finder) logf(format string, args ...any) {
	if f.Logf != nil {
		f.Logf(format, args...)
	}
}

// walkDirectories is the reference implementation. Unreadable entries are
// skipped rather than reported.
func walkDirectories(root, query string, ignore []string) ([]string, error) {
	pattern := "*" + strings.ToLower(query) + "*"
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("finder: invalid query %q", query)
	}

	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && walker.IsIgnored(walker.RelPath(root, path), ignore) {
			return filepath.SkipDir
		}

		if ok, _ := doublestar.Match(pattern, strings.ToLower(d.Name())); ok {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finder: walk %s: %w", root, err)
	}
	return dirs, nil
}

// filterIgnored drops accelerator results matching ignore. Patterns are
// matched below root, like the built-in walk does.
func filterIgnored(root string, dirs, ignore []string) []string {
	var out []string
	for _, d := range dirs {
		if d == "" || walker.IsIgnored(walker.RelPath(root, d), ignore) {
			continue
		}
		out = append(out, d)
	}
	return out
}
