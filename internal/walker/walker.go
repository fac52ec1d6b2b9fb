package walker

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnoreFile is the project exclusion file read from the scan root.
const DefaultIgnoreFile = ".gitignore"

// Rule controls which entries a scan keeps.
type Rule struct {
	Include []string `json:"include" yaml:"include"` // File name suffixes to collect.
	Ignore  []string `json:"ignore" yaml:"ignore"`   // Path fragments to skip, directories included.
}

// ErrCycle is wrapped by a ScanError when a directory is reached again from
// inside itself, usually through a symlink.
var ErrCycle = errors.New("directory cycle")

// ScanError is returned when a directory cannot be read during a scan, or an
// entry cannot be resolved. The scan is abandoned and no partial result is
// returned.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("walker: scan %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Scan walks root depth-first and returns the paths of all files accepted by
// rule. Ignored entries are skipped before anything else, so an ignored
// directory is never descended into. When recursive is false directories are
// skipped, which turns Scan into a listing of the files directly under root.
//
// Ignore patterns are matched against paths relative to root. Returned paths
// are built with filepath.Join from root and keep the order of the directory
// listing.
func Scan(root string, rule Rule, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &ScanError{Path: root, Err: err}
	}

	s := &scanner{root: root, rule: rule, recursive: recursive}
	if err := s.scanDir(root, []fs.FileInfo{info}); err != nil {
		return nil, err
	}
	return s.files, nil
}

type scanner struct {
	root      string
	rule      Rule
	recursive bool
	files     []string
}

// scanDir lists dir. ancestors holds the resolved directories on the current
// descent path, dir included.
func (s *scanner) scanDir(dir string, ancestors []fs.FileInfo) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &ScanError{Path: dir, Err: err}
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if IsIgnored(RelPath(s.root, path), s.rule.Ignore) {
			continue
		}

		info, err := dirInfo(path, entry)
		if err != nil {
			return &ScanError{Path: path, Err: err}
		}

		if info != nil {
			if !s.recursive {
				continue
			}
			for _, seen := range ancestors {
				if os.SameFile(seen, info) {
					return &ScanError{Path: path, Err: ErrCycle}
				}
			}
			if err := s.scanDir(path, append(ancestors, info)); err != nil {
				return err
			}
			continue
		}

		if IsIncluded(path, s.rule.Include) {
			s.files = append(s.files, path)
		}
	}
	return nil
}

// dirInfo returns the directory's info when path is a directory, and nil for
// anything else. Symlinks are followed, so a link to a directory is walked
// like the directory itself. A dangling link counts as a file; any other
// failure to resolve a link is returned.
func dirInfo(path string, entry fs.DirEntry) (fs.FileInfo, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		if !entry.IsDir() {
			return nil, nil
		}
		return entry.Info()
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}
	return info, nil
}

// RelPath returns p relative to root, or p unchanged when it is not below
// root.
func RelPath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return rel
}

// LoadIgnoreFile reads an exclusion file and returns its non-empty,
// non-comment lines. A missing file yields no patterns and no error.
func LoadIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("walker: open ignore file: %w", err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("walker: read ignore file: %w", err)
	}
	return patterns, nil
}
