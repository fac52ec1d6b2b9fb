package project

import (
	"path"
	"path/filepath"
	"strings"
)

// Infer returns the project tags implied by the given file names, in the
// order they were first seen. Only the base name of each entry is looked up,
// and only exact marker names count. An empty result means no project type
// was detected.
func Infer(filenames []string) []Tag {
	var tags []Tag
	for _, f := range filenames {
		name := path.Base(filepath.ToSlash(f))
		tags = append(tags, markerTags[name]...)
	}
	return dedupTags(tags)
}

// Expand turns tags into an include list by concatenating each tag's
// patterns in tag order. Repeated patterns are kept only once; inclusion is a
// membership test so the result matches the same files either way.
func Expand(tags []Tag) []string {
	seen := make(map[string]bool)
	var include []string
	for _, t := range tags {
		for _, pattern := range tagFiles[t] {
			if seen[pattern] {
				continue
			}
			seen[pattern] = true
			include = append(include, pattern)
		}
	}
	return include
}

// Names joins the display names of tags, e.g. "Go, Python".
func Names(tags []Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name()
	}
	return strings.Join(names, ", ")
}

func dedupTags(tags []Tag) []Tag {
	seen := make(map[Tag]bool, len(tags))
	var out []Tag
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
