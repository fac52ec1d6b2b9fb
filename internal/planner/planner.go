// Package planner decides which files of a directory tree end up in the
// assembled output. It either infers an include list from the project's
// marker files or takes one supplied by the caller, and then runs the full
// scan.
package planner

import (
	"github.com/ziadkadry99/reatler/internal/project"
	"github.com/ziadkadry99/reatler/internal/walker"
)

// Plan is a scan rule together with the project tags it was derived from.
// Tags is empty for manually supplied rules.
type Plan struct {
	Rule walker.Rule
	Tags []project.Tag
}

// Selection is the outcome of running a plan against a directory.
type Selection struct {
	Rule  walker.Rule
	Tags  []project.Tag
	Files []string // Matched paths, in scan order, without repeats.
}

// Auto inspects the files directly under root and derives an include list
// from the project types they reveal. It reports false when no project type
// is recognised; the caller is then expected to fall back to Manual. A root
// that cannot be listed is treated like an empty one.
func Auto(root string, baselineIgnore []string) (Plan, bool) {
	candidates, err := walker.Scan(root, walker.Rule{
		Include: walker.IncludeAll,
		Ignore:  baselineIgnore,
	}, false)
	if err != nil {
		candidates = nil
	}

	tags := project.Infer(candidates)
	if len(tags) == 0 {
		return Plan{}, false
	}
	return FromTags(tags, baselineIgnore), true
}

// FromTags builds a plan for an explicit list of project types.
func FromTags(tags []project.Tag, ignore []string) Plan {
	return Plan{
		Rule: walker.Rule{
			Include: project.Expand(tags),
			Ignore:  ignore,
		},
		Tags: tags,
	}
}

// Manual builds a plan from caller supplied patterns. Blank patterns are
// dropped so they cannot widen the rule.
func Manual(include, ignore []string) Plan {
	return Plan{
		Rule: walker.Rule{
			Include: walker.CleanPatterns(include),
			Ignore:  walker.CleanPatterns(ignore),
		},
	}
}

// Request names the rule a caller asked for. An empty Request asks for
// detection.
type Request struct {
	Tags    []project.Tag
	Include []string
	Ignore  []string
}

// Build turns req into a plan for root. Explicit tags and include patterns
// are combined; with neither, Build falls back to Auto and reports its
// outcome.
func Build(root string, req Request) (Plan, bool) {
	if len(req.Tags) == 0 && len(walker.CleanPatterns(req.Include)) == 0 {
		return Auto(root, req.Ignore)
	}
	include := append(project.Expand(req.Tags), req.Include...)
	plan := Manual(include, req.Ignore)
	plan.Tags = req.Tags
	return plan, true
}

// Select runs the full recursive scan for plan. Errors are *walker.ScanError
// values and mean nothing was selected.
func Select(root string, plan Plan) (*Selection, error) {
	files, err := walker.Scan(root, plan.Rule, true)
	if err != nil {
		return nil, err
	}
	return &Selection{
		Rule:  plan.Rule,
		Tags:  plan.Tags,
		Files: dedup(files),
	}, nil
}

func dedup(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
