package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/ziadkadry99/reatler/internal/config"
	"github.com/ziadkadry99/reatler/internal/finder"
	"github.com/ziadkadry99/reatler/internal/project"
	"github.com/ziadkadry99/reatler/internal/walker"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `reatler init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// logf prints a diagnostic to stderr when --verbose is set.
func logf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// warnf prints a warning to stderr regardless of --verbose.
func warnf(format string, args ...any) {
	yellow.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// rootArg returns the directory named on the command line, or ".".
func rootArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}

// ignoreFilePath locates the configured ignore file for root. Relative names
// are looked up inside root.
func ignoreFilePath(cfg *config.Config, root string) string {
	if cfg.IgnoreFile == "" || filepath.IsAbs(cfg.IgnoreFile) {
		return cfg.IgnoreFile
	}
	return filepath.Join(root, cfg.IgnoreFile)
}

// baselineIgnore merges the config's ignore patterns with the lines of the
// ignore file under root. An unreadable ignore file is reported and skipped.
func baselineIgnore(cfg *config.Config, root string) []string {
	ignore := append([]string{}, cfg.Ignore...)

	path := ignoreFilePath(cfg, root)
	if path == "" {
		return ignore
	}
	lines, err := walker.LoadIgnoreFile(path)
	if err != nil {
		warnf("could not read ignore file: %v", err)
		return ignore
	}
	if len(lines) > 0 {
		logf("Loaded %d ignore pattern(s) from %s", len(lines), path)
	}
	return append(ignore, lines...)
}

// newFinder builds the directory finder, using fd when it is installed.
func newFinder(cfg *config.Config) *finder.Finder {
	var accel finder.Accelerator
	if cfg.Finder.Binary != "" {
		accel = finder.Fd{Binary: cfg.Finder.Binary, Timeout: cfg.FinderTimeout()}
	}
	f := finder.New(accel)
	f.Logf = logf
	return f
}

// manualInclude is the include list manual mode starts from before the
// prompts add to it: the files of any --type tags, then explicit suffixes.
func manualInclude(tags []project.Tag, include []string) []string {
	return append(project.Expand(tags), include...)
}

// withoutFile drops target from files. The artifact of an earlier run is
// truncated before it is read, so it must never be selected.
func withoutFile(files []string, target string) []string {
	abs, err := filepath.Abs(target)
	if err != nil {
		return files
	}
	out := files[:0:0]
	for _, f := range files {
		if fa, err := filepath.Abs(f); err == nil && fa == abs {
			logf("Skipping %s: it is the output file", f)
			continue
		}
		out = append(out, f)
	}
	return out
}
