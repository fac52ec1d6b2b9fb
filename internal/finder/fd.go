package finder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultFdTimeout bounds a single fd invocation.
const DefaultFdTimeout = 10 * time.Second

// Fd runs the fd(1) file finder. It is attempted once per lookup; any failure
// is returned so the caller can fall back to walking the tree.
type Fd struct {
	Binary  string        // Executable name or path, "fd" if empty.
	Timeout time.Duration // DefaultFdTimeout if zero.
}

// FindDirs lists directories below root whose name matches *query*.
func (f Fd) FindDirs(root, query string) ([]string, error) {
	binary := f.Binary
	if binary == "" {
		binary = "fd"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("fd: %w", err)
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultFdTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path,
		"--type", "d",
		"--hidden",
		"--no-ignore",
		"--ignore-case",
		"--glob", "*"+query+"*",
		root,
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fd: timed out after %s", timeout)
		}
		return nil, fmt.Errorf("fd: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return parseFdOutput(stdout.String()), nil
}

// parseFdOutput splits fd output into cleaned paths, so "./pkg/" from fd
// reads "pkg" like the paths produced by the built-in walk.
func parseFdOutput(out string) []string {
	var dirs []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		dirs = append(dirs, filepath.Clean(line))
	}
	return dirs
}
