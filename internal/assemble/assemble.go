// Package assemble concatenates selected files into a single artifact with a
// path header in front of each file.
package assemble

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ziadkadry99/reatler/internal/progress"
)

// Format selects the layout of the assembled artifact.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat validates a format name. An empty name means FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of text, markdown, html", s)
	}
}

// Result summarises an assembly run.
type Result struct {
	Written []string // Files copied into the artifact, in order.
	Skipped []string // Files left out because their content looks binary.
	Bytes   int64    // Size of the artifact.
}

// Assembler writes selected files into one artifact.
type Assembler struct {
	Format   Format
	Title    string // Page title for FormatHTML.
	reporter progress.Reporter
}

// New creates an Assembler. A nil reporter discards progress.
func New(format Format, reporter progress.Reporter) *Assembler {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	if format == "" {
		format = FormatText
	}
	return &Assembler{Format: format, Title: "reatler", reporter: reporter}
}

// WriteFile assembles files into the file at path, replacing it.
func (a *Assembler) WriteFile(path string, files []string) (*Result, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("assemble: create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("assemble: create %s: %w", path, err)
	}

	res, err := a.Write(f, files)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("assemble: close %s: %w", path, closeErr)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Write assembles files into w. A file that cannot be read aborts the run.
func (a *Assembler) Write(w io.Writer, files []string) (*Result, error) {
	if a.Format == FormatHTML {
		var md bytes.Buffer
		res, err := a.write(&md, files, FormatMarkdown)
		if err != nil {
			return nil, err
		}
		cw := &countingWriter{w: w}
		if err := renderHTML(cw, a.Title, md.Bytes()); err != nil {
			return nil, err
		}
		res.Bytes = cw.n
		return res, nil
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	res, err := a.write(bw, files, a.Format)
	if err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("assemble: write: %w", err)
	}
	res.Bytes = cw.n
	return res, nil
}

func (a *Assembler) write(w io.Writer, files []string, format Format) (*Result, error) {
	res := &Result{}

	a.reporter.Start(len(files))
	defer a.reporter.Finish()

	for i, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assemble: read %s: %w", path, err)
		}
		a.reporter.Update(i+1, path)

		if isBinary(content) {
			res.Skipped = append(res.Skipped, path)
			continue
		}

		switch format {
		case FormatMarkdown:
			err = writeMarkdownEntry(w, path, content)
		default:
			err = writeTextEntry(w, path, content)
		}
		if err != nil {
			return nil, fmt.Errorf("assemble: write %s: %w", path, err)
		}
		res.Written = append(res.Written, path)
	}
	return res, nil
}

// writeTextEntry emits a blank line, the " File path: " header, another blank
// line and the raw content.
func writeTextEntry(w io.Writer, path string, content []byte) error {
	if _, err := fmt.Fprintf(w, "\n File path: %s\n\n", path); err != nil {
		return err
	}
	_, err := w.Write(content)
	return err
}

// writeMarkdownEntry emits a heading and a fenced code block. The fence is
// longer than any backtick run inside the content.
func writeMarkdownEntry(w io.Writer, path string, content []byte) error {
	fence := strings.Repeat("`", max(3, longestBacktickRun(content)+1))
	body := string(content)
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	_, err := fmt.Fprintf(w, "## %s\n\n%s%s\n%s%s\n\n", path, fence, fenceLanguage(path), body, fence)
	return err
}

func longestBacktickRun(content []byte) int {
	longest, run := 0, 0
	for _, b := range content {
		if b == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return longest
}

// isBinary checks the first 512 bytes for NUL bytes, which is a simple but
// effective heuristic for binary content.
func isBinary(content []byte) bool {
	n := min(len(content), 512)
	return bytes.IndexByte(content[:n], 0) >= 0
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
