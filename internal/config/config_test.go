package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Output != "output.txt" {
		t.Errorf("expected default output %q, got %q", "output.txt", cfg.Output)
	}
	if cfg.Format != "text" {
		t.Errorf("expected default format %q, got %q", "text", cfg.Format)
	}
	if cfg.IgnoreFile != ".gitignore" {
		t.Errorf("expected default ignore_file %q, got %q", ".gitignore", cfg.IgnoreFile)
	}
	if !cfg.Clipboard {
		t.Error("expected clipboard to be enabled by default")
	}
	if cfg.Finder.Binary != "fd" {
		t.Errorf("expected default finder binary %q, got %q", "fd", cfg.Finder.Binary)
	}
	if cfg.FinderTimeout() != 10*time.Second {
		t.Errorf("expected default finder timeout 10s, got %s", cfg.FinderTimeout())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.reatler.yml")

	original := DefaultConfig()
	original.Output = "context.md"
	original.Format = "markdown"
	original.Include = []string{".go", ".py"}
	original.Ignore = []string{"vendor", "node_modules"}
	original.Clipboard = false
	original.Finder.TimeoutSeconds = 3

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Output != original.Output {
		t.Errorf("output: got %q, want %q", loaded.Output, original.Output)
	}
	if loaded.Format != original.Format {
		t.Errorf("format: got %q, want %q", loaded.Format, original.Format)
	}
	if loaded.Clipboard != original.Clipboard {
		t.Errorf("clipboard: got %v, want %v", loaded.Clipboard, original.Clipboard)
	}
	if loaded.Finder.TimeoutSeconds != 3 {
		t.Errorf("finder.timeout_seconds: got %d, want 3", loaded.Finder.TimeoutSeconds)
	}
	if len(loaded.Include) != len(original.Include) {
		t.Errorf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}
	for i, v := range loaded.Include {
		if v != original.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Include[i])
		}
	}
	if len(loaded.Ignore) != len(original.Ignore) {
		t.Errorf("ignore length: got %d, want %d", len(loaded.Ignore), len(original.Ignore))
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Output != "output.txt" {
		t.Errorf("expected default output, got %q", cfg.Output)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("REATLER_OUTPUT", "ctx.txt")
	t.Setenv("REATLER_FINDER__BINARY", "fdfind")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Output != "ctx.txt" {
		t.Errorf("env override failed: got %q, want %q", loaded.Output, "ctx.txt")
	}
	if loaded.Finder.Binary != "fdfind" {
		t.Errorf("nested env override failed: got %q, want %q", loaded.Finder.Binary, "fdfind")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEmptyOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty output")
	}
}

func TestValidateInvalidFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "pdf"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid format")
	}
}

func TestValidateNegativeTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Finder.TimeoutSeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative finder timeout")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{".d.ts", []string{".d.ts"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
