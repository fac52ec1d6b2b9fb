package mcp

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/reatler/internal/finder"
)

var sampleRoot = filepath.Join("..", "..", "testdata", "sample_project")

// stubAccelerator implements finder.Accelerator for testing.
type stubAccelerator struct {
	dirs []string
	err  error
}

func (s *stubAccelerator) FindDirs(_, _ string) ([]string, error) { return s.dirs, s.err }

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	var sb strings.Builder
	for _, c := range result.Content {
		switch tc := c.(type) {
		case mcp.TextContent:
			sb.WriteString(tc.Text)
		case *mcp.TextContent:
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func call(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"detect_project", detectProjectTool, "detect_project"},
		{"select_files", selectFilesTool, "select_files"},
		{"assemble_context", assembleContextTool, "assemble_context"},
		{"find_directory", findDirectoryTool, "find_directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := NewServer("/tmp/project", []string{"build"}, nil)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.finder == nil {
		t.Error("finder should default to the built-in walk")
	}
	if srv.root != "/tmp/project" {
		t.Errorf("root = %q, want %q", srv.root, "/tmp/project")
	}
}

func TestResolve(t *testing.T) {
	srv := NewServer("root", nil, nil)
	abs, _ := filepath.Abs("elsewhere")

	tests := []struct {
		in, want string
	}{
		{"", "root"},
		{"sub", filepath.Join("root", "sub")},
		{abs, abs},
	}
	for _, tt := range tests {
		if got := srv.resolve(tt.in); got != tt.want {
			t.Errorf("resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHandleDetectProject(t *testing.T) {
	ctx := context.Background()

	t.Run("sample project", func(t *testing.T) {
		srv := NewServer(sampleRoot, []string{"build"}, nil)
		result, err := srv.handleDetectProject(ctx, call(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Detected project type(s): Go, Python") {
			t.Errorf("unexpected detection report:\n%s", text)
		}
	})

	t.Run("nothing detected", func(t *testing.T) {
		srv := NewServer(t.TempDir(), nil, nil)
		result, err := srv.handleDetectProject(ctx, call(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Error("failed detection should not be a tool error")
		}
		if !strings.Contains(resultText(t, result), "No project type detected") {
			t.Errorf("unexpected text: %s", resultText(t, result))
		}
	})
}

func TestHandleSelectFiles(t *testing.T) {
	srv := NewServer(sampleRoot, []string{"build"}, nil)
	ctx := context.Background()

	t.Run("detected rule", func(t *testing.T) {
		result, err := srv.handleSelectFiles(ctx, call(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		for _, want := range []string{"Selected 5 file(s)", "main.go", filepath.Join("scripts", "utils.py")} {
			if !strings.Contains(text, want) {
				t.Errorf("selection missing %q:\n%s", want, text)
			}
		}
		if strings.Contains(text, "generated.go") {
			t.Errorf("ignored build directory leaked into selection:\n%s", text)
		}
	})

	t.Run("explicit include and ignore", func(t *testing.T) {
		result, err := srv.handleSelectFiles(ctx, call(map[string]any{
			"include": ".py",
			"ignore":  "scripts",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resultText(t, result); got != "No files matched." {
			t.Errorf("text = %q, want no matches", got)
		}
	})

	t.Run("types", func(t *testing.T) {
		result, err := srv.handleSelectFiles(ctx, call(map[string]any{"types": "python"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Selected 2 file(s)") {
			t.Errorf("unexpected selection:\n%s", text)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		result, err := srv.handleSelectFiles(ctx, call(map[string]any{"types": "cobol"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown project type")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		result, err := srv.handleSelectFiles(ctx, call(map[string]any{
			"path":    "does-not-exist",
			"include": ".go",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("nothing detected", func(t *testing.T) {
		empty := NewServer(t.TempDir(), nil, nil)
		result, err := empty.handleSelectFiles(ctx, call(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error when no rule can be derived")
		}
	})
}

func TestHandleAssembleContext(t *testing.T) {
	srv := NewServer(sampleRoot, []string{"build"}, nil)
	ctx := context.Background()

	t.Run("text", func(t *testing.T) {
		result, err := srv.handleAssembleContext(ctx, call(map[string]any{"include": "main.go"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		want := "\n File path: " + filepath.Join(sampleRoot, "main.go") + "\n\n"
		if !strings.HasPrefix(text, want) {
			t.Errorf("output should start with %q, got:\n%s", want, text)
		}
		if !strings.Contains(text, "package main") {
			t.Error("file content missing from output")
		}
	})

	t.Run("markdown", func(t *testing.T) {
		result, err := srv.handleAssembleContext(ctx, call(map[string]any{
			"include": "main.go",
			"format":  "markdown",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), "```go\n") {
			t.Errorf("expected a go code fence:\n%s", resultText(t, result))
		}
	})

	t.Run("html rejected", func(t *testing.T) {
		result, err := srv.handleAssembleContext(ctx, call(map[string]any{"format": "html"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for html format")
		}
	})
}

func TestHandleFindDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("walk", func(t *testing.T) {
		srv := NewServer(sampleRoot, nil, nil)
		result, err := srv.handleFindDirectory(ctx, call(map[string]any{"query": "AUTH"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := resultText(t, result), filepath.Join(sampleRoot, "auth"); got != want {
			t.Errorf("text = %q, want %q", got, want)
		}
	})

	t.Run("accelerator failure falls back", func(t *testing.T) {
		f := finder.New(&stubAccelerator{err: errors.New("boom")})
		srv := NewServer(sampleRoot, nil, f)
		result, err := srv.handleFindDirectory(ctx, call(map[string]any{"query": "scripts"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := resultText(t, result), filepath.Join(sampleRoot, "scripts"); got != want {
			t.Errorf("text = %q, want %q", got, want)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		srv := NewServer(sampleRoot, nil, nil)
		result, err := srv.handleFindDirectory(ctx, call(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing query")
		}
	})
}
