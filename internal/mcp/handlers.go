package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/reatler/internal/assemble"
	"github.com/ziadkadry99/reatler/internal/planner"
	"github.com/ziadkadry99/reatler/internal/project"
)

// handleDetectProject reports the project types found at the top of a directory.
func (s *Server) handleDetectProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := s.resolve(request.GetString("path", ""))

	plan, ok := planner.Auto(root, s.ignore)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No project type detected in %s. Pass include or types to select files manually.", root,
		)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Detected project type(s): %s\n", project.Names(plan.Tags))
	fmt.Fprintf(&sb, "Include: %s\n", strings.Join(plan.Rule.Include, " "))
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSelectFiles lists the files a plan selects.
func (s *Server) handleSelectFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := s.resolve(request.GetString("path", ""))

	sel, errResult := s.selectFiles(root, request)
	if errResult != nil {
		return errResult, nil
	}
	if len(sel.Files) == 0 {
		return mcp.NewToolResultText("No files matched."), nil
	}

	return mcp.NewToolResultText(formatSelection(sel)), nil
}

// handleAssembleContext returns the selected files concatenated into one document.
func (s *Server) handleAssembleContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := assemble.ParseFormat(request.GetString("format", ""))
	if err != nil || format == assemble.FormatHTML {
		return mcp.NewToolResultError("format must be text or markdown"), nil
	}

	root := s.resolve(request.GetString("path", ""))
	sel, errResult := s.selectFiles(root, request)
	if errResult != nil {
		return errResult, nil
	}
	if len(sel.Files) == 0 {
		return mcp.NewToolResultText("No files matched."), nil
	}

	var buf bytes.Buffer
	if _, err := assemble.New(format, nil).Write(&buf, sel.Files); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assembly failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// handleFindDirectory looks up directories by name below the server root.
func (s *Server) handleFindDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	dirs, err := s.finder.FindDirectories(s.root, query, s.ignore)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	if len(dirs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No directory matching %q.", query)), nil
	}
	return mcp.NewToolResultText(strings.Join(dirs, "\n")), nil
}

// selectFiles builds the plan described by the request arguments and runs it.
// A non-nil result is a tool error to hand back to the client.
func (s *Server) selectFiles(root string, request mcp.CallToolRequest) (*planner.Selection, *mcp.CallToolResult) {
	tags, err := project.ParseTags(splitList(request.GetString("types", "")))
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}

	req := planner.Request{
		Tags:    tags,
		Include: splitList(request.GetString("include", "")),
		Ignore:  append(append([]string{}, s.ignore...), splitList(request.GetString("ignore", ""))...),
	}
	plan, ok := planner.Build(root, req)
	if !ok {
		return nil, mcp.NewToolResultError(fmt.Sprintf(
			"No project type detected in %s. Pass include or types.", root,
		))
	}

	sel, err := planner.Select(root, plan)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err))
	}
	return sel, nil
}

// formatSelection renders a selection for AI agent consumption.
func formatSelection(sel *planner.Selection) string {
	var sb strings.Builder
	if len(sel.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Project type(s): %s\n", project.Names(sel.Tags)))
	}
	sb.WriteString(fmt.Sprintf("Selected %d file(s):\n", len(sel.Files)))
	for _, f := range sel.Files {
		sb.WriteString(f)
		sb.WriteString("\n")
	}
	return sb.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
