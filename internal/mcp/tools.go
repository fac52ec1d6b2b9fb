package mcp

import "github.com/mark3labs/mcp-go/mcp"

// detectProjectTool defines the detect_project MCP tool.
var detectProjectTool = mcp.NewTool("detect_project",
	mcp.WithDescription("Detect the project types of a directory from the marker files at its top level, and list the file names and suffixes they imply."),
	mcp.WithString("path",
		mcp.Description("Directory relative to the server root (default: the root itself)"),
	),
)

// selectFilesTool defines the select_files MCP tool.
var selectFilesTool = mcp.NewTool("select_files",
	mcp.WithDescription("List the files reatler would include for a directory. Without include or types the project type is detected."),
	mcp.WithString("path",
		mcp.Description("Directory relative to the server root (default: the root itself)"),
	),
	mcp.WithString("include",
		mcp.Description("Comma-separated file name suffixes to include, e.g. \".rs,Cargo.toml\""),
	),
	mcp.WithString("types",
		mcp.Description("Comma-separated project types, e.g. \"go,python\""),
	),
	mcp.WithString("ignore",
		mcp.Description("Comma-separated substrings; matching paths are skipped"),
	),
)

// assembleContextTool defines the assemble_context MCP tool.
var assembleContextTool = mcp.NewTool("assemble_context",
	mcp.WithDescription("Concatenate the selected files of a directory into one document, each file preceded by its path."),
	mcp.WithString("path",
		mcp.Description("Directory relative to the server root (default: the root itself)"),
	),
	mcp.WithString("include",
		mcp.Description("Comma-separated file name suffixes to include"),
	),
	mcp.WithString("types",
		mcp.Description("Comma-separated project types"),
	),
	mcp.WithString("ignore",
		mcp.Description("Comma-separated substrings; matching paths are skipped"),
	),
	mcp.WithString("format",
		mcp.Description("Output layout (default text)"),
		mcp.Enum("text", "markdown"),
	),
)

// findDirectoryTool defines the find_directory MCP tool.
var findDirectoryTool = mcp.NewTool("find_directory",
	mcp.WithDescription("Find directories under the server root whose name contains the query."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Part of the directory name, case-insensitive"),
	),
)
