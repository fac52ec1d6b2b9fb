// Package mcp exposes reatler's file selection to AI agents over the Model
// Context Protocol.
package mcp

import (
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/reatler/internal/finder"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes project detection, file selection
// and context assembly tools.
type Server struct {
	root   string
	ignore []string
	finder *finder.Finder
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server rooted at root. Paths passed to tools are
// resolved against root, and ignore is applied to every scan.
func NewServer(root string, ignore []string, f *finder.Finder) *Server {
	if f == nil {
		f = finder.New(nil)
	}
	s := &Server{
		root:   root,
		ignore: ignore,
		finder: f,
	}

	s.mcp = server.NewMCPServer(
		"reatler",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(detectProjectTool, s.handleDetectProject)
	s.mcp.AddTool(selectFilesTool, s.handleSelectFiles)
	s.mcp.AddTool(assembleContextTool, s.handleAssembleContext)
	s.mcp.AddTool(findDirectoryTool, s.handleFindDirectory)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

// resolve maps a tool's path argument onto the server root.
func (s *Server) resolve(p string) string {
	switch {
	case p == "":
		return s.root
	case filepath.IsAbs(p):
		return p
	default:
		return filepath.Join(s.root, p)
	}
}
