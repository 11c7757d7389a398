// Package mcp exposes dashboard queries as Model Context Protocol tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/depviz/internal/dashboard"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that answers dependency questions from the
// current dashboard snapshot.
type Server struct {
	store *dashboard.Store
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server reading from store.
func NewServer(store *dashboard.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"depviz",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(reverseLookupTool, s.handleReverseLookup)
	s.mcp.AddTool(datasetStatsTool, s.handleDatasetStats)
	s.mcp.AddTool(fileDetailTool, s.handleFileDetail)
	s.mcp.AddTool(searchFilesTool, s.handleSearchFiles)
	s.mcp.AddTool(dependencyDiagramTool, s.handleDependencyDiagram)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
