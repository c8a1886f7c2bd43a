package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// NewCostflowMCPServer creates a new MCP server with all costflow tools and
// resources registered. Quotes read .costflow.yaml from projectPath.
func NewCostflowMCPServer(projectPath string, logger zerolog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"costflow",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, logger)
	registerResources(s, projectPath)

	return s
}
