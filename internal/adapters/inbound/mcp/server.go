package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewShipkitMCPServer creates an MCP server with all shipkit tools and
// resources registered. The projectPath is the root directory of the
// package being released.
func NewShipkitMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"shipkit",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
