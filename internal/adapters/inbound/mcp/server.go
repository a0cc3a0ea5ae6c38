// Package mcp exposes the checker and fixers over the Model Context
// Protocol so coding assistants can query and repair design violations.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDesignCheckMCPServer creates an MCP server with all designcheck tools
// registered. projectPath is the root directory of the project to check.
func NewDesignCheckMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"designcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
