// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
)

// NewMCPServer initializes and configures the epic assignment MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, ai contract.AIClassifier) *server.MCPServer {
	s := server.NewMCPServer(
		"Epic Assignment Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		ai:      ai,
	}

	// --- 1. Tool: classify_epic ---
	s.AddTool(mcp.NewTool("classify_epic",
		mcp.WithDescription("Classify an epic into a development category (Backend, Frontend, Mobile, etc.) from its title and description."),
		mcp.WithString("title", mcp.Description("The epic's title."), mcp.Required()),
		mcp.WithString("description", mcp.Description("The epic's description.")),
	), h.handleClassifyEpic)

	// --- 2. Tool: auto_assign ---
	s.AddTool(mcp.NewTool("auto_assign",
		mcp.WithDescription("Assign epics to developers based on expertise match, experience level and workload balance."),
		mcp.WithString("epics_json", mcp.Description("JSON array of epics, each with epic_id, epic_title, epic_description and optional user_stories."), mcp.Required()),
		mcp.WithString("developers_json", mcp.Description("JSON array of developer profiles as produced by the analyze command."), mcp.Required()),
	), h.handleAutoAssign)

	// --- 3. Tool: reassign_epic ---
	s.AddTool(mcp.NewTool("reassign_epic",
		mcp.WithDescription("Manually move one epic in an existing assignment result to another developer."),
		mcp.WithString("result_json", mcp.Description("JSON assignment result as produced by auto_assign."), mcp.Required()),
		mcp.WithString("epic_id", mcp.Description("The epic to reassign."), mcp.Required()),
		mcp.WithString("developer", mcp.Description("The developer taking over the epic."), mcp.Required()),
	), h.handleReassignEpic)

	return s
}

// StartMCPServer starts the epic assignment MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, ai contract.AIClassifier) error {
	s := NewMCPServer(baseCfg, ai)
	return server.ServeStdio(s)
}
