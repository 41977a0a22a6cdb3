package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abdulahadd002/epic-dev-assignment/core"
	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	ai      contract.AIClassifier
}

func (h *toolHandler) handleClassifyEpic(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := request.GetString("title", "")
	if title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	epic := schema.Epic{
		Title:       title,
		Description: request.GetString("description", ""),
	}
	classification := core.ClassifyEpic(ctx, h.ai, &epic)

	jsonData, _ := json.MarshalIndent(classification, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAutoAssign(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var epics []schema.Epic
	if err := json.Unmarshal([]byte(request.GetString("epics_json", "")), &epics); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid epics_json: %v", err)), nil
	}

	var developers []schema.DeveloperProfile
	if err := json.Unmarshal([]byte(request.GetString("developers_json", "")), &developers); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid developers_json: %v", err)), nil
	}

	result, err := core.AutoAssignEpics(ctx, h.ai, epics, developers)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assignment failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleReassignEpic(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var result schema.AssignmentResult
	if err := json.Unmarshal([]byte(request.GetString("result_json", "")), &result); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid result_json: %v", err)), nil
	}

	epicID := request.GetString("epic_id", "")
	developer := request.GetString("developer", "")
	if epicID == "" || developer == "" {
		return mcp.NewToolResultError("epic_id and developer are required"), nil
	}

	if result.Workload == nil {
		result.Workload = make(schema.WorkloadDistribution)
	}
	if err := core.ReassignEpic(result.Assignments, epicID, developer, result.Workload); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reassignment failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
