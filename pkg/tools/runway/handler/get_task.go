package handler

import (
	"context"
	"fmt"

	"Runway_MCP/internal/runway"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleGetTask returns a one-shot snapshot of a task's current state.
func (h *RunwayHandler) HandleGetTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := req.RequireString("task_id")
	if err != nil {
		return nil, err
	}
	if taskID == "" {
		return mcp.NewToolResultError("task_id must not be empty"), nil
	}

	client, err := h.clientFor(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	task, err := client.GetTask(ctx, taskID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get task %s: %v", taskID, err)), nil
	}
	return mcp.NewToolResultText(runway.FormatTask(task)), nil
}
