package handler

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleCancelTask cancels a remote task. A poll loop already watching the
// task is not interrupted; its next query will simply observe CANCELLED.
func (h *RunwayHandler) HandleCancelTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	if err := client.CancelTask(ctx, taskID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to cancel task %s: %v", taskID, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Task %s has been cancelled.", taskID)), nil
}
