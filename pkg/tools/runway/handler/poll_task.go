package handler

import (
	"context"
	"fmt"

	"Runway_MCP/internal/runway"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandlePollTask polls an existing task until it reaches a terminal state or
// the wait budget runs out.
func (h *RunwayHandler) HandlePollTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := req.RequireString("task_id")
	if err != nil {
		return nil, err
	}
	if taskID == "" {
		return mcp.NewToolResultError("task_id must not be empty"), nil
	}

	log := newInvocationLogger("poll_task")

	client, err := h.clientFor(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	poller := runway.NewPoller(client, h.pollInterval())
	result, err := poller.Poll(ctx, taskID, h.maxWait(req))
	if err != nil {
		log.WithError(err).Error("Polling failed")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to poll task %s: %v", taskID, err)), nil
	}

	log.WithPayload(map[string]interface{}{
		"task_id":  taskID,
		"outcome":  string(result.Outcome),
		"attempts": result.Attempts,
	}).Info("Poll loop finished")
	return mcp.NewToolResultText(runway.FormatPollResult(result)), nil
}
