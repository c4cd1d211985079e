package handler

import (
	"context"
	"fmt"

	"Runway_MCP/internal/runway"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleGetOrganization returns the credit balance and tier limits of the
// organization the credential belongs to.
func (h *RunwayHandler) HandleGetOrganization(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := h.clientFor(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	org, err := client.GetOrganization(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get organization info: %v", err)), nil
	}
	return mcp.NewToolResultText(runway.FormatOrganization(org)), nil
}
