package handler

import (
	"context"
	"fmt"

	"Runway_MCP/internal/models"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleTextToVideo generates a video from a text prompt, optionally waiting
// for the task to finish.
func (h *RunwayHandler) HandleTextToVideo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return nil, err
	}

	model := req.GetString("model", DefaultVideoModel)
	if err := validateEnum("model", model, videoModels); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ratio := req.GetString("ratio", DefaultVideoRatio)
	if err := validateEnum("ratio", ratio, videoRatios); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	duration := int(req.GetFloat("duration", DefaultDuration))
	if duration < MinDuration || duration > MaxDuration {
		return mcp.NewToolResultError(fmt.Sprintf(
			"invalid duration %d: must be between %d and %d seconds", duration, MinDuration, MaxDuration)), nil
	}

	log := newInvocationLogger("text_to_video")

	client, err := h.clientFor(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.WithPayload(map[string]interface{}{"model": model, "ratio": ratio, "duration": duration}).
		Info("Creating text-to-video task")

	created, err := client.CreateTextToVideo(ctx, &models.TextToVideoRequest{
		Model:      model,
		PromptText: prompt,
		Ratio:      ratio,
		Duration:   duration,
	})
	if err != nil {
		log.WithError(err).Error("Task creation failed")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create text-to-video task: %v", err)), nil
	}

	return h.createAndMaybePoll(ctx, req, client, created.ID, log)
}
