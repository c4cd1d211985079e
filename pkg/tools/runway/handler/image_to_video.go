package handler

import (
	"context"
	"fmt"
	"strings"

	"Runway_MCP/internal/models"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleImageToVideo generates a video from a source image plus an optional
// text prompt, optionally waiting for the task to finish.
func (h *RunwayHandler) HandleImageToVideo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	promptImage, err := req.RequireString("prompt_image")
	if err != nil {
		return nil, err
	}
	// The provider accepts an HTTPS URL or a data URI for the source frame.
	if !strings.HasPrefix(promptImage, "http://") &&
		!strings.HasPrefix(promptImage, "https://") &&
		!strings.HasPrefix(promptImage, "data:") {
		return mcp.NewToolResultError(
			"invalid prompt_image: must be an HTTP(S) URL or a data URI"), nil
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

	log := newInvocationLogger("image_to_video")

	client, err := h.clientFor(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.WithPayload(map[string]interface{}{"model": model, "ratio": ratio, "duration": duration}).
		Info("Creating image-to-video task")

	created, err := client.CreateImageToVideo(ctx, &models.ImageToVideoRequest{
		Model:       model,
		PromptImage: promptImage,
		PromptText:  req.GetString("prompt", ""),
		Ratio:       ratio,
		Duration:    duration,
	})
	if err != nil {
		log.WithError(err).Error("Task creation failed")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create image-to-video task: %v", err)), nil
	}

	return h.createAndMaybePoll(ctx, req, client, created.ID, log)
}
