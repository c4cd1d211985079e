package handler

import (
	"context"
	"fmt"

	"Runway_MCP/internal/models"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleTextToImage generates an image from a text prompt with optional
// reference images, optionally waiting for the task to finish.
func (h *RunwayHandler) HandleTextToImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	promptText, err := req.RequireString("prompt_text")
	if err != nil {
		return nil, err
	}

	model := req.GetString("model", DefaultImageModel)
	if err := validateEnum("model", model, imageModels); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ratio := req.GetString("ratio", DefaultImageRatio)
	if err := validateEnum("ratio", ratio, imageRatios); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	refs, errResult := parseReferenceImages(req)
	if errResult != nil {
		return errResult, nil
	}

	log := newInvocationLogger("text_to_image")

	client, err := h.clientFor(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.WithPayload(map[string]interface{}{"model": model, "ratio": ratio, "reference_images": len(refs)}).
		Info("Creating text-to-image task")

	created, err := client.CreateTextToImage(ctx, &models.TextToImageRequest{
		Model:           model,
		PromptText:      promptText,
		Ratio:           ratio,
		ReferenceImages: refs,
	})
	if err != nil {
		log.WithError(err).Error("Task creation failed")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create text-to-image task: %v", err)), nil
	}

	return h.createAndMaybePoll(ctx, req, client, created.ID, log)
}

// parseReferenceImages extracts the optional reference_images array. Each
// entry must be an object with a required uri and an optional tag.
func parseReferenceImages(req mcp.CallToolRequest) ([]models.ReferenceImage, *mcp.CallToolResult) {
	raw, ok := req.GetArguments()["reference_images"]
	if !ok || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, mcp.NewToolResultError("invalid reference_images: must be an array of {uri, tag} objects")
	}

	refs := make([]models.ReferenceImage, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, mcp.NewToolResultError(fmt.Sprintf(
				"invalid reference_images[%d]: must be an object with a uri field", i))
		}
		uri, _ := obj["uri"].(string)
		if uri == "" {
			return nil, mcp.NewToolResultError(fmt.Sprintf(
				"invalid reference_images[%d]: uri is required", i))
		}
		tag, _ := obj["tag"].(string)
		refs = append(refs, models.ReferenceImage{URI: uri, Tag: tag})
	}
	return refs, nil
}
