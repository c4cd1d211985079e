package runway

import (
	"Runway_MCP/internal/config"
	"Runway_MCP/pkg/tools/runway/handler"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewRunwayServer 创建一个只注册了 Runway 工具集的 MCP 服务实例。
func NewRunwayServer(cfg *config.AppConfig) *server.MCPServer {
	s := server.NewMCPServer(cfg.Server.Name, cfg.Server.Version)
	RegisterTools(s, cfg)
	return s
}

// RegisterTools 把全部 Runway 工具注册到给定的 MCP 服务上。
// 两种部署传输（stdio 与 HTTP）共享同一套注册逻辑。
func RegisterTools(s *server.MCPServer, cfg *config.AppConfig) {
	h := handler.NewRunwayHandler(cfg.Runway)

	s.AddTool(mcp.NewTool("runway_text_to_video",
		mcp.WithDescription("Generate a video from a text prompt using RunwayML. By default waits for the task to complete and returns the output URL."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("Text prompt describing the video to generate.")),
		mcp.WithString("model", mcp.Description("Model to use."), mcp.Enum("gen4_turbo", "gen3a_turbo"), mcp.DefaultString(handler.DefaultVideoModel)),
		mcp.WithNumber("duration", mcp.Description("Video duration in seconds, between 5 and 10."), mcp.DefaultNumber(handler.DefaultDuration)),
		mcp.WithString("ratio", mcp.Description("Output resolution ratio."), mcp.Enum("1280:720", "720:1280", "1104:832", "832:1104"), mcp.DefaultString(handler.DefaultVideoRatio)),
		mcp.WithBoolean("auto_poll", mcp.Description("Wait for the task to finish before returning (default: true)."), mcp.DefaultBool(true)),
		mcp.WithNumber("max_wait_seconds", mcp.Description("Maximum time to wait for completion when auto_poll is enabled (default: 300).")),
		mcp.WithString("api_key", mcp.Description("RunwayML API key. Overrides the RUNWAYML_API_SECRET environment variable for this call.")),
	), h.HandleTextToVideo)

	s.AddTool(mcp.NewTool("runway_image_to_video",
		mcp.WithDescription("Generate a video from a source image using RunwayML. By default waits for the task to complete and returns the output URL."),
		mcp.WithString("prompt_image", mcp.Required(), mcp.Description("HTTP(S) URL or data URI of the source image.")),
		mcp.WithString("prompt", mcp.Description("Optional text prompt guiding the video generation.")),
		mcp.WithString("model", mcp.Description("Model to use."), mcp.Enum("gen4_turbo", "gen3a_turbo"), mcp.DefaultString(handler.DefaultVideoModel)),
		mcp.WithNumber("duration", mcp.Description("Video duration in seconds, between 5 and 10."), mcp.DefaultNumber(handler.DefaultDuration)),
		mcp.WithString("ratio", mcp.Description("Output resolution ratio."), mcp.Enum("1280:720", "720:1280", "1104:832", "832:1104"), mcp.DefaultString(handler.DefaultVideoRatio)),
		mcp.WithBoolean("auto_poll", mcp.Description("Wait for the task to finish before returning (default: true)."), mcp.DefaultBool(true)),
		mcp.WithNumber("max_wait_seconds", mcp.Description("Maximum time to wait for completion when auto_poll is enabled (default: 300).")),
		mcp.WithString("api_key", mcp.Description("RunwayML API key. Overrides the RUNWAYML_API_SECRET environment variable for this call.")),
	), h.HandleImageToVideo)

	s.AddTool(mcp.NewTool("runway_text_to_image",
		mcp.WithDescription("Generate an image from a text prompt using RunwayML, with optional reference images."),
		mcp.WithString("prompt_text", mcp.Required(), mcp.Description("Text prompt describing the image to generate.")),
		mcp.WithString("model", mcp.Description("Model to use."), mcp.Enum("gen4_image"), mcp.DefaultString(handler.DefaultImageModel)),
		mcp.WithString("ratio", mcp.Description("Output resolution ratio."), mcp.Enum("1920:1080", "1080:1920", "1024:1024", "1360:768", "1080:1080", "1168:880"), mcp.DefaultString(handler.DefaultImageRatio)),
		mcp.WithArray("reference_images",
			mcp.Description("Optional reference images, each an object with a required 'uri' and an optional 'tag'."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"uri": map[string]any{"type": "string"},
					"tag": map[string]any{"type": "string"},
				},
				"required": []string{"uri"},
			}),
		),
		mcp.WithBoolean("auto_poll", mcp.Description("Wait for the task to finish before returning (default: true)."), mcp.DefaultBool(true)),
		mcp.WithNumber("max_wait_seconds", mcp.Description("Maximum time to wait for completion when auto_poll is enabled (default: 300).")),
		mcp.WithString("api_key", mcp.Description("RunwayML API key. Overrides the RUNWAYML_API_SECRET environment variable for this call.")),
	), h.HandleTextToImage)

	s.AddTool(mcp.NewTool("runway_get_task",
		mcp.WithDescription("Get the current status of a RunwayML task."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("ID of the task to query.")),
		mcp.WithString("api_key", mcp.Description("RunwayML API key. Overrides the RUNWAYML_API_SECRET environment variable for this call.")),
	), h.HandleGetTask)

	s.AddTool(mcp.NewTool("runway_poll_task",
		mcp.WithDescription("Poll a RunwayML task until it reaches a terminal state or the wait budget elapses."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("ID of the task to poll.")),
		mcp.WithNumber("max_wait_seconds", mcp.Description("Maximum time to wait before reporting a timeout (default: 300).")),
		mcp.WithString("api_key", mcp.Description("RunwayML API key. Overrides the RUNWAYML_API_SECRET environment variable for this call.")),
	), h.HandlePollTask)

	s.AddTool(mcp.NewTool("runway_cancel_task",
		mcp.WithDescription("Cancel a RunwayML task."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("ID of the task to cancel.")),
		mcp.WithString("api_key", mcp.Description("RunwayML API key. Overrides the RUNWAYML_API_SECRET environment variable for this call.")),
	), h.HandleCancelTask)

	s.AddTool(mcp.NewTool("runway_get_organization",
		mcp.WithDescription("Get credit balance and usage limits for the RunwayML organization."),
		mcp.WithString("api_key", mcp.Description("RunwayML API key. Overrides the RUNWAYML_API_SECRET environment variable for this call.")),
	), h.HandleGetOrganization)
}
