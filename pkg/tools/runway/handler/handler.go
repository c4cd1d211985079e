package handler

import (
	"context"
	"fmt"
	"time"

	"Runway_MCP/internal/config"
	"Runway_MCP/internal/runway"
	"Runway_MCP/pkg/logger"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// Supported model and ratio enumerations. These mirror the provider's
// published contract and are validated here so the caller gets a descriptive
// error instead of a raw HTTP 400.
var (
	videoModels = []string{"gen4_turbo", "gen3a_turbo"}
	videoRatios = []string{"1280:720", "720:1280", "1104:832", "832:1104"}
	imageModels = []string{"gen4_image"}
	imageRatios = []string{"1920:1080", "1080:1920", "1024:1024", "1360:768", "1080:1080", "1168:880"}
)

// Default argument values shared by the generation tools.
const (
	DefaultVideoModel = "gen4_turbo"
	DefaultVideoRatio = "1280:720"
	DefaultImageModel = "gen4_image"
	DefaultImageRatio = "1920:1080"
	DefaultDuration   = 5
	MinDuration       = 5
	MaxDuration       = 10
)

// RunwayHandler handles all Runway tool requests. It carries the process-wide
// connection configuration; the credential for each call is resolved from the
// per-call api_key argument with the configured key as fallback.
type RunwayHandler struct {
	cfg config.RunwayConfig
}

// NewRunwayHandler creates a new RunwayHandler.
func NewRunwayHandler(cfg config.RunwayConfig) *RunwayHandler {
	return &RunwayHandler{cfg: cfg}
}

// clientFor resolves the credential for one invocation and builds a client
// bound to it. A missing credential is reported before any network call.
func (h *RunwayHandler) clientFor(req mcp.CallToolRequest) (*runway.Client, error) {
	apiKey, err := runway.ResolveAPIKey(req.GetString("api_key", ""), h.cfg.APIKey)
	if err != nil {
		return nil, err
	}
	return runway.NewClient(h.cfg, apiKey), nil
}

// pollInterval returns the configured fixed poll interval.
func (h *RunwayHandler) pollInterval() time.Duration {
	if h.cfg.PollIntervalSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(h.cfg.PollIntervalSeconds) * time.Second
}

// maxWait reads the max_wait_seconds argument, falling back to the configured
// default budget. Negative values are rejected by the caller-facing schema;
// a zero budget is legal and means "query once".
func (h *RunwayHandler) maxWait(req mcp.CallToolRequest) time.Duration {
	def := h.cfg.DefaultMaxWaitSeconds
	if def <= 0 {
		def = 300
	}
	seconds := req.GetFloat("max_wait_seconds", float64(def))
	if seconds < 0 {
		seconds = 0
	}
	return time.Duration(seconds * float64(time.Second))
}

// createAndMaybePoll finishes every generation tool: it reports the created
// task id immediately when auto-polling is off, otherwise runs the bounded
// poll loop and formats the terminal or timeout outcome.
func (h *RunwayHandler) createAndMaybePoll(
	ctx context.Context,
	req mcp.CallToolRequest,
	client *runway.Client,
	taskID string,
	log *logger.Logger,
) (*mcp.CallToolResult, error) {
	if !req.GetBool("auto_poll", true) {
		return mcp.NewToolResultText(runway.FormatTaskCreated(taskID)), nil
	}

	poller := runway.NewPoller(client, h.pollInterval())
	result, err := poller.Poll(ctx, taskID, h.maxWait(req))
	if err != nil {
		log.WithError(err).Error("Polling failed")
		return mcp.NewToolResultError(fmt.Sprintf(
			"Task %s was created, but polling its status failed: %v", taskID, err)), nil
	}

	log.WithPayload(map[string]interface{}{
		"task_id":  taskID,
		"outcome":  string(result.Outcome),
		"attempts": result.Attempts,
	}).Info("Poll loop finished")
	return mcp.NewToolResultText(runway.FormatPollResult(result)), nil
}

// newInvocationLogger creates a per-invocation logger with a fresh trace id.
func newInvocationLogger(tool string) *logger.Logger {
	return logger.New("runway_mcp."+tool, uuid.New().String())
}

// validateEnum checks that value is one of allowed, returning a descriptive
// error for the tool caller otherwise.
func validateEnum(field, value string, allowed []string) error {
	for _, v := range allowed {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: must be one of %v", field, value, allowed)
}
