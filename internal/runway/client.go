package runway

import (
	"Runway_MCP/internal/config"
	"Runway_MCP/internal/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client 是 Runway REST API 的远程任务客户端。
// 它只负责把四类逻辑操作（创建任务、查询任务、取消任务、查询组织信息）
// 翻译为出站 HTTP 请求，不解释业务字段，也不做任何自动重试。
type Client struct {
	client     *http.Client // HTTP 客户端实例
	baseURL    string       // Runway API 的基准 URL
	apiVersion string       // X-Runway-Version 请求头的固定日期串
	apiKey     string       // 本次客户端实例使用的 Bearer 令牌
}

// NewClient 根据配置和已解析的 API Key 创建一个新的 Client。
//
// 参数:
//
//	cfg: Runway 连接配置。
//	apiKey: 经过优先级解析后的 Bearer 令牌。
//
// 返回值:
//
//	*Client: 新创建的客户端实例。
func NewClient(cfg config.RunwayConfig, apiKey string) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client:     &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiVersion: cfg.APIVersion,
		apiKey:     apiKey,
	}
}

// CreateTextToVideo 发起一个文生视频任务。
func (c *Client) CreateTextToVideo(ctx context.Context, req *models.TextToVideoRequest) (*models.TaskCreated, error) {
	var created models.TaskCreated
	if err := c.do(ctx, http.MethodPost, "/v1/text_to_video", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateImageToVideo 发起一个图生视频任务。
func (c *Client) CreateImageToVideo(ctx context.Context, req *models.ImageToVideoRequest) (*models.TaskCreated, error) {
	var created models.TaskCreated
	if err := c.do(ctx, http.MethodPost, "/v1/image_to_video", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateTextToImage 发起一个文生图任务。
func (c *Client) CreateTextToImage(ctx context.Context, req *models.TextToImageRequest) (*models.TaskCreated, error) {
	var created models.TaskCreated
	if err := c.do(ctx, http.MethodPost, "/v1/text_to_image", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTask 查询任务的当前状态。重复查询不会改变任何本地状态。
func (c *Client) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodGet, "/v1/tasks/"+taskID, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CancelTask 取消（删除）一个任务。对终态任务调用由远程侧决定语义。
func (c *Client) CancelTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/tasks/"+taskID, nil, nil)
}

// GetOrganization 查询当前组织的额度与限额信息。
func (c *Client) GetOrganization(ctx context.Context) (*models.Organization, error) {
	var org models.Organization
	if err := c.do(ctx, http.MethodGet, "/v1/organization", nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// do 构造并发送一次 HTTP 请求，把响应解码到 out 中（out 为 nil 时丢弃响应体）。
// 非 2xx 响应被转换为携带状态码与原始响应体的错误；网络错误原样包装返回。
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// 设置请求头。每个请求都必须携带 Bearer 令牌和固定的版本头。
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("X-Runway-Version", c.apiVersion)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("runway API error (HTTP %d): %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
