package api

import (
	"net/http"

	"Runway_MCP/internal/config"

	"github.com/gin-gonic/gin"
)

// SetupRouter 配置和返回一个 Gin 引擎实例。
// MCP 的 StreamableHTTP 处理器挂载在 /mcp 下，旁边提供健康检查与版本端点。
func SetupRouter(cfg *config.AppConfig, mcpHandler http.Handler) *gin.Engine {
	// 使用默认中间件 (logger, recovery) 创建一个 Gin 引擎。
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    cfg.Server.Name,
			"version": cfg.Server.Version,
		})
	})

	// MCP 协议自身处理方法协商，这里透传所有方法。
	r.Any("/mcp", gin.WrapH(mcpHandler))
	r.Any("/mcp/*path", gin.WrapH(mcpHandler))

	return r
}
