package main

import (
	"flag"
	"fmt"
	"log"

	"Runway_MCP/internal/api"
	"Runway_MCP/internal/config"
	"Runway_MCP/pkg/logger"
	"Runway_MCP/pkg/tools/calculator"
	"Runway_MCP/pkg/tools/runway"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

const ServiceName = "runway_mcp"

// STDIO transport (default)
//go run main.go
//go run main.go -transport=stdio
//
// SSE transport on port 8085
//go run main.go -transport=sse -port=8085
//
// StreamableHTTP transport on port 9000 (served through the gin router)
//go run main.go -transport=httpstream -port=9000

func main() {
	// Define command-line flags
	transport := flag.String("transport", "stdio", "Transport method: stdio, sse, or httpstream")
	port := flag.String("port", "", "Port for HTTP-based transports (sse, httpstream); overrides the config file")
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	// 2. 初始化 Logger
	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)
	appLogger := logger.New(ServiceName, "")
	appLogger.WithPayload(map[string]interface{}{
		"base_url":    cfg.Runway.BaseURL,
		"api_version": cfg.Runway.APIVersion,
		"api_key":     logger.MaskSecret(cfg.Runway.APIKey),
	}).Info("Configuration loaded")

	// 3. 创建 MCP 服务并注册全部工具。
	// 两种部署传输共享同一个工具集，注册逻辑只有这一份。
	s := server.NewMCPServer(cfg.Server.Name, cfg.Server.Version)
	runway.RegisterTools(s, cfg)
	calculator.RegisterTools(s)

	// 4. 按传输方式启动服务
	switch *transport {
	case "sse":
		appLogger.Info(fmt.Sprintf("Starting Runway MCP server with SSE transport on port %s", cfg.Server.Port))
		sseServer := server.NewSSEServer(s)
		if err := sseServer.Start(":" + cfg.Server.Port); err != nil {
			appLogger.Fatal(fmt.Sprintf("SSE server error: %v", err))
		}
	case "httpstream":
		appLogger.Info(fmt.Sprintf("Starting Runway MCP server with StreamableHTTP transport on port %s", cfg.Server.Port))
		httpServer := server.NewStreamableHTTPServer(s)
		router := api.SetupRouter(cfg, httpServer)
		if err := router.Run(":" + cfg.Server.Port); err != nil {
			appLogger.Fatal(fmt.Sprintf("HTTP server error: %v", err))
		}
	case "stdio":
		appLogger.Info("Starting Runway MCP server with STDIO transport")
		if err := server.ServeStdio(s); err != nil {
			appLogger.Fatal(fmt.Sprintf("STDIO server error: %v", err))
		}
	default:
		appLogger.Fatal(fmt.Sprintf("Unknown transport: %s. Use stdio, sse, or httpstream", *transport))
	}
}
