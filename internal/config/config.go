package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig 是应用程序的顶层配置结构。
type AppConfig struct {
	Server ServerConfig `yaml:"server"` // MCP 服务配置
	Runway RunwayConfig `yaml:"runway"` // Runway 远程服务配置
	Logger LoggerConfig `yaml:"logger"` // 日志配置
}

// ServerConfig 定义了 MCP 服务自身的元信息与监听配置。
type ServerConfig struct {
	Name    string `yaml:"name"`    // 服务名称
	Version string `yaml:"version"` // 服务版本号
	Port    string `yaml:"port"`    // HTTP 类传输（sse, httpstream）的监听端口
}

// RunwayConfig 定义了访问 Runway API 的连接配置。
type RunwayConfig struct {
	APIKey                string `yaml:"apiKey"`                // Bearer 令牌，优先级低于每次调用显式传入的 api_key
	BaseURL               string `yaml:"baseURL"`               // API 基准地址
	APIVersion            string `yaml:"apiVersion"`            // X-Runway-Version 请求头的固定日期串
	TimeoutSeconds        int    `yaml:"timeoutSeconds"`        // 单次 HTTP 请求超时（秒）
	PollIntervalSeconds   int    `yaml:"pollIntervalSeconds"`   // 轮询间隔（秒）
	DefaultMaxWaitSeconds int    `yaml:"defaultMaxWaitSeconds"` // 轮询默认时间预算（秒）
}

// LoggerConfig 定义了日志级别配置。
type LoggerConfig struct {
	Level string `yaml:"level"` // 例如: "info", "debug"
}

// 环境变量名。api_key 的兜底来源是 RUNWAYML_API_SECRET，与官方 SDK 约定一致。
const (
	EnvAPISecret = "RUNWAYML_API_SECRET"
	EnvBaseURL   = "RUNWAY_BASE_URL"
)

// DefaultConfig 返回内置默认配置。stdio 部署通常不携带配置文件，
// 这里的默认值加上环境变量覆盖就足以启动。
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Name:    "runway-mcp-server",
			Version: "1.0.0",
			Port:    "8085",
		},
		Runway: RunwayConfig{
			BaseURL:               "https://api.dev.runwayml.com",
			APIVersion:            "2024-11-06",
			TimeoutSeconds:        30,
			PollIntervalSeconds:   3,
			DefaultMaxWaitSeconds: 300,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
	}
}

// LoadConfig 函数从指定路径加载并解析 YAML 配置文件，
// 再应用环境变量覆盖。path 为空或文件不存在时直接使用默认配置。
//
// 参数:
//
//	path: YAML 配置文件的路径，可为空。
//
// 返回值:
//
//	*AppConfig: 解析后的应用程序配置结构体。
//	error: 如果文件解析失败，则返回错误。
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		yamlFile, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
			}
			// 文件不存在时沿用默认配置。
		} else {
			if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides 将环境变量中的配置覆盖到 cfg 上。
// 环境变量的优先级高于配置文件。
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv(EnvAPISecret); v != "" {
		cfg.Runway.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Runway.BaseURL = v
	}
}
