package runway

import (
	"Runway_MCP/internal/config"
	"fmt"
)

// ResolveAPIKey 按固定优先级解析本次调用使用的 Bearer 令牌：
// 显式传入的非空参数优先，其次是配置中的进程级密钥，两者都缺失时报错。
// 这是一个纯函数，凭证兜底不允许藏在调用链深处。
func ResolveAPIKey(explicit, configured string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if configured != "" {
		return configured, nil
	}
	return "", fmt.Errorf("no Runway API key available: pass the api_key argument or set the %s environment variable", config.EnvAPISecret)
}
