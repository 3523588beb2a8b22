package cli

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"lavo-client/internal/config"
)

// ConfigSummaryLines returns human readable lines describing the loaded
// client configuration.
func ConfigSummaryLines(cfg *config.Config) []string {
	if cfg == nil {
		return []string{"Configuration: <nil>"}
	}
	clientCfg := cfg.ClientConfig()
	return []string{
		fmt.Sprintf("Environment: %s", cfg.Env),
		fmt.Sprintf("Service: %s", clientCfg.BaseURL),
		fmt.Sprintf("HTTP timeout: %s", clientCfg.Timeout),
		fmt.Sprintf("Session file: %s", cfg.SessionPath()),
	}
}

// LogConfigSummary emits the configuration summary using logx.
func LogConfigSummary(cfg *config.Config) {
	lines := ConfigSummaryLines(cfg)
	if len(lines) == 0 {
		return
	}
	logx.Info("configuration summary")
	for _, line := range lines {
		logx.Infof("config • %s", line)
	}
}
