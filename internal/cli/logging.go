package cli

import (
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/config"
)

// ConfigSummaryLines returns human readable lines describing the loaded app config.
func ConfigSummaryLines(cfg *config.Config) []string {
	if cfg == nil {
		return []string{"Configuration: <nil>"}
	}

	lines := []string{
		fmt.Sprintf("Listen: %s:%d", cfg.Host, cfg.Port),
		fmt.Sprintf("Upstream mode: %s", cfg.Upstream.Mode),
		fmt.Sprintf("Upstream URL: %s", cfg.Upstream.ResolveBaseURL()),
		fmt.Sprintf("Upstream timeout: %s (http %s)", cfg.Upstream.Timeout(), cfg.Upstream.HTTPTimeout()),
		fmt.Sprintf("Market config: %s", presence(strings.TrimSpace(cfg.MarketFile) != "", cfg.MarketFile)),
	}

	return lines
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

func presence(ok bool, value string) string {
	if ok {
		return value
	}
	return "not configured"
}
