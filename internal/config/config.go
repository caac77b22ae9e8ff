package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"ghostx-api/pkg/confkit"
	"ghostx-api/pkg/hyperliquid"
	marketpkg "ghostx-api/pkg/market"
)

// UpstreamConf configures the venue info endpoint. Values are fixed at
// startup and read-only thereafter.
type UpstreamConf struct {
	// BaseURL of the info endpoint. Defaults to mainnet.
	BaseURL string `json:",optional"`
	// Mode selects mainnet or testnet when BaseURL is not set explicitly.
	Mode string `json:",default=mainnet,options=mainnet|testnet"`
	// TimeoutSec bounds each upstream query.
	TimeoutSec int `json:",default=8"`
	// HTTPTimeoutSec bounds the underlying HTTP client.
	HTTPTimeoutSec int `json:",default=10"`
}

// Timeout returns the per-query timeout as a duration.
func (u UpstreamConf) Timeout() time.Duration {
	return time.Duration(u.TimeoutSec) * time.Second
}

// HTTPTimeout returns the HTTP client timeout as a duration.
func (u UpstreamConf) HTTPTimeout() time.Duration {
	return time.Duration(u.HTTPTimeoutSec) * time.Second
}

// ResolveBaseURL picks the configured URL or the default for the mode.
func (u UpstreamConf) ResolveBaseURL() string {
	if strings.TrimSpace(u.BaseURL) != "" {
		return u.BaseURL
	}
	if strings.EqualFold(u.Mode, "testnet") {
		return hyperliquid.TestnetInfoURL
	}
	return hyperliquid.MainnetInfoURL
}

// Config is the top level service configuration.
type Config struct {
	rest.RestConf
	Upstream UpstreamConf `json:",optional"`
	// MarketFile points at the market section YAML, resolved relative to
	// the main config file when not absolute.
	MarketFile string `json:",default=etc/market.yaml,optional"`

	baseDir string
}

// MustLoad loads configuration from path and panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads, validates and hydrates the service configuration.
func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the configuration is structurally sound.
func (c *Config) Validate() error {
	if c.Upstream.TimeoutSec <= 0 {
		return errors.New("config: upstream.timeoutSec must be positive")
	}
	if c.Upstream.HTTPTimeoutSec <= 0 {
		return errors.New("config: upstream.httpTimeoutSec must be positive")
	}
	switch strings.ToLower(strings.TrimSpace(c.Upstream.Mode)) {
	case "", "mainnet", "testnet":
	default:
		return errors.New("config: upstream.mode must be mainnet or testnet")
	}
	return nil
}

// MarketConfig loads the market section, falling back to defaults when the
// file is absent.
func (c *Config) MarketConfig() (*marketpkg.Config, error) {
	path := strings.TrimSpace(c.MarketFile)
	if path == "" {
		return marketpkg.DefaultConfig(), nil
	}
	resolved := confkit.ResolvePath(c.baseDir, path)
	if _, err := os.Stat(resolved); os.IsNotExist(err) {
		return marketpkg.DefaultConfig(), nil
	}
	cfg, err := marketpkg.LoadConfig(resolved)
	if err != nil {
		return nil, fmt.Errorf("config: market section: %w", err)
	}
	return cfg, nil
}
