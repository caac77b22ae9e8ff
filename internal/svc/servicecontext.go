package svc

import (
	"net/http"

	"ghostx-api/internal/config"
	"ghostx-api/pkg/hyperliquid"
	marketpkg "ghostx-api/pkg/market"
)

type ServiceContext struct {
	Config   *config.Config
	Upstream *hyperliquid.Client
	Market   *marketpkg.Aggregator
}

func NewServiceContext(c *config.Config) *ServiceContext {
	marketCfg, err := c.MarketConfig()
	if err != nil {
		panic(err)
	}

	client := hyperliquid.NewClient(
		hyperliquid.WithBaseURL(c.Upstream.ResolveBaseURL()),
		hyperliquid.WithHTTPClient(&http.Client{Timeout: c.Upstream.HTTPTimeout()}),
	)

	// The market section's timeout wins when set explicitly.
	timeout := c.Upstream.Timeout()
	if marketCfg.TimeoutRaw != "" {
		timeout = marketCfg.Timeout
	}
	aggregator := marketpkg.NewAggregator(client,
		marketpkg.WithTimeout(timeout),
		marketpkg.WithTracked(marketCfg.Tracked),
	)

	return &ServiceContext{
		Config:   c,
		Upstream: client,
		Market:   aggregator,
	}
}
