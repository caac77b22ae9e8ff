package hyperliquid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// MainnetInfoURL is the default info endpoint.
	MainnetInfoURL = "https://api.hyperliquid.xyz/info"
	// TestnetInfoURL serves the testnet universe.
	TestnetInfoURL = "https://api.hyperliquid-testnet.xyz/info"

	defaultHTTPTimeout = 10 * time.Second
)

// Client issues typed queries against the Hyperliquid info endpoint.
// It performs no retries; callers bound each query with a context deadline
// and decide whether a failure is worth retrying.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a new Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default info endpoint URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// NewClient constructs a Hyperliquid info client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    MainnetInfoURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// do posts an InfoRequest and decodes the response into result.
// Failures are classified: network/timeout errors wrap ErrUnreachable,
// non-2xx statuses become *StatusError, undecodable payloads wrap
// ErrMalformedResponse.
func (c *Client) do(ctx context.Context, req InfoRequest, result interface{}) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("hyperliquid: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("hyperliquid: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnreachable, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= 300 {
		return &StatusError{Status: resp.StatusCode, Body: string(body)}
	}
	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}
	return nil
}

// AllMids returns the current mid price for every listed symbol.
func (c *Client) AllMids(ctx context.Context) (AllMidsResponse, error) {
	var response AllMidsResponse
	if err := c.do(ctx, InfoRequest{Type: "allMids"}, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// Meta returns the instrument universe metadata.
func (c *Client) Meta(ctx context.Context) (*MetaResponse, error) {
	var response MetaResponse
	if err := c.do(ctx, InfoRequest{Type: "meta"}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// MetaAndAssetCtxs returns universe metadata together with per-asset contexts.
func (c *Client) MetaAndAssetCtxs(ctx context.Context) (*MetaAndAssetCtxsResponse, error) {
	var response MetaAndAssetCtxsResponse
	if err := c.do(ctx, InfoRequest{Type: "metaAndAssetCtxs"}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CandleSnapshot returns raw OHLCV bars for the requested window.
// Ordering is not contractually guaranteed by the venue.
func (c *Client) CandleSnapshot(ctx context.Context, req CandleSnapshotRequest) ([]RawCandle, error) {
	var response []RawCandle
	if err := c.do(ctx, InfoRequest{Type: "candleSnapshot", Req: req}, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// L2Book returns the order book at the requested significant-figure precision.
func (c *Client) L2Book(ctx context.Context, req L2BookRequest) (*L2BookResponse, error) {
	var response L2BookResponse
	if err := c.do(ctx, InfoRequest{Type: "l2Book", Req: req}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// FundingHistory returns funding settlements for the requested window.
func (c *Client) FundingHistory(ctx context.Context, req FundingHistoryRequest) ([]FundingEvent, error) {
	var response []FundingEvent
	if err := c.do(ctx, InfoRequest{Type: "fundingHistory", Req: req}, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// UserState returns the clearinghouse state for the given address as an
// opaque payload: the gateway passes it through unmodified.
func (c *Client) UserState(ctx context.Context, address string) (json.RawMessage, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	var response json.RawMessage
	if err := c.do(ctx, InfoRequest{
		Type: "clearinghouseState",
		User: common.HexToAddress(address).Hex(),
	}, &response); err != nil {
		return nil, err
	}
	if len(response) == 0 || bytes.Equal(response, []byte("null")) {
		return nil, fmt.Errorf("%w: empty clearinghouseState", ErrMalformedResponse)
	}
	return response, nil
}
