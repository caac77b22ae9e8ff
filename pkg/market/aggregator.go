package market

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/pkg/hyperliquid"
)

const defaultQueryTimeout = 8 * time.Second

// DefaultTracked is the symbol set served by price listings when the
// configuration does not override it.
var DefaultTracked = []string{"BTC", "ETH", "SOL", "HYPE"}

// Upstream abstracts the venue info client so aggregation logic can be
// exercised against a substitute transport in tests.
type Upstream interface {
	AllMids(ctx context.Context) (hyperliquid.AllMidsResponse, error)
	Meta(ctx context.Context) (*hyperliquid.MetaResponse, error)
	MetaAndAssetCtxs(ctx context.Context) (*hyperliquid.MetaAndAssetCtxsResponse, error)
	CandleSnapshot(ctx context.Context, req hyperliquid.CandleSnapshotRequest) ([]hyperliquid.RawCandle, error)
	L2Book(ctx context.Context, req hyperliquid.L2BookRequest) (*hyperliquid.L2BookResponse, error)
	FundingHistory(ctx context.Context, req hyperliquid.FundingHistoryRequest) ([]hyperliquid.FundingEvent, error)
	UserState(ctx context.Context, address string) (json.RawMessage, error)
}

// Aggregator issues the upstream queries an operation needs, normalizes each
// payload and merges the results into one consistent view. It holds no
// mutable state between requests; every operation fetches fresh data.
type Aggregator struct {
	upstream Upstream
	timeout  time.Duration
	tracked  []string
	clock    func() time.Time
}

// AggregatorOption customises a new Aggregator.
type AggregatorOption func(*Aggregator)

// WithTimeout overrides the per-query timeout.
func WithTimeout(timeout time.Duration) AggregatorOption {
	return func(a *Aggregator) {
		if timeout > 0 {
			a.timeout = timeout
		}
	}
}

// WithTracked overrides the tracked symbol list.
func WithTracked(symbols []string) AggregatorOption {
	return func(a *Aggregator) {
		if len(symbols) > 0 {
			a.tracked = append([]string(nil), symbols...)
		}
	}
}

// WithClock overrides the time source (primarily for testing).
func WithClock(clock func() time.Time) AggregatorOption {
	return func(a *Aggregator) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// NewAggregator constructs an Aggregator over the given upstream.
func NewAggregator(upstream Upstream, opts ...AggregatorOption) *Aggregator {
	agg := &Aggregator{
		upstream: upstream,
		timeout:  defaultQueryTimeout,
		tracked:  DefaultTracked,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(agg)
	}
	return agg
}

// Tracked returns the configured symbol list.
func (a *Aggregator) Tracked() []string {
	return append([]string(nil), a.tracked...)
}

// Snapshot fetches mid prices and asset contexts concurrently and merges
// them by exact symbol. Both queries settle before merging. If only the
// context query fails, the snapshot is still produced from mids with
// derived fields defaulted and Partial set; if both fail, the mids failure
// is surfaced as the classified error.
func (a *Aggregator) Snapshot(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		mids    hyperliquid.AllMidsResponse
		midsErr error
		meta    *hyperliquid.MetaAndAssetCtxsResponse
		metaErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		mids, midsErr = a.upstream.AllMids(ctx)
	}()
	go func() {
		defer wg.Done()
		meta, metaErr = a.upstream.MetaAndAssetCtxs(ctx)
	}()
	wg.Wait()

	if midsErr != nil && metaErr != nil {
		return nil, midsErr
	}

	ctxBySymbol := make(map[string]*hyperliquid.AssetCtx)
	if metaErr != nil {
		logx.WithContext(ctx).Errorf("market: asset context query failed, serving mids only: %v", metaErr)
	} else if meta != nil {
		for i := range meta.AssetCtxs {
			entry := &meta.AssetCtxs[i]
			if entry.Coin != "" {
				ctxBySymbol[entry.Coin] = entry
			}
		}
	}
	if midsErr != nil {
		logx.WithContext(ctx).Errorf("market: mid price query failed, serving contexts only: %v", midsErr)
	}

	instruments := make(map[string]Instrument, len(mids))
	for symbol, mid := range mids {
		instruments[symbol] = NormalizeInstrument(symbol, mid, ctxBySymbol[symbol])
	}
	// Instruments present only in the context dataset still get a record;
	// their mid resolves from the context's own mid price.
	for symbol, assetCtx := range ctxBySymbol {
		if _, ok := instruments[symbol]; !ok {
			instruments[symbol] = NormalizeInstrument(symbol, "", assetCtx)
		}
	}

	return &Snapshot{
		Instruments: instruments,
		Partial:     midsErr != nil || metaErr != nil,
		Time:        a.clock(),
	}, nil
}

// Candles fetches and normalizes an ascending candle series. Unrecognized
// interval tokens default to 1h; the series is trimmed to the most recent
// limit bars after sorting.
func (a *Aggregator) Candles(ctx context.Context, symbol, interval string, limit int) ([]Candle, error) {
	if symbol == "" {
		return nil, fmt.Errorf("market: symbol is required")
	}
	if limit <= 0 {
		limit = 100
	}
	token, intervalMs := ResolveInterval(interval)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	end := a.clock().UnixMilli()
	start := end - intervalMs*int64(limit)
	raw, err := a.upstream.CandleSnapshot(ctx, hyperliquid.CandleSnapshotRequest{
		Coin:      symbol,
		Interval:  token,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		return nil, err
	}
	candles := NormalizeCandles(raw)
	if len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}
	return candles, nil
}

// Orderbook fetches the book at the given significant-figure precision and
// truncates both sides to BookDepth levels.
func (a *Aggregator) Orderbook(ctx context.Context, symbol string, nSigFigs int) (*Orderbook, error) {
	if symbol == "" {
		return nil, fmt.Errorf("market: symbol is required")
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	raw, err := a.upstream.L2Book(ctx, hyperliquid.L2BookRequest{Coin: symbol, NSigFigs: nSigFigs})
	if err != nil {
		return nil, err
	}
	book := NormalizeBook(symbol, raw)
	if book.Time == 0 {
		book.Time = a.clock().UnixMilli()
	}
	return &book, nil
}

// FundingHistory fetches and normalizes funding settlements for the window.
// A zero end time means "up to now".
func (a *Aggregator) FundingHistory(ctx context.Context, symbol string, start, end int64) ([]FundingRecord, error) {
	if symbol == "" {
		return nil, fmt.Errorf("market: symbol is required")
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if end <= 0 {
		end = a.clock().UnixMilli()
	}
	if start <= 0 {
		start = end - 24*int64(time.Hour/time.Millisecond)
	}
	events, err := a.upstream.FundingHistory(ctx, hyperliquid.FundingHistoryRequest{
		Coin:      symbol,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		return nil, err
	}
	return NormalizeFunding(events), nil
}

// Meta returns the venue instrument metadata unmodified.
func (a *Aggregator) Meta(ctx context.Context) (*hyperliquid.MetaResponse, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.upstream.Meta(ctx)
}

// UserState returns the opaque account record for an address.
func (a *Aggregator) UserState(ctx context.Context, address string) (json.RawMessage, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.upstream.UserState(ctx, address)
}

func (a *Aggregator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, a.timeout)
}
