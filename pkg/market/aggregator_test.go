package market

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostx-api/pkg/hyperliquid"
)

// fakeUpstream implements Upstream with per-method function hooks.
type fakeUpstream struct {
	allMids          func(ctx context.Context) (hyperliquid.AllMidsResponse, error)
	meta             func(ctx context.Context) (*hyperliquid.MetaResponse, error)
	metaAndAssetCtxs func(ctx context.Context) (*hyperliquid.MetaAndAssetCtxsResponse, error)
	candleSnapshot   func(ctx context.Context, req hyperliquid.CandleSnapshotRequest) ([]hyperliquid.RawCandle, error)
	l2Book           func(ctx context.Context, req hyperliquid.L2BookRequest) (*hyperliquid.L2BookResponse, error)
	fundingHistory   func(ctx context.Context, req hyperliquid.FundingHistoryRequest) ([]hyperliquid.FundingEvent, error)
	userState        func(ctx context.Context, address string) (json.RawMessage, error)
}

func (f *fakeUpstream) AllMids(ctx context.Context) (hyperliquid.AllMidsResponse, error) {
	return f.allMids(ctx)
}

func (f *fakeUpstream) Meta(ctx context.Context) (*hyperliquid.MetaResponse, error) {
	return f.meta(ctx)
}

func (f *fakeUpstream) MetaAndAssetCtxs(ctx context.Context) (*hyperliquid.MetaAndAssetCtxsResponse, error) {
	return f.metaAndAssetCtxs(ctx)
}

func (f *fakeUpstream) CandleSnapshot(ctx context.Context, req hyperliquid.CandleSnapshotRequest) ([]hyperliquid.RawCandle, error) {
	return f.candleSnapshot(ctx, req)
}

func (f *fakeUpstream) L2Book(ctx context.Context, req hyperliquid.L2BookRequest) (*hyperliquid.L2BookResponse, error) {
	return f.l2Book(ctx, req)
}

func (f *fakeUpstream) FundingHistory(ctx context.Context, req hyperliquid.FundingHistoryRequest) ([]hyperliquid.FundingEvent, error) {
	return f.fundingHistory(ctx, req)
}

func (f *fakeUpstream) UserState(ctx context.Context, address string) (json.RawMessage, error) {
	return f.userState(ctx, address)
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestSnapshot_MergesMidsAndContexts(t *testing.T) {
	upstream := &fakeUpstream{
		allMids: func(context.Context) (hyperliquid.AllMidsResponse, error) {
			return hyperliquid.AllMidsResponse{"BTC": "67123.5", "ETH": "3123.45"}, nil
		},
		metaAndAssetCtxs: func(context.Context) (*hyperliquid.MetaAndAssetCtxsResponse, error) {
			return &hyperliquid.MetaAndAssetCtxsResponse{
				Universe: []hyperliquid.UniverseEntry{{Name: "BTC"}, {Name: "SOL"}},
				AssetCtxs: []hyperliquid.AssetCtx{
					{Coin: "BTC", MarkPx: "67120", PrevDayPx: "66000", Funding: "0.0000125"},
					{Coin: "SOL", MidPx: "145.25", MarkPx: "145.2"},
				},
			}, nil
		},
	}
	agg := NewAggregator(upstream, WithClock(fixedClock(1700000000000)))

	snap, err := agg.Snapshot(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.Partial)
	assert.Equal(t, time.UnixMilli(1700000000000), snap.Time)

	btc, ok := snap.Instrument("BTC")
	require.True(t, ok)
	assert.Equal(t, 67123.5, btc.MidPrice)
	assert.Equal(t, 67120.0, btc.MarkPrice)
	assert.True(t, btc.HasContext)

	// ETH had no context; derived fields fall back to mid.
	eth, ok := snap.Instrument("ETH")
	require.True(t, ok)
	assert.Equal(t, 3123.45, eth.MarkPrice)
	assert.False(t, eth.HasContext)

	// SOL appeared only in the context dataset; its mid comes from midPx.
	sol, ok := snap.Instrument("SOL")
	require.True(t, ok)
	assert.Equal(t, 145.25, sol.MidPrice)
}

func TestSnapshot_ContextFailureIsPartial(t *testing.T) {
	upstream := &fakeUpstream{
		allMids: func(context.Context) (hyperliquid.AllMidsResponse, error) {
			return hyperliquid.AllMidsResponse{"BTC": "67123.5"}, nil
		},
		metaAndAssetCtxs: func(context.Context) (*hyperliquid.MetaAndAssetCtxsResponse, error) {
			return nil, &hyperliquid.StatusError{Status: 500, Body: "boom"}
		},
	}
	agg := NewAggregator(upstream)

	snap, err := agg.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Partial)

	btc, ok := snap.Instrument("BTC")
	require.True(t, ok)
	assert.Equal(t, 67123.5, btc.MidPrice)
	assert.Equal(t, 67123.5, btc.MarkPrice)
	assert.Equal(t, 0.0, btc.Change24h)
	assert.False(t, btc.HasContext)
}

func TestSnapshot_MidsFailureServesContexts(t *testing.T) {
	upstream := &fakeUpstream{
		allMids: func(context.Context) (hyperliquid.AllMidsResponse, error) {
			return nil, hyperliquid.ErrUnreachable
		},
		metaAndAssetCtxs: func(context.Context) (*hyperliquid.MetaAndAssetCtxsResponse, error) {
			return &hyperliquid.MetaAndAssetCtxsResponse{
				Universe:  []hyperliquid.UniverseEntry{{Name: "BTC"}},
				AssetCtxs: []hyperliquid.AssetCtx{{Coin: "BTC", MidPx: "67123.5", MarkPx: "67120"}},
			}, nil
		},
	}
	agg := NewAggregator(upstream)

	snap, err := agg.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Partial)

	btc, ok := snap.Instrument("BTC")
	require.True(t, ok)
	assert.Equal(t, 67123.5, btc.MidPrice)
}

func TestSnapshot_BothQueriesFail(t *testing.T) {
	upstream := &fakeUpstream{
		allMids: func(context.Context) (hyperliquid.AllMidsResponse, error) {
			return nil, hyperliquid.ErrUnreachable
		},
		metaAndAssetCtxs: func(context.Context) (*hyperliquid.MetaAndAssetCtxsResponse, error) {
			return nil, &hyperliquid.StatusError{Status: 502, Body: "bad gateway"}
		},
	}
	agg := NewAggregator(upstream)

	_, err := agg.Snapshot(context.Background())
	require.ErrorIs(t, err, hyperliquid.ErrUnreachable)
}

func TestCandles_WindowAndTrim(t *testing.T) {
	var captured hyperliquid.CandleSnapshotRequest
	upstream := &fakeUpstream{
		candleSnapshot: func(_ context.Context, req hyperliquid.CandleSnapshotRequest) ([]hyperliquid.RawCandle, error) {
			captured = req
			return []hyperliquid.RawCandle{
				{OpenTime: 3000, Open: "3", High: "3", Low: "3", Close: "3", Volume: "3"},
				{OpenTime: 1000, Open: "1", High: "1", Low: "1", Close: "1", Volume: "1"},
				{OpenTime: 2000, Open: "2", High: "2", Low: "2", Close: "2", Volume: "2"},
			}, nil
		},
	}
	agg := NewAggregator(upstream, WithClock(fixedClock(1700000000000)))

	candles, err := agg.Candles(context.Background(), "BTC", "1h", 2)
	require.NoError(t, err)

	assert.Equal(t, "BTC", captured.Coin)
	assert.Equal(t, "1h", captured.Interval)
	assert.Equal(t, int64(1700000000000), captured.EndTime)
	assert.Equal(t, int64(1700000000000-2*3_600_000), captured.StartTime)

	// Trimmed to the most recent 2 bars, ascending.
	require.Len(t, candles, 2)
	assert.Equal(t, int64(2000), candles[0].Time)
	assert.Equal(t, int64(3000), candles[1].Time)
}

func TestCandles_DefaultsIntervalAndLimit(t *testing.T) {
	var captured hyperliquid.CandleSnapshotRequest
	upstream := &fakeUpstream{
		candleSnapshot: func(_ context.Context, req hyperliquid.CandleSnapshotRequest) ([]hyperliquid.RawCandle, error) {
			captured = req
			return nil, nil
		},
	}
	agg := NewAggregator(upstream, WithClock(fixedClock(1700000000000)))

	_, err := agg.Candles(context.Background(), "ETH", "bogus", 0)
	require.NoError(t, err)
	assert.Equal(t, "1h", captured.Interval)
	assert.Equal(t, int64(1700000000000-100*3_600_000), captured.StartTime)
}

func TestCandles_RequiresSymbol(t *testing.T) {
	agg := NewAggregator(&fakeUpstream{})
	_, err := agg.Candles(context.Background(), "", "1h", 10)
	require.Error(t, err)
}

func TestOrderbook_TruncatesAndStampsTime(t *testing.T) {
	levels := make([]hyperliquid.RawBookLevel, 0, 30)
	for i := 0; i < 30; i++ {
		levels = append(levels, hyperliquid.RawBookLevel{Px: "100", Sz: "1"})
	}
	upstream := &fakeUpstream{
		l2Book: func(_ context.Context, req hyperliquid.L2BookRequest) (*hyperliquid.L2BookResponse, error) {
			return &hyperliquid.L2BookResponse{
				Coin:   req.Coin,
				Levels: [][]hyperliquid.RawBookLevel{levels, levels},
			}, nil
		},
	}
	agg := NewAggregator(upstream, WithClock(fixedClock(1700000000000)))

	book, err := agg.Orderbook(context.Background(), "BTC", 5)
	require.NoError(t, err)
	assert.Len(t, book.Bids, BookDepth)
	assert.Len(t, book.Asks, BookDepth)
	// Upstream omitted the book time; the clock fills it.
	assert.Equal(t, int64(1700000000000), book.Time)
}

func TestFundingHistory_DefaultWindow(t *testing.T) {
	var captured hyperliquid.FundingHistoryRequest
	upstream := &fakeUpstream{
		fundingHistory: func(_ context.Context, req hyperliquid.FundingHistoryRequest) ([]hyperliquid.FundingEvent, error) {
			captured = req
			return []hyperliquid.FundingEvent{
				{Coin: "BTC", FundingRate: "0.0000125", Time: 1699999000000},
			}, nil
		},
	}
	agg := NewAggregator(upstream, WithClock(fixedClock(1700000000000)))

	records, err := agg.FundingHistory(context.Background(), "BTC", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, int64(1700000000000), captured.EndTime)
	assert.Equal(t, int64(1700000000000-24*3_600_000), captured.StartTime)
}

func TestAggregator_Options(t *testing.T) {
	agg := NewAggregator(&fakeUpstream{},
		WithTimeout(3*time.Second),
		WithTracked([]string{"BTC", "DOGE"}),
	)
	assert.Equal(t, 3*time.Second, agg.timeout)
	assert.Equal(t, []string{"BTC", "DOGE"}, agg.Tracked())

	// Zero values do not override defaults.
	agg = NewAggregator(&fakeUpstream{}, WithTimeout(0), WithTracked(nil))
	assert.Equal(t, defaultQueryTimeout, agg.timeout)
	assert.Equal(t, DefaultTracked, agg.Tracked())
}
