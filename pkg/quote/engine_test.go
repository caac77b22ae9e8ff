package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostx-api/pkg/market"
)

func snapshotWith(instruments ...market.Instrument) *market.Snapshot {
	byName := make(map[string]market.Instrument, len(instruments))
	for _, inst := range instruments {
		byName[inst.Symbol] = inst
	}
	return &market.Snapshot{Instruments: byName, Time: time.UnixMilli(1700000000000)}
}

func TestCompute_BuyQuote(t *testing.T) {
	snap := snapshotWith(market.Instrument{
		Symbol:      "BTC",
		MidPrice:    50000,
		MarkPrice:   50010,
		FundingRate: 0.0000125,
		HasContext:  true,
	})
	now := time.UnixMilli(1700000000000)

	q, err := Compute(snap, Request{Symbol: "BTC", IsBuy: true, SizeUSD: 1000, Leverage: 10}, now)
	require.NoError(t, err)

	assert.Equal(t, "BTC", q.Symbol)
	assert.Equal(t, "buy", q.Side)
	assert.Equal(t, 50000.0, q.EstimatedPrice)
	assert.Equal(t, 50010.0, q.MarkPrice)
	// 1000 * 0.00035
	assert.Equal(t, 0.35, q.EstimatedFee)
	assert.Equal(t, 1000.35, q.TotalCost)
	assert.Equal(t, 10000.0, q.PositionValue)
	// 1000 / 50000
	assert.Equal(t, 0.02, q.PositionSizeCoins)
	// 50000 * (1 - (1/10)*0.95) = 50000 * 0.905
	assert.Equal(t, 45250.0, q.LiquidationPrice)
	assert.Equal(t, 0.0000125, q.FundingRate)
	// 0.0000125 * 24 * 365 = 0.1095
	assert.Equal(t, 0.1095, q.FundingRateAnnualized)
	assert.Equal(t, int64(1700000000000), q.Timestamp)
}

func TestCompute_SellLiquidationAboveEntry(t *testing.T) {
	snap := snapshotWith(market.Instrument{Symbol: "ETH", MidPrice: 3000, MarkPrice: 3000})

	q, err := Compute(snap, Request{Symbol: "ETH", IsBuy: false, SizeUSD: 500, Leverage: 5}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "sell", q.Side)
	// 3000 * (1 + (1/5)*0.95) = 3000 * 1.19
	assert.Equal(t, 3570.0, q.LiquidationPrice)
	assert.Greater(t, q.LiquidationPrice, q.EstimatedPrice)
}

func TestCompute_LeverageOneExtremes(t *testing.T) {
	snap := snapshotWith(market.Instrument{Symbol: "BTC", MidPrice: 100, MarkPrice: 100})

	buy, err := Compute(snap, Request{Symbol: "BTC", IsBuy: true, SizeUSD: 100, Leverage: 1}, time.Now())
	require.NoError(t, err)
	// 100 * (1 - 0.95)
	assert.Equal(t, 5.0, buy.LiquidationPrice)

	sell, err := Compute(snap, Request{Symbol: "BTC", IsBuy: false, SizeUSD: 100, Leverage: 1}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 195.0, sell.LiquidationPrice)
}

func TestCompute_FeeRounding(t *testing.T) {
	snap := snapshotWith(market.Instrument{Symbol: "BTC", MidPrice: 50000, MarkPrice: 50000})

	q, err := Compute(snap, Request{Symbol: "BTC", IsBuy: true, SizeUSD: 123.456789, Leverage: 2}, time.Now())
	require.NoError(t, err)
	// 123.456789 * 0.00035 = 0.04320987615, rounded to 6dp.
	assert.Equal(t, 0.04321, q.EstimatedFee)
	assert.Equal(t, 123.499999, q.TotalCost)
}

func TestCompute_FundingAnnualization(t *testing.T) {
	snap := snapshotWith(market.Instrument{Symbol: "ETH", MidPrice: 3000, FundingRate: 0.0001})

	q, err := Compute(snap, Request{Symbol: "ETH", IsBuy: true, SizeUSD: 100, Leverage: 2}, time.Now())
	require.NoError(t, err)
	// 0.0001 * 24 * 365
	assert.Equal(t, 0.876, q.FundingRateAnnualized)
}

func TestCompute_MarkFallsBackToMid(t *testing.T) {
	snap := snapshotWith(market.Instrument{Symbol: "SOL", MidPrice: 145.25})

	q, err := Compute(snap, Request{Symbol: "SOL", IsBuy: true, SizeUSD: 100, Leverage: 3}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 145.25, q.MarkPrice)
}

func TestCompute_UnknownSymbol(t *testing.T) {
	snap := snapshotWith(market.Instrument{Symbol: "BTC", MidPrice: 50000})

	_, err := Compute(snap, Request{Symbol: "XYZ", IsBuy: true, SizeUSD: 100, Leverage: 2}, time.Now())
	require.ErrorIs(t, err, market.ErrSymbolNotFound)
}

func TestCompute_ZeroPriceNeverQuotes(t *testing.T) {
	// A symbol that resolved to no usable price must not yield a zero-cost quote.
	snap := snapshotWith(market.Instrument{Symbol: "NEW", MidPrice: 0})

	_, err := Compute(snap, Request{Symbol: "NEW", IsBuy: true, SizeUSD: 100, Leverage: 2}, time.Now())
	require.ErrorIs(t, err, market.ErrSymbolNotFound)
}

func TestCompute_RejectsBadRequests(t *testing.T) {
	snap := snapshotWith(market.Instrument{Symbol: "BTC", MidPrice: 50000})

	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"zero size", Request{Symbol: "BTC", SizeUSD: 0, Leverage: 5}, ErrInvalidSize},
		{"negative size", Request{Symbol: "BTC", SizeUSD: -10, Leverage: 5}, ErrInvalidSize},
		{"zero leverage", Request{Symbol: "BTC", SizeUSD: 100, Leverage: 0}, ErrInvalidLeverage},
		{"negative leverage", Request{Symbol: "BTC", SizeUSD: 100, Leverage: -1}, ErrInvalidLeverage},
		{"excessive leverage", Request{Symbol: "BTC", SizeUSD: 100, Leverage: 101}, ErrInvalidLeverage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(snap, tc.req, time.Now())
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCompute_LeverageBounds(t *testing.T) {
	snap := snapshotWith(market.Instrument{Symbol: "BTC", MidPrice: 50000})

	for _, leverage := range []int{MinLeverage, 50, MaxLeverage} {
		_, err := Compute(snap, Request{Symbol: "BTC", IsBuy: true, SizeUSD: 100, Leverage: leverage}, time.Now())
		assert.NoError(t, err, "leverage %d should be accepted", leverage)
	}
}
