package quote

import (
	"fmt"
	"math"
	"time"

	"ghostx-api/pkg/market"
)

const (
	// takerFeeRate is the flat taker rate applied to the notional size.
	// It is an engine constant, not derived from upstream data.
	takerFeeRate = 0.00035
	// maintenanceFraction is the fixed margin fraction used by the
	// conservative liquidation price approximation.
	maintenanceFraction = 0.95

	// MinLeverage and MaxLeverage bound accepted leverage values.
	MinLeverage = 1
	MaxLeverage = 100
)

// Request describes one quote computation: symbol, direction, notional size
// in quote currency and integer leverage.
type Request struct {
	Symbol   string
	IsBuy    bool
	SizeUSD  float64
	Leverage int
}

// Side returns the wire representation of the request direction.
func (r Request) Side() string {
	if r.IsBuy {
		return "buy"
	}
	return "sell"
}

// Validate enforces the structural invariants shared with order intake.
func (r Request) Validate() error {
	if r.SizeUSD <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSize, r.SizeUSD)
	}
	if r.Leverage < MinLeverage || r.Leverage > MaxLeverage {
		return fmt.Errorf("%w: got %d", ErrInvalidLeverage, r.Leverage)
	}
	return nil
}

// Quote is the derived, ephemeral result of a quote computation. It is never
// persisted and is valid only for the instant it was computed.
type Quote struct {
	Symbol                string  `json:"symbol"`
	Side                  string  `json:"side"`
	SizeUSD               float64 `json:"size_usd"`
	Leverage              int     `json:"leverage"`
	EstimatedPrice        float64 `json:"estimated_price"`
	MarkPrice             float64 `json:"mark_price"`
	EstimatedFee          float64 `json:"estimated_fee"`
	TotalCost             float64 `json:"total_cost"`
	PositionValue         float64 `json:"position_value"`
	PositionSizeCoins     float64 `json:"position_size_coins"`
	LiquidationPrice      float64 `json:"liquidation_price"`
	FundingRate           float64 `json:"funding_rate"`
	FundingRateAnnualized float64 `json:"funding_rate_annualized"`
	Timestamp             int64   `json:"timestamp"`
}

// Compute derives a quote from the snapshot. It is a pure function of its
// inputs: chained calculations run at full precision and rounding happens
// only at the output boundary. Leverage bounds are enforced before any
// division so an invalid request can never surface as an arithmetic fault.
func Compute(snapshot *market.Snapshot, req Request, now time.Time) (*Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// A zero or missing price must never silently produce a zero-cost quote.
	inst, ok := snapshot.Instrument(req.Symbol)
	if !ok || inst.MidPrice <= 0 {
		return nil, fmt.Errorf("%w: %s", market.ErrSymbolNotFound, req.Symbol)
	}
	price := inst.MidPrice

	mark := inst.MarkPrice
	if mark <= 0 {
		mark = price
	}

	fee := req.SizeUSD * takerFeeRate
	marginRatio := (1 / float64(req.Leverage)) * maintenanceFraction
	var liquidation float64
	if req.IsBuy {
		liquidation = price * (1 - marginRatio)
	} else {
		liquidation = price * (1 + marginRatio)
	}

	annualized := inst.FundingRate * 24 * 365

	return &Quote{
		Symbol:                req.Symbol,
		Side:                  req.Side(),
		SizeUSD:               req.SizeUSD,
		Leverage:              req.Leverage,
		EstimatedPrice:        price,
		MarkPrice:             mark,
		EstimatedFee:          roundTo(fee, 6),
		TotalCost:             roundTo(req.SizeUSD+fee, 6),
		PositionValue:         roundTo(req.SizeUSD*float64(req.Leverage), 2),
		PositionSizeCoins:     roundTo(req.SizeUSD/price, 8),
		LiquidationPrice:      roundTo(liquidation, 2),
		FundingRate:           inst.FundingRate,
		FundingRateAnnualized: roundTo(annualized, 4),
		Timestamp:             now.UnixMilli(),
	}, nil
}

func roundTo(val float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(val*factor) / factor
}
