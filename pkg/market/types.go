package market

import "time"

// Instrument is the canonical per-symbol market state after normalization.
// Price fields are non-negative; missing upstream fields resolve to the
// documented fallbacks instead of failing the record.
type Instrument struct {
	Symbol       string
	MidPrice     float64
	MarkPrice    float64 // falls back to MidPrice when absent
	IndexPrice   float64 // falls back to MarkPrice when absent
	OraclePrice  float64 // falls back to MarkPrice when absent
	PrevDayPrice float64
	Change24h    float64 // percent, 2dp; 0 unless PrevDayPrice > 0
	FundingRate  float64 // per funding interval (hourly), not annualized
	OpenInterest float64
	DayVolume    float64 // 24h notional volume
	Premium      float64
	HasContext   bool // false when the asset-context query yielded nothing for this symbol
}

// Snapshot is a per-request view of the market keyed by symbol.
// It is built fresh for every operation and immutable once constructed.
type Snapshot struct {
	Instruments map[string]Instrument
	// Partial marks that a secondary query failed and derived fields fell
	// back to defaults. It is advisory, not an error.
	Partial bool
	Time    time.Time
}

// Instrument looks up the canonical record for an exact symbol.
func (s *Snapshot) Instrument(symbol string) (Instrument, bool) {
	if s == nil {
		return Instrument{}, false
	}
	inst, ok := s.Instruments[symbol]
	return inst, ok
}

// Candle is one normalized OHLCV bar keyed by open time.
type Candle struct {
	Time   int64   `json:"time"` // open time, epoch ms
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// BookLevel is one (price, size) order book entry.
type BookLevel struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

// Orderbook holds both sides best-to-worst, truncated to BookDepth levels.
type Orderbook struct {
	Symbol string      `json:"symbol"`
	Bids   []BookLevel `json:"bids"`
	Asks   []BookLevel `json:"asks"`
	Time   int64       `json:"timestamp"`
}

// FundingRecord is one normalized funding settlement.
type FundingRecord struct {
	Time    int64   `json:"time"`
	Rate    float64 `json:"funding_rate"`
	Premium float64 `json:"premium"`
}

// BookDepth is the fixed number of levels exposed per order book side.
const BookDepth = 20
