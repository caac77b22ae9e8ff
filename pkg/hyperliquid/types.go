package hyperliquid

import (
	"encoding/json"
	"fmt"
)

// InfoRequest is the shared envelope for Hyperliquid info endpoint requests.
type InfoRequest struct {
	Type string      `json:"type"`
	User string      `json:"user,omitempty"`
	Req  interface{} `json:"req,omitempty"`
}

// AllMidsResponse maps symbols to their current mid prices.
type AllMidsResponse map[string]string

// CandleSnapshotRequest carries parameters for the candleSnapshot request.
type CandleSnapshotRequest struct {
	Coin      string `json:"coin"`
	Interval  string `json:"interval"` // e.g. "1m", "1h", "1d"
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
}

// RawCandle mirrors one candleSnapshot bar. Numeric fields stay strings so
// a single bad field cannot abort the decode of the whole series; parsing
// happens during normalization.
type RawCandle struct {
	OpenTime  int64  `json:"t"` // Open timestamp (ms)
	CloseTime int64  `json:"T"` // Close timestamp (ms)
	Symbol    string `json:"s"`
	Interval  string `json:"i"`
	Open      string `json:"o"`
	Close     string `json:"c"`
	High      string `json:"h"`
	Low       string `json:"l"`
	Volume    string `json:"v"`
}

// L2BookRequest carries parameters for the l2Book request.
type L2BookRequest struct {
	Coin     string `json:"coin"`
	NSigFigs int    `json:"nSigFigs,omitempty"`
}

// RawBookLevel is one (price, size) entry of an order book side.
type RawBookLevel struct {
	Px string `json:"px"`
	Sz string `json:"sz"`
	N  int    `json:"n"`
}

// L2BookResponse holds both sides of the book: Levels[0] bids, Levels[1] asks,
// each ordered best to worst.
type L2BookResponse struct {
	Coin   string           `json:"coin"`
	Time   int64            `json:"time"`
	Levels [][]RawBookLevel `json:"levels"`
}

// FundingHistoryRequest carries parameters for the fundingHistory request.
type FundingHistoryRequest struct {
	Coin      string `json:"coin"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime,omitempty"`
}

// FundingEvent is one historical funding settlement.
type FundingEvent struct {
	Coin        string `json:"coin"`
	FundingRate string `json:"fundingRate"`
	Premium     string `json:"premium"`
	Time        int64  `json:"time"`
}

// UniverseEntry enumerates tradable assets on Hyperliquid.
type UniverseEntry struct {
	Name          string  `json:"name"`
	SzDecimals    int     `json:"szDecimals"`
	MaxLeverage   float64 `json:"maxLeverage"`
	MarginTableID int     `json:"marginTableId"`
	IsDelisted    bool    `json:"isDelisted"`
	OnlyIsolated  bool    `json:"onlyIsolated"`
}

// MetaResponse contains high level instrument metadata.
type MetaResponse struct {
	Universe []UniverseEntry `json:"universe"`
}

// AssetCtx holds per-symbol market context such as funding and open interest.
// All numeric fields arrive as text and any may be absent.
type AssetCtx struct {
	Coin         string   `json:"coin"`
	Funding      string   `json:"funding"`
	OpenInterest string   `json:"openInterest"`
	PrevDayPx    string   `json:"prevDayPx"`
	DayNtlVlm    string   `json:"dayNtlVlm"`
	DayBaseVlm   string   `json:"dayBaseVlm"`
	Premium      string   `json:"premium"`
	IndexPx      string   `json:"indexPx"`
	OraclePx     string   `json:"oraclePx"`
	MarkPx       string   `json:"markPx"`
	MidPx        string   `json:"midPx"`
	ImpactPxs    []string `json:"impactPxs"`
}

// MetaAndAssetCtxsResponse contains market meta data and per-asset contexts.
// Contexts are positionally aligned with the universe list; when an entry's
// coin field is empty it is backfilled from the universe name.
type MetaAndAssetCtxsResponse struct {
	Universe  []UniverseEntry
	AssetCtxs []AssetCtx
}

// UnmarshalJSON customises parsing to accommodate both documented and live API payloads.
func (m *MetaAndAssetCtxsResponse) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch len(raw) {
	case 0:
		return fmt.Errorf("unexpected metaAndAssetCtxs payload: empty array")
	case 1:
		var meta struct {
			Universe  []UniverseEntry `json:"universe"`
			AssetCtxs []AssetCtx      `json:"assetCtxs"`
		}
		if err := json.Unmarshal(raw[0], &meta); err != nil {
			return err
		}
		m.Universe = meta.Universe
		m.AssetCtxs = meta.AssetCtxs
	default:
		var meta struct {
			Universe []UniverseEntry `json:"universe"`
		}
		if err := json.Unmarshal(raw[0], &meta); err != nil {
			return err
		}
		var assetCtxs []AssetCtx
		if err := json.Unmarshal(raw[1], &assetCtxs); err != nil {
			return err
		}
		m.Universe = meta.Universe
		m.AssetCtxs = assetCtxs
	}
	m.backfillCoins()
	return nil
}

func (m *MetaAndAssetCtxsResponse) backfillCoins() {
	for i := range m.AssetCtxs {
		if m.AssetCtxs[i].Coin == "" && i < len(m.Universe) {
			m.AssetCtxs[i].Coin = m.Universe[i].Name
		}
	}
}
