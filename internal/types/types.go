package types

import "encoding/json"

type ServiceInfoResp struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Venue   string `json:"venue"`
	Mode    string `json:"mode"`
}

type HealthResp struct {
	Status   string   `json:"status"`
	Upstream string   `json:"upstream"`
	BTCPrice *float64 `json:"btc_price,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type PriceEntry struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
}

type PricesResp struct {
	Prices map[string]PriceEntry `json:"prices"`
	// Partial marks that derived fields fell back to defaults because a
	// secondary upstream query failed.
	Partial bool `json:"partial,omitempty"`
}

type CandlesReq struct {
	Symbol   string `path:"symbol"`
	Interval string `form:"interval,default=1h"`
	Limit    int    `form:"limit,default=100"`
}

type CandleBar struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type CandlesResp struct {
	Symbol   string      `json:"symbol"`
	Interval string      `json:"interval"`
	Candles  []CandleBar `json:"candles"`
}

type OrderbookReq struct {
	Symbol   string `path:"symbol"`
	NSigFigs int    `form:"n_sig_figs,default=5"`
}

type BookLevel struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

type OrderbookResp struct {
	Symbol    string      `json:"symbol"`
	Bids      []BookLevel `json:"bids"`
	Asks      []BookLevel `json:"asks"`
	Timestamp int64       `json:"timestamp"`
}

type QuoteReq struct {
	Symbol   string  `json:"symbol"`
	IsBuy    bool    `json:"is_buy"`
	SizeUSD  float64 `json:"size_usd"`
	Leverage int     `json:"leverage"`
}

type QuoteResp struct {
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

type SubmitReq struct {
	Symbol      string          `json:"symbol"`
	IsBuy       bool            `json:"is_buy"`
	SizeUSD     float64         `json:"size_usd"`
	Leverage    int             `json:"leverage"`
	UserAddress string          `json:"user_address"`
	Signature   json.RawMessage `json:"signature"`
	Timestamp   int64           `json:"timestamp"`
}

type OrderDetails struct {
	Symbol    string  `json:"symbol"`
	Side      string  `json:"side"`
	SizeUSD   float64 `json:"size_usd"`
	Leverage  int     `json:"leverage"`
	User      string  `json:"user"`
	Timestamp int64   `json:"timestamp"`
}

type SubmitResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Execution stays "pending" until a real settlement path reports a
	// fill; the gateway never fabricates an execution price.
	Execution string       `json:"execution"`
	Details   OrderDetails `json:"details"`
}

type MarketSummaryReq struct {
	Symbol string `path:"symbol"`
}

type MarketSummaryResp struct {
	Symbol       string  `json:"symbol"`
	MidPrice     float64 `json:"mid_price"`
	MarkPrice    float64 `json:"mark_price"`
	IndexPrice   float64 `json:"index_price"`
	OraclePrice  float64 `json:"oracle_price"`
	PrevDayPrice float64 `json:"prev_day_price"`
	Change24h    float64 `json:"change_24h"`
	FundingRate  float64 `json:"funding_rate"`
	OpenInterest float64 `json:"open_interest"`
	DayVolume    float64 `json:"day_ntl_vlm"`
	Premium      float64 `json:"premium"`
	Partial      bool    `json:"partial,omitempty"`
	Timestamp    int64   `json:"timestamp"`
}

type FundingHistoryReq struct {
	Symbol string `path:"symbol"`
	Start  int64  `form:"start,default=0"`
	End    int64  `form:"end,default=0"`
}

type FundingEvent struct {
	Time    int64   `json:"time"`
	Rate    float64 `json:"funding_rate"`
	Premium float64 `json:"premium"`
}

type FundingHistoryResp struct {
	Symbol string         `json:"symbol"`
	Events []FundingEvent `json:"events"`
}

type UserStateReq struct {
	Address string `path:"address"`
}
