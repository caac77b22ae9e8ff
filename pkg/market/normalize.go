package market

import (
	"math"
	"sort"
	"strconv"

	"ghostx-api/pkg/hyperliquid"
)

// parseField parses a text-encoded number, reporting whether it was usable.
// Empty strings, unparseable values and non-finite results count as absent.
func parseField(val string) (float64, bool) {
	if val == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parsePrice is parseField restricted to non-negative values.
func parsePrice(val string) (float64, bool) {
	f, ok := parseField(val)
	if !ok || f < 0 {
		return 0, false
	}
	return f, true
}

// NormalizeInstrument builds the canonical record for a symbol from its mid
// price string and optional asset context. A parse failure on any single
// field resolves to that field's fallback; the record is always emitted.
func NormalizeInstrument(symbol, mid string, ctx *hyperliquid.AssetCtx) Instrument {
	inst := Instrument{Symbol: symbol}
	inst.MidPrice, _ = parsePrice(mid)
	if ctx == nil {
		inst.MarkPrice = inst.MidPrice
		inst.IndexPrice = inst.MarkPrice
		inst.OraclePrice = inst.MarkPrice
		return inst
	}

	inst.HasContext = true
	if inst.MidPrice == 0 {
		inst.MidPrice, _ = parsePrice(ctx.MidPx)
	}
	if mark, ok := parsePrice(ctx.MarkPx); ok {
		inst.MarkPrice = mark
	} else {
		inst.MarkPrice = inst.MidPrice
	}
	if index, ok := parsePrice(ctx.IndexPx); ok {
		inst.IndexPrice = index
	} else {
		inst.IndexPrice = inst.MarkPrice
	}
	if oracle, ok := parsePrice(ctx.OraclePx); ok {
		inst.OraclePrice = oracle
	} else {
		inst.OraclePrice = inst.MarkPrice
	}
	inst.PrevDayPrice, _ = parsePrice(ctx.PrevDayPx)
	if inst.PrevDayPrice > 0 {
		inst.Change24h = roundTo((inst.MarkPrice-inst.PrevDayPrice)/inst.PrevDayPrice*100, 2)
	}
	inst.FundingRate, _ = parseField(ctx.Funding)
	inst.OpenInterest, _ = parseField(ctx.OpenInterest)
	inst.DayVolume, _ = parseField(ctx.DayNtlVlm)
	inst.Premium, _ = parseField(ctx.Premium)
	return inst
}

// NormalizeCandles converts raw bars into canonical candles. A bar missing or
// non-numeric in any OHLCV field is dropped entirely; the survivors are
// re-sorted ascending by open time since upstream ordering is not guaranteed.
func NormalizeCandles(raw []hyperliquid.RawCandle) []Candle {
	candles := make([]Candle, 0, len(raw))
	for _, item := range raw {
		open, okO := parseField(item.Open)
		high, okH := parseField(item.High)
		low, okL := parseField(item.Low)
		closePx, okC := parseField(item.Close)
		volume, okV := parseField(item.Volume)
		if !okO || !okH || !okL || !okC || !okV {
			continue
		}
		candles = append(candles, Candle{
			Time:   item.OpenTime,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePx,
			Volume: volume,
		})
	}
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Time < candles[j].Time
	})
	return candles
}

// NormalizeBook converts a raw l2Book payload, dropping unparseable levels
// and truncating each side to BookDepth entries in upstream (best-first) order.
func NormalizeBook(symbol string, book *hyperliquid.L2BookResponse) Orderbook {
	out := Orderbook{
		Symbol: symbol,
		Bids:   []BookLevel{},
		Asks:   []BookLevel{},
	}
	if book == nil {
		return out
	}
	out.Time = book.Time
	if len(book.Levels) > 0 {
		out.Bids = normalizeSide(book.Levels[0])
	}
	if len(book.Levels) > 1 {
		out.Asks = normalizeSide(book.Levels[1])
	}
	return out
}

func normalizeSide(levels []hyperliquid.RawBookLevel) []BookLevel {
	side := make([]BookLevel, 0, BookDepth)
	for _, level := range levels {
		price, okP := parsePrice(level.Px)
		size, okS := parseField(level.Sz)
		if !okP || !okS {
			continue
		}
		side = append(side, BookLevel{Price: price, Size: size})
		if len(side) == BookDepth {
			break
		}
	}
	return side
}

// NormalizeFunding converts raw funding events, dropping those without a
// parseable rate. Premium defaults to 0 when absent.
func NormalizeFunding(events []hyperliquid.FundingEvent) []FundingRecord {
	records := make([]FundingRecord, 0, len(events))
	for _, event := range events {
		rate, ok := parseField(event.FundingRate)
		if !ok {
			continue
		}
		premium, _ := parseField(event.Premium)
		records = append(records, FundingRecord{
			Time:    event.Time,
			Rate:    rate,
			Premium: premium,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Time < records[j].Time
	})
	return records
}

func roundTo(val float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(val*factor) / factor
}
