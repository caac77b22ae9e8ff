package market

// intervalMillis maps supported candle interval tokens to their fixed
// millisecond durations.
var intervalMillis = map[string]int64{
	"1m":  60_000,
	"3m":  180_000,
	"5m":  300_000,
	"15m": 900_000,
	"30m": 1_800_000,
	"1h":  3_600_000,
	"2h":  7_200_000,
	"4h":  14_400_000,
	"8h":  28_800_000,
	"12h": 43_200_000,
	"1d":  86_400_000,
	"3d":  259_200_000,
	"1w":  604_800_000,
	"1M":  2_592_000_000,
}

// DefaultInterval is used when an interval token is not recognized.
const DefaultInterval = "1h"

// ResolveInterval returns the canonical interval token and its duration in
// milliseconds, defaulting unrecognized tokens to DefaultInterval.
func ResolveInterval(interval string) (string, int64) {
	if ms, ok := intervalMillis[interval]; ok {
		return interval, ms
	}
	return DefaultInterval, intervalMillis[DefaultInterval]
}
