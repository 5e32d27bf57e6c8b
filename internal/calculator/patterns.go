package calculator

import "CoinSentinel/internal/model"

// Candlestick pattern names.
const (
	PatternDoji             = "DOJI"
	PatternHammer           = "HAMMER"
	PatternShootingStar     = "SHOOTING_STAR"
	PatternBullishEngulfing = "BULLISH_ENGULFING"
	PatternBearishEngulfing = "BEARISH_ENGULFING"
)

// DetectPatterns evaluates candlestick patterns on the last two candles.
// Multiple patterns may co-occur. Returns an empty list when fewer than
// 5 candles are available.
func DetectPatterns(bars []model.Candle) []string {
	patterns := []string{}
	if len(bars) < 5 {
		return patterns
	}

	last := bars[len(bars)-1]
	prev := bars[len(bars)-2]

	body := last.Body()
	rangeSize := last.Range()

	if body < rangeSize*0.1 {
		patterns = append(patterns, PatternDoji)
	}

	lowerShadow := min(last.Open, last.Close) - last.Low
	upperShadow := last.High - max(last.Open, last.Close)

	if lowerShadow > body*2 && upperShadow < body*0.3 {
		patterns = append(patterns, PatternHammer)
	}
	if upperShadow > body*2 && lowerShadow < body*0.3 {
		patterns = append(patterns, PatternShootingStar)
	}

	if last.Close > last.Open && prev.Close < prev.Open &&
		last.Open <= prev.Close && last.Close >= prev.Open {
		patterns = append(patterns, PatternBullishEngulfing)
	}
	if last.Close < last.Open && prev.Close > prev.Open &&
		last.Open >= prev.Close && last.Close <= prev.Open {
		patterns = append(patterns, PatternBearishEngulfing)
	}

	return patterns
}
